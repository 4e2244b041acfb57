package item

import "errors"

var (
	ErrNotFound     = errors.New("vault item not found")
	ErrForbidden    = errors.New("vault item belongs to another user")
	ErrInvalidInput = errors.New("invalid vault item data")
)
