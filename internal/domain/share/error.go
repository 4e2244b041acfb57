package share

import "errors"

var (
	// ErrNotFound covers missing and soft-deleted links alike: the two are
	// deliberately indistinguishable to callers.
	ErrNotFound     = errors.New("share link not found")
	ErrInvalidInput = errors.New("invalid share link data")

	ErrRevoked   = errors.New("link has been revoked")
	ErrExpired   = errors.New("link has expired")
	ErrExhausted = errors.New("view limit reached")
	// ErrBadPassword covers a wrong password and a missing one.
	ErrBadPassword = errors.New("incorrect password")
)
