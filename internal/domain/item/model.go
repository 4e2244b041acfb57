package item

import "time"

// Item is a stored secret: an opaque text payload owned by exactly one user.
type Item struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	OwnerID   int       `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdatePatch carries a partial update; nil fields are left untouched.
type UpdatePatch struct {
	Title   *string
	Content *string
}

type ListResponse struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}
