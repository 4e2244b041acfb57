package share

import "context"

// Repository persists share links. Every lookup filters soft-deleted rows;
// the rows themselves are never removed.
type Repository interface {
	Create(ctx context.Context, link *Link) (int, error)
	GetByToken(ctx context.Context, token string) (*Link, error)
	GetByID(ctx context.Context, linkID int) (*Link, error)
	// ListByItem returns non-deleted links for the item, newest first.
	ListByItem(ctx context.Context, itemID int) ([]Link, error)
	Update(ctx context.Context, link *Link) error
	SoftDelete(ctx context.Context, linkID int) error
	// IncrementViews bumps current_views by one only while it is still below
	// max_views, as a single conditional update. It reports false when the
	// link lost the race and the limit was already reached.
	IncrementViews(ctx context.Context, linkID int) (bool, error)
}
