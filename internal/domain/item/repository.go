package item

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) (int, error)
	// Get returns the item regardless of owner; callers decide what an
	// ownership mismatch maps to.
	Get(ctx context.Context, itemID int) (*Item, error)
	List(ctx context.Context, ownerID, offset, limit int) ([]Item, error)
	Update(ctx context.Context, it *Item) error
}

// Authorize resolves the single-owner check every owner-scoped operation
// relies on: ErrNotFound when the item does not exist, ErrForbidden when it
// exists but belongs to someone else. Share links and audit logs inherit
// ownership through this chain.
func Authorize(ctx context.Context, repo Repository, userID, itemID int) (*Item, error) {
	it, err := repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID != userID {
		return nil, ErrForbidden
	}

	return it, nil
}
