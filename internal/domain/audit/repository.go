package audit

import "context"

type Repository interface {
	Append(ctx context.Context, shareLinkID int, outcome Outcome, ip string) error
	// ListByItem returns every entry for the item's links, newest first,
	// joined with each link's token. Entries of soft-deleted links are
	// included.
	ListByItem(ctx context.Context, itemID int) ([]Entry, error)
}
