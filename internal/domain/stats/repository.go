package stats

import "context"

type Repository interface {
	// Totals computes the three aggregates for the user in storage; the
	// active-share window is evaluated against the database clock.
	Totals(ctx context.Context, userID int) (Stats, error)
}
