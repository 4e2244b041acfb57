package stats

// Stats summarizes a user's vault. TotalViews is historical and monotonic: it
// sums current_views over every link the user ever created, active, revoked
// and soft-deleted alike.
type Stats struct {
	TotalItems   int `json:"total_items"`
	ActiveShares int `json:"active_shares"`
	TotalViews   int `json:"total_views"`
}
