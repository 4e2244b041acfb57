package postgres

import (
	"context"
	"fmt"

	"sharevault/internal/domain/stats"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type StatsRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewStatsRepository(pool *pgxpool.Pool, log *slog.Logger) *StatsRepository {
	return &StatsRepository{
		pool: pool,
		log:  log.With("component", "stats_repository"),
	}
}

// Totals aggregates in one round trip. Active shares are counted strictly
// (active, not deleted, not expired, views left); total views count every
// link ever created, deleted ones included.
func (r *StatsRepository) Totals(ctx context.Context, userID int) (stats.Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM vault_items i WHERE i.owner_id = $1),
			(SELECT COUNT(*)
			   FROM share_links s
			   JOIN vault_items i ON s.vault_item_id = i.id
			  WHERE i.owner_id = $1
			    AND s.is_active AND NOT s.is_deleted
			    AND s.expires_at > NOW()
			    AND s.current_views < s.max_views),
			(SELECT COALESCE(SUM(s.current_views), 0)
			   FROM share_links s
			   JOIN vault_items i ON s.vault_item_id = i.id
			  WHERE i.owner_id = $1)`

	var st stats.Stats
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&st.TotalItems, &st.ActiveShares, &st.TotalViews)
	if err != nil {
		r.log.Error("failed to aggregate stats", "user_id", userID, "error", err)
		return stats.Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}

	return st, nil
}
