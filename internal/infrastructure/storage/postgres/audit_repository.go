package postgres

import (
	"context"
	"fmt"

	"sharevault/internal/domain/audit"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type AuditRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAuditRepository(pool *pgxpool.Pool, log *slog.Logger) *AuditRepository {
	return &AuditRepository{
		pool: pool,
		log:  log.With("component", "audit_repository"),
	}
}

func (r *AuditRepository) Append(ctx context.Context, shareLinkID int, outcome audit.Outcome, ip string) error {
	const query = `
		INSERT INTO access_logs (share_link_id, outcome, ip_address)
		VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, shareLinkID, outcome.String(), ip); err != nil {
		return fmt.Errorf("append access log: %w", err)
	}

	return nil
}

// ListByItem deliberately joins through share_links without an is_deleted
// filter: the history of soft-deleted links stays queryable.
func (r *AuditRepository) ListByItem(ctx context.Context, itemID int) ([]audit.Entry, error) {
	const query = `
		SELECT a.id, a.share_link_id, s.token, a.access_time, a.outcome, a.ip_address
		FROM access_logs a
		JOIN share_links s ON a.share_link_id = s.id
		WHERE s.vault_item_id = $1
		ORDER BY a.access_time DESC`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		r.log.Error("failed to list access log", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("list access log: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var outcome string
		if err := rows.Scan(&e.ID, &e.ShareLinkID, &e.Token, &e.AccessTime, &outcome, &e.IPAddress); err != nil {
			return nil, fmt.Errorf("scan access log entry: %w", err)
		}
		e.Outcome = audit.Outcome(outcome)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
