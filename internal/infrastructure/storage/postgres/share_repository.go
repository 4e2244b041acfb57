package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sharevault/internal/domain/share"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ShareRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewShareRepository(pool *pgxpool.Pool, log *slog.Logger) *ShareRepository {
	return &ShareRepository{
		pool: pool,
		log:  log.With("component", "share_repository"),
	}
}

func (r *ShareRepository) Create(ctx context.Context, link *share.Link) (int, error) {
	const query = `
		INSERT INTO share_links (vault_item_id, token, password_hash, expires_at, max_views, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	var passwordHash sql.NullString
	if link.PasswordHash != "" {
		passwordHash = sql.NullString{String: link.PasswordHash, Valid: true}
	}

	err := r.pool.QueryRow(ctx, query,
		link.ItemID, link.Token, passwordHash, link.ExpiresAt, link.MaxViews, link.IsActive,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		r.log.Error("failed to create share link", "item_id", link.ItemID, "error", err)
		return 0, fmt.Errorf("create share link: %w", err)
	}

	return link.ID, nil
}

func (r *ShareRepository) GetByToken(ctx context.Context, token string) (*share.Link, error) {
	const query = `
		SELECT id, vault_item_id, token, password_hash, expires_at,
		       max_views, current_views, is_active, is_deleted, created_at
		FROM share_links
		WHERE token = $1 AND is_deleted = FALSE`

	return r.scanLink(r.pool.QueryRow(ctx, query, token))
}

func (r *ShareRepository) GetByID(ctx context.Context, linkID int) (*share.Link, error) {
	const query = `
		SELECT id, vault_item_id, token, password_hash, expires_at,
		       max_views, current_views, is_active, is_deleted, created_at
		FROM share_links
		WHERE id = $1 AND is_deleted = FALSE`

	return r.scanLink(r.pool.QueryRow(ctx, query, linkID))
}

func (r *ShareRepository) ListByItem(ctx context.Context, itemID int) ([]share.Link, error) {
	const query = `
		SELECT id, vault_item_id, token, password_hash, expires_at,
		       max_views, current_views, is_active, is_deleted, created_at
		FROM share_links
		WHERE vault_item_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		r.log.Error("failed to list share links", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("list share links: %w", err)
	}
	defer rows.Close()

	var links []share.Link
	for rows.Next() {
		link, err := r.scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}

	return links, rows.Err()
}

func (r *ShareRepository) Update(ctx context.Context, link *share.Link) error {
	const query = `
		UPDATE share_links
		SET expires_at = $1, max_views = $2, is_active = $3
		WHERE id = $4 AND is_deleted = FALSE`

	result, err := r.pool.Exec(ctx, query,
		link.ExpiresAt, link.MaxViews, link.IsActive, link.ID)
	if err != nil {
		r.log.Error("failed to update share link", "link_id", link.ID, "error", err)
		return fmt.Errorf("update share link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return share.ErrNotFound
	}

	return nil
}

func (r *ShareRepository) SoftDelete(ctx context.Context, linkID int) error {
	const query = `
		UPDATE share_links
		SET is_deleted = TRUE
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.pool.Exec(ctx, query, linkID)
	if err != nil {
		r.log.Error("failed to soft delete share link", "link_id", linkID, "error", err)
		return fmt.Errorf("soft delete share link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return share.ErrNotFound
	}

	return nil
}

// IncrementViews is the serialization point for the view-count invariant:
// the condition and the increment execute as one statement, so racing
// attempts can never push current_views past max_views.
func (r *ShareRepository) IncrementViews(ctx context.Context, linkID int) (bool, error) {
	const query = `
		UPDATE share_links
		SET current_views = current_views + 1
		WHERE id = $1 AND is_deleted = FALSE AND current_views < max_views`

	result, err := r.pool.Exec(ctx, query, linkID)
	if err != nil {
		r.log.Error("failed to increment views", "link_id", linkID, "error", err)
		return false, fmt.Errorf("increment views: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *ShareRepository) scanLink(row pgx.Row) (*share.Link, error) {
	var link share.Link
	var passwordHash sql.NullString

	err := row.Scan(
		&link.ID, &link.ItemID, &link.Token, &passwordHash, &link.ExpiresAt,
		&link.MaxViews, &link.CurrentViews, &link.IsActive, &link.IsDeleted, &link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, share.ErrNotFound
		}
		return nil, fmt.Errorf("scan share link: %w", err)
	}

	if passwordHash.Valid {
		link.PasswordHash = passwordHash.String
	}

	return &link, nil
}
