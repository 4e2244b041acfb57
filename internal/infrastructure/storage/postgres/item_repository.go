package postgres

import (
	"context"
	"errors"
	"fmt"

	"sharevault/internal/domain/item"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ItemRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewItemRepository(pool *pgxpool.Pool, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		pool: pool,
		log:  log.With("component", "item_repository"),
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (int, error) {
	const query = `
		INSERT INTO vault_items (title, content, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, it.Title, it.Content, it.OwnerID).
		Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		r.log.Error("failed to create item", "owner_id", it.OwnerID, "error", err)
		return 0, fmt.Errorf("create item: %w", err)
	}

	return it.ID, nil
}

func (r *ItemRepository) Get(ctx context.Context, itemID int) (*item.Item, error) {
	const query = `
		SELECT id, title, content, owner_id, created_at
		FROM vault_items
		WHERE id = $1`

	var it item.Item
	err := r.pool.QueryRow(ctx, query, itemID).
		Scan(&it.ID, &it.Title, &it.Content, &it.OwnerID, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrNotFound
		}
		r.log.Error("failed to get item", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("get item: %w", err)
	}

	return &it, nil
}

func (r *ItemRepository) List(ctx context.Context, ownerID, offset, limit int) ([]item.Item, error) {
	const query = `
		SELECT id, title, content, owner_id, created_at
		FROM vault_items
		WHERE owner_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, ownerID, offset, limit)
	if err != nil {
		r.log.Error("failed to list items", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Content, &it.OwnerID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	const query = `
		UPDATE vault_items
		SET title = $1, content = $2
		WHERE id = $3 AND owner_id = $4`

	result, err := r.pool.Exec(ctx, query, it.Title, it.Content, it.ID, it.OwnerID)
	if err != nil {
		r.log.Error("failed to update item", "item_id", it.ID, "error", err)
		return fmt.Errorf("update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return item.ErrNotFound
	}

	return nil
}
