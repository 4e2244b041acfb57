package item

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type Servicer interface {
	Create(ctx context.Context, userID int, title, content string) (*Item, error)
	List(ctx context.Context, userID, skip, limit int) (ListResponse, error)
	Update(ctx context.Context, userID, itemID int, patch UpdatePatch) (*Item, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID int, title, content string) (*Item, error) {
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	it := &Item{
		Title:   title,
		Content: content,
		OwnerID: userID,
	}

	itemID, err := s.repo.Create(ctx, it)
	if err != nil {
		s.log.Error("failed to create item", "user_id", userID, "error", err)
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.Info("item created", "item_id", itemID, "user_id", userID)
	return it, nil
}

func (s *Service) List(ctx context.Context, userID, skip, limit int) (ListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := s.repo.List(ctx, userID, skip, limit)
	if err != nil {
		s.log.Error("failed to list items", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list items: %w", err)
	}

	return ListResponse{
		Items: items,
		Total: len(items),
	}, nil
}

func (s *Service) Update(ctx context.Context, userID, itemID int, patch UpdatePatch) (*Item, error) {
	it, err := Authorize(ctx, s.repo, userID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, ErrInvalidInput
		}
		it.Title = *patch.Title
	}
	if patch.Content != nil {
		if *patch.Content == "" {
			return nil, ErrInvalidInput
		}
		it.Content = *patch.Content
	}

	if err := s.repo.Update(ctx, it); err != nil {
		s.log.Error("failed to update item", "item_id", itemID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.Info("item updated", "item_id", itemID, "user_id", userID)
	return it, nil
}
