package stats

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	ForUser(ctx context.Context, userID int) (Stats, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "stats_service"),
	}
}

func (s *Service) ForUser(ctx context.Context, userID int) (Stats, error) {
	totals, err := s.repo.Totals(ctx, userID)
	if err != nil {
		s.log.Error("failed to aggregate stats", "user_id", userID, "error", err)
		return Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}

	return totals, nil
}
