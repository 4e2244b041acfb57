package audit

import (
	"context"
	"fmt"

	"sharevault/internal/domain/item"
	"sharevault/internal/metrics"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Append(ctx context.Context, shareLinkID int, outcome Outcome, ip string)
	ListForItem(ctx context.Context, userID, itemID int) ([]Entry, error)
}

type Service struct {
	repo  Repository
	items item.Repository
	log   *slog.Logger
}

func NewService(repo Repository, items item.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		items: items,
		log:   log.With("component", "audit_service"),
	}
}

// Append records an access attempt. It is best-effort by contract: a failed
// write is reported on the diagnostic log but never propagated, so the access
// decision already made stands either way.
func (s *Service) Append(ctx context.Context, shareLinkID int, outcome Outcome, ip string) {
	metrics.RecordAccessAttempt(outcome.String())

	if err := s.repo.Append(ctx, shareLinkID, outcome, ip); err != nil {
		s.log.Error("failed to append access log entry",
			"share_link_id", shareLinkID,
			"outcome", outcome,
			"error", err,
		)
	}
}

func (s *Service) ListForItem(ctx context.Context, userID, itemID int) ([]Entry, error) {
	if _, err := item.Authorize(ctx, s.items, userID, itemID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		s.log.Error("failed to list access log", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("list access log: %w", err)
	}

	return entries, nil
}
