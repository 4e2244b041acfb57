package share

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"sharevault/internal/domain/item"
	"sharevault/internal/domain/user"

	"golang.org/x/exp/slog"
)

// 32 random bytes, 256 bits of entropy in the public token.
const tokenBytes = 32

type Servicer interface {
	Create(ctx context.Context, userID, itemID int, expiresAt time.Time, maxViews int, password string) (CreateResult, error)
	Metadata(ctx context.Context, token string) (Metadata, error)
	ListForItem(ctx context.Context, userID, itemID int) ([]LinkStatus, error)
	Update(ctx context.Context, userID, linkID int, patch UpdatePatch) (LinkStatus, error)
	SoftDelete(ctx context.Context, userID, linkID int) error
}

type Service struct {
	repo    Repository
	items   item.Repository
	hasher  user.Hasher
	baseURL string
	now     func() time.Time
	log     *slog.Logger
}

// NewService builds the share-link engine. baseURL is the frontend base the
// generated access URLs point at.
func NewService(repo Repository, items item.Repository, hasher user.Hasher, baseURL string, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		items:   items,
		hasher:  hasher,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		log:     log.With("component", "share_service"),
	}
}

// Create mints a link for an owned item. A non-owner gets the same ErrNotFound
// as a missing item so link creation never leaks item existence.
func (s *Service) Create(ctx context.Context, userID, itemID int, expiresAt time.Time, maxViews int, password string) (CreateResult, error) {
	if _, err := item.Authorize(ctx, s.items, userID, itemID); err != nil {
		if errors.Is(err, item.ErrForbidden) || errors.Is(err, item.ErrNotFound) {
			return CreateResult{}, item.ErrNotFound
		}
		return CreateResult{}, fmt.Errorf("authorize item: %w", err)
	}

	if maxViews < 1 {
		return CreateResult{}, fmt.Errorf("%w: max_views must be positive", ErrInvalidInput)
	}
	if !expiresAt.After(s.now()) {
		return CreateResult{}, fmt.Errorf("%w: expires_at must be in the future", ErrInvalidInput)
	}

	token, err := generateToken()
	if err != nil {
		return CreateResult{}, fmt.Errorf("generate token: %w", err)
	}

	var passwordHash string
	if password != "" {
		passwordHash, err = s.hasher.Hash(password)
		if err != nil {
			return CreateResult{}, fmt.Errorf("hash link password: %w", err)
		}
	}

	link := &Link{
		ItemID:       itemID,
		Token:        token,
		PasswordHash: passwordHash,
		ExpiresAt:    expiresAt,
		MaxViews:     maxViews,
		CurrentViews: 0,
		IsActive:     true,
	}

	linkID, err := s.repo.Create(ctx, link)
	if err != nil {
		s.log.Error("failed to create share link", "item_id", itemID, "user_id", userID, "error", err)
		return CreateResult{}, fmt.Errorf("create share link: %w", err)
	}

	s.log.Info("share link created",
		"link_id", linkID,
		"item_id", itemID,
		"user_id", userID,
		"max_views", maxViews,
		"protected", passwordHash != "",
	)

	return CreateResult{
		ShareLink: s.baseURL + "/access/" + token,
		ExpiresAt: expiresAt,
		MaxViews:  maxViews,
	}, nil
}

// Metadata is the anonymous lookup: it exposes the item title and lock state
// but never the content, the password hash or the view counts.
func (s *Service) Metadata(ctx context.Context, token string) (Metadata, error) {
	link, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return Metadata{}, err
	}

	title := "Unknown Item"
	if it, err := s.items.Get(ctx, link.ItemID); err == nil {
		title = it.Title
	}

	return Metadata{
		Title:               title,
		IsPasswordProtected: link.PasswordHash != "",
		ExpiresAt:           link.ExpiresAt,
		IsLocked:            link.Locked(s.now()),
	}, nil
}

func (s *Service) ListForItem(ctx context.Context, userID, itemID int) ([]LinkStatus, error) {
	if _, err := item.Authorize(ctx, s.items, userID, itemID); err != nil {
		return nil, err
	}

	links, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		s.log.Error("failed to list share links", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("list share links: %w", err)
	}

	now := s.now()
	statuses := make([]LinkStatus, len(links))
	for i := range links {
		statuses[i] = s.status(&links[i], now)
	}

	return statuses, nil
}

// Update changes only the supplied fields. Ownership resolves through the
// link's parent item. MaxViews may be lowered below the served view count
// (the link derives to Locked) and ExpiresAt may be set in the past to
// expire a link immediately.
func (s *Service) Update(ctx context.Context, userID, linkID int, patch UpdatePatch) (LinkStatus, error) {
	link, err := s.ownedLink(ctx, userID, linkID)
	if err != nil {
		return LinkStatus{}, err
	}

	if patch.MaxViews != nil {
		if *patch.MaxViews < 1 {
			return LinkStatus{}, fmt.Errorf("%w: max_views must be positive", ErrInvalidInput)
		}
		link.MaxViews = *patch.MaxViews
	}
	if patch.ExpiresAt != nil {
		link.ExpiresAt = *patch.ExpiresAt
	}
	if patch.IsActive != nil {
		link.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(ctx, link); err != nil {
		s.log.Error("failed to update share link", "link_id", linkID, "user_id", userID, "error", err)
		return LinkStatus{}, fmt.Errorf("update share link: %w", err)
	}

	s.log.Info("share link updated", "link_id", linkID, "user_id", userID, "active", link.IsActive)
	return s.status(link, s.now()), nil
}

// SoftDelete hides the link from all future lookups. The audit trail is left
// untouched. A second delete finds nothing and fails with ErrNotFound.
func (s *Service) SoftDelete(ctx context.Context, userID, linkID int) error {
	link, err := s.ownedLink(ctx, userID, linkID)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, link.ID); err != nil {
		s.log.Error("failed to soft delete share link", "link_id", linkID, "user_id", userID, "error", err)
		return fmt.Errorf("soft delete share link: %w", err)
	}

	s.log.Info("share link soft deleted", "link_id", linkID, "user_id", userID)
	return nil
}

func (s *Service) ownedLink(ctx context.Context, userID, linkID int) (*Link, error) {
	link, err := s.repo.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if _, err := item.Authorize(ctx, s.items, userID, link.ItemID); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *Service) status(link *Link, now time.Time) LinkStatus {
	return LinkStatus{
		ID:             link.ID,
		ItemID:         link.ItemID,
		Token:          link.Token,
		ExpiresAt:      link.ExpiresAt,
		MaxViews:       link.MaxViews,
		CurrentViews:   link.CurrentViews,
		RemainingViews: link.RemainingViews(),
		IsActive:       link.IsActive,
		HasPassword:    link.PasswordHash != "",
		Status:         link.Status(now),
		CreatedAt:      link.CreatedAt,
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
