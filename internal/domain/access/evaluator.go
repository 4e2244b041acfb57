package access

import (
	"context"
	"fmt"
	"time"

	"sharevault/internal/domain/audit"
	"sharevault/internal/domain/item"
	"sharevault/internal/domain/share"
	"sharevault/internal/domain/user"

	"golang.org/x/exp/slog"
)

// Auditor records attempts without being able to fail the caller.
type Auditor interface {
	Append(ctx context.Context, shareLinkID int, outcome audit.Outcome, ip string)
}

type Servicer interface {
	Attempt(ctx context.Context, token, password, clientIP string) (Content, error)
}

// Content is the secret payload released on a successful attempt.
type Content struct {
	Content string `json:"content"`
	Message string `json:"message"`
}

// Evaluator runs the per-attempt state machine. The checks run in a fixed
// order — revoked, expired, exhausted, password — and the first failing check
// short-circuits the rest, so the denial reason a caller observes is
// deterministic when several conditions hold at once.
type Evaluator struct {
	shares   share.Repository
	items    item.Repository
	auditor  Auditor
	verifier user.Hasher
	delay    time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
	log      *slog.Logger
}

func NewEvaluator(shares share.Repository, items item.Repository, auditor Auditor, verifier user.Hasher, delay time.Duration, log *slog.Logger) *Evaluator {
	return &Evaluator{
		shares:   shares,
		items:    items,
		auditor:  auditor,
		verifier: verifier,
		delay:    delay,
		now:      time.Now,
		sleep:    time.Sleep,
		log:      log.With("component", "access_evaluator"),
	}
}

// Attempt decides whether the link's content may be disclosed. Every branch
// except an unknown token writes exactly one audit entry.
func (e *Evaluator) Attempt(ctx context.Context, token, password, clientIP string) (Content, error) {
	link, err := e.shares.GetByToken(ctx, token)
	if err != nil {
		// Unknown or soft-deleted token: nothing to log against.
		return Content{}, err
	}

	if !link.IsActive {
		e.auditor.Append(ctx, link.ID, audit.OutcomeRevoked, clientIP)
		return Content{}, share.ErrRevoked
	}

	if link.Expired(e.now()) {
		e.auditor.Append(ctx, link.ID, audit.OutcomeExpired, clientIP)
		return Content{}, share.ErrExpired
	}

	if link.Exhausted() {
		e.auditor.Append(ctx, link.ID, audit.OutcomeViewLimit, clientIP)
		return Content{}, share.ErrExhausted
	}

	if link.PasswordHash != "" {
		if password == "" || e.verifier.Compare(link.PasswordHash, password) != nil {
			// Blunt brute-force enumeration. The sleep happens after the
			// failed check, outside any lock or transaction.
			e.sleep(e.delay)
			e.auditor.Append(ctx, link.ID, audit.OutcomeBadPassword, clientIP)
			return Content{}, share.ErrBadPassword
		}
	}

	// The conditional increment is the only serialization point: two racing
	// attempts at the limit cannot both get past it.
	ok, err := e.shares.IncrementViews(ctx, link.ID)
	if err != nil {
		e.log.Error("failed to increment view count", "link_id", link.ID, "error", err)
		return Content{}, fmt.Errorf("increment views: %w", err)
	}
	if !ok {
		e.auditor.Append(ctx, link.ID, audit.OutcomeViewLimit, clientIP)
		return Content{}, share.ErrExhausted
	}

	e.auditor.Append(ctx, link.ID, audit.OutcomeAllowed, clientIP)

	it, err := e.items.Get(ctx, link.ItemID)
	if err != nil {
		e.log.Error("failed to fetch item for granted access", "link_id", link.ID, "item_id", link.ItemID, "error", err)
		return Content{}, fmt.Errorf("fetch item: %w", err)
	}

	e.log.Info("access granted", "link_id", link.ID, "item_id", link.ItemID, "ip", clientIP)

	return Content{
		Content: it.Content,
		Message: "Access granted.",
	}, nil
}
