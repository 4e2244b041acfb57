package public

import (
	"context"
	"errors"

	"sharevault/internal/app/server/api/http/middleware/origin"
	"sharevault/internal/domain/access"
	"sharevault/internal/domain/share"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Handler serves the unauthenticated surface: link metadata and access
// attempts.
type Handler struct {
	shares     share.Servicer
	evaluator  access.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(shares share.Servicer, evaluator access.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		shares:     shares,
		evaluator:  evaluator,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.metadataOp(), h.metadata)
	huma.Register(api, h.accessOp(), h.access)
}

func (h *Handler) metadata(ctx context.Context, input *metadataInput) (*metadataOutput, error) {
	meta, err := h.shares.Metadata(ctx, input.Token)
	if err != nil {
		if errors.Is(err, share.ErrNotFound) {
			return nil, huma.Error404NotFound("Link invalid or expired")
		}
		return nil, err
	}

	return &metadataOutput{Body: meta}, nil
}

func (h *Handler) access(ctx context.Context, input *accessInput) (*accessOutput, error) {
	content, err := h.evaluator.Attempt(ctx, input.Token, input.Body.Password, origin.ClientIP(ctx))
	if err != nil {
		switch {
		case errors.Is(err, share.ErrNotFound):
			return nil, huma.Error404NotFound("Link not found")
		case errors.Is(err, share.ErrRevoked):
			return nil, huma.Error410Gone("This link has been revoked.")
		case errors.Is(err, share.ErrExpired):
			return nil, huma.Error410Gone("This link has expired.")
		case errors.Is(err, share.ErrExhausted):
			return nil, huma.Error410Gone("View limit reached.")
		case errors.Is(err, share.ErrBadPassword):
			return nil, huma.Error401Unauthorized("Incorrect password.")
		default:
			return nil, err
		}
	}

	return &accessOutput{Body: content}, nil
}
