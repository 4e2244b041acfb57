package audit

import (
	"context"
	"errors"

	"sharevault/internal/app/server/api/http/middleware/auth"
	"sharevault/internal/domain/audit"
	"sharevault/internal/domain/item"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    audit.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service audit.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listForItemOp(), h.listForItem)
}

func (h *Handler) listForItem(ctx context.Context, input *listForItemInput) (*listForItemOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entries, err := h.service.ListForItem(ctx, userID, input.ID)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			return nil, huma.Error404NotFound("Vault item not found")
		case errors.Is(err, item.ErrForbidden):
			return nil, huma.Error403Forbidden("Not authorized to view these logs")
		default:
			return nil, err
		}
	}

	return &listForItemOutput{
		Body: listForItemResponse{
			Logs:  entries,
			Total: len(entries),
		},
	}, nil
}
