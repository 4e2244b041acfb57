package stats

import (
	"context"

	"sharevault/internal/app/server/api/http/middleware/auth"
	"sharevault/internal/domain/stats"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    stats.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service stats.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	st, err := h.service.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &getOutput{Body: st}, nil
}
