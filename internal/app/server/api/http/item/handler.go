package item

import (
	"context"
	"errors"

	"sharevault/internal/app/server/api/http/middleware/auth"
	"sharevault/internal/domain/item"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	it, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Content)
	if err != nil {
		if errors.Is(err, item.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &itemOutput{Body: *it}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.List(ctx, userID, input.Skip, input.Limit)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itemOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	it, err := h.service.Update(ctx, userID, input.ID, item.UpdatePatch{
		Title:   input.Body.Title,
		Content: input.Body.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			return nil, huma.Error404NotFound("Vault item not found")
		case errors.Is(err, item.ErrForbidden):
			return nil, huma.Error403Forbidden("Not authorized to modify this item")
		case errors.Is(err, item.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, err
		}
	}

	return &itemOutput{Body: *it}, nil
}
