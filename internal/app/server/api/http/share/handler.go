package share

import (
	"context"
	"errors"

	"sharevault/internal/app/server/api/http/middleware/auth"
	"sharevault/internal/domain/item"
	"sharevault/internal/domain/share"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    share.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service share.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listForItemOp(), h.listForItem)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	result, err := h.service.Create(ctx, userID,
		input.Body.VaultItemID,
		input.Body.ExpiresAt,
		input.Body.MaxViews,
		input.Body.Password,
	)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			return nil, huma.Error404NotFound("Vault item not found")
		case errors.Is(err, share.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, err
		}
	}

	return &createOutput{Body: result}, nil
}

func (h *Handler) listForItem(ctx context.Context, input *listForItemInput) (*listForItemOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	shares, err := h.service.ListForItem(ctx, userID, input.ID)
	if err != nil {
		return nil, mapOwnershipError(err)
	}

	return &listForItemOutput{
		Body: listForItemResponse{
			Shares: shares,
			Total:  len(shares),
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	status, err := h.service.Update(ctx, userID, input.ID, share.UpdatePatch{
		ExpiresAt: input.Body.ExpiresAt,
		MaxViews:  input.Body.MaxViews,
		IsActive:  input.Body.IsActive,
	})
	if err != nil {
		if errors.Is(err, share.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, mapOwnershipError(err)
	}

	return &statusOutput{Body: status}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.SoftDelete(ctx, userID, input.ID); err != nil {
		return nil, mapOwnershipError(err)
	}

	return &deleteOutput{Body: ackResponse{Status: "Ok"}}, nil
}

func mapOwnershipError(err error) error {
	switch {
	case errors.Is(err, share.ErrNotFound):
		return huma.Error404NotFound("Share link not found")
	case errors.Is(err, item.ErrNotFound):
		return huma.Error404NotFound("Vault item not found")
	case errors.Is(err, item.ErrForbidden):
		return huma.Error403Forbidden("Not authorized to manage this resource")
	default:
		return err
	}
}
