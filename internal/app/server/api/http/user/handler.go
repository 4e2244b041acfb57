package user

import (
	"context"
	"errors"

	"sharevault/internal/domain/session"
	"sharevault/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*tokenOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrTaken):
			return nil, huma.Error400BadRequest("Username already taken")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			h.log.Error("register failed", "error", err)
			return nil, huma.Error500InternalServerError("registration failed")
		}
	}

	return h.issueToken(ctx, userID)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*tokenOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("Incorrect username or password")
	}

	return h.issueToken(ctx, u.ID)
}

func (h *Handler) issueToken(ctx context.Context, userID int) (*tokenOutput, error) {
	token, err := h.session.Create(ctx, userID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("failed to create session")
	}

	return &tokenOutput{
		Body: TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		},
	}, nil
}
