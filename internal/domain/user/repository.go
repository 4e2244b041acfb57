package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	FindByUsername(ctx context.Context, username string) (User, error)
}
