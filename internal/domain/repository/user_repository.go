package repository

import (
	"context"

	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
