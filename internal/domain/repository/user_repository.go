package repository

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetBy* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
}
