package repository

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// SessionRepository persiste la sesión activa del dispositivo y la identidad
// visible del chat. Load* devuelven valores cero cuando no hay nada guardado.
type SessionRepository interface {
	Save(ctx context.Context, user *entity.User, token string) error
	Load(ctx context.Context) (*entity.User, string, error)
	SaveIdentity(ctx context.Context, name, email string) error
	LoadIdentity(ctx context.Context) (name, email string, err error)
	Clear(ctx context.Context) error
}
