package storage

import (
	"context"
	"strings"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección "users".
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(kv *KV) *UserRepo {
	return &UserRepo{q: kv.db}
}

// Create agrega el usuario al final de la colección.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	users, err := loadList[entity.User](ctx, r.q, KeyUsers)
	if err != nil {
		return err
	}
	users = append(users, user)
	return saveList(ctx, r.q, KeyUsers, users)
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := loadList[entity.User](ctx, r.q, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail devuelve el usuario o (nil, nil) si no existe. El email se
// compara sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := loadList[entity.User](ctx, r.q, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	users, err := loadList[entity.User](ctx, r.q, KeyUsers)
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return saveList(ctx, r.q, KeyUsers, users)
		}
	}
	return nil
}

// List devuelve todos los usuarios en orden de registro.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return loadList[entity.User](ctx, r.q, KeyUsers)
}
