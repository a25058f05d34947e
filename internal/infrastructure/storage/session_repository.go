package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persiste la sesión activa ("current_user", "current_token")
// y la identidad visible del chat ("current_user_name", "current_user_email").
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador de persistencia de sesión.
func NewSessionRepository(kv *KV) *SessionRepo {
	return &SessionRepo{q: kv.db}
}

// Save guarda el snapshot de sesión: usuario serializado + token opaco.
func (r *SessionRepo) Save(ctx context.Context, user *entity.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	if err := putValue(ctx, r.q, KeyCurrentUser, raw); err != nil {
		return err
	}
	return putValue(ctx, r.q, KeyCurrentToken, []byte(token))
}

// Load devuelve la sesión guardada. Sin sesión: (nil, "", nil).
// Se exige que usuario y token existan juntos; un snapshot a medias se ignora.
func (r *SessionRepo) Load(ctx context.Context) (*entity.User, string, error) {
	rawUser, err := getValue(ctx, r.q, KeyCurrentUser)
	if err != nil {
		return nil, "", err
	}
	rawToken, err := getValue(ctx, r.q, KeyCurrentToken)
	if err != nil {
		return nil, "", err
	}
	if rawUser == nil || rawToken == nil {
		return nil, "", nil
	}
	var user entity.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, "", fmt.Errorf("decodificar sesión: %w", err)
	}
	return &user, string(rawToken), nil
}

// SaveIdentity guarda el nombre y email visibles que usa el chat.
func (r *SessionRepo) SaveIdentity(ctx context.Context, name, email string) error {
	if err := putValue(ctx, r.q, KeyCurrentUserName, []byte(name)); err != nil {
		return err
	}
	return putValue(ctx, r.q, KeyCurrentUserEmail, []byte(email))
}

// LoadIdentity devuelve la identidad del chat; cadenas vacías si nunca se guardó.
func (r *SessionRepo) LoadIdentity(ctx context.Context) (string, string, error) {
	rawName, err := getValue(ctx, r.q, KeyCurrentUserName)
	if err != nil {
		return "", "", err
	}
	rawEmail, err := getValue(ctx, r.q, KeyCurrentUserEmail)
	if err != nil {
		return "", "", err
	}
	return string(rawName), string(rawEmail), nil
}

// Clear elimina la sesión y la identidad del chat.
func (r *SessionRepo) Clear(ctx context.Context) error {
	for _, key := range []string{KeyCurrentUser, KeyCurrentToken, KeyCurrentUserName, KeyCurrentUserEmail} {
		if err := deleteValue(ctx, r.q, key); err != nil {
			return err
		}
	}
	return nil
}
