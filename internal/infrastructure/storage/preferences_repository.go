package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.PreferencesRepository = (*PreferencesRepo)(nil)

// PreferencesRepo persiste el tema ("theme") y los toggles ("user_preferences").
type PreferencesRepo struct {
	q Querier
}

// NewPreferencesRepository construye el adaptador de persistencia de preferencias.
func NewPreferencesRepository(kv *KV) *PreferencesRepo {
	return &PreferencesRepo{q: kv.db}
}

// GetTheme devuelve el tema guardado, o cadena vacía si nunca se eligió.
func (r *PreferencesRepo) GetTheme(ctx context.Context) (string, error) {
	raw, err := getValue(ctx, r.q, KeyTheme)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SaveTheme guarda el tema elegido.
func (r *PreferencesRepo) SaveTheme(ctx context.Context, theme string) error {
	return putValue(ctx, r.q, KeyTheme, []byte(theme))
}

// Get devuelve los toggles guardados, o (nil, nil) si nunca se escribieron.
func (r *PreferencesRepo) Get(ctx context.Context) (*entity.Preferences, error) {
	raw, err := getValue(ctx, r.q, KeyUserPreferences)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var prefs entity.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("decodificar preferencias: %w", err)
	}
	return &prefs, nil
}

// Save guarda los toggles como un único objeto JSON.
func (r *PreferencesRepo) Save(ctx context.Context, prefs *entity.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("codificar preferencias: %w", err)
	}
	return putValue(ctx, r.q, KeyUserPreferences, raw)
}
