package repository

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// PreferencesRepository persiste el tema y los toggles de usuario.
type PreferencesRepository interface {
	GetTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
	Get(ctx context.Context) (*entity.Preferences, error)
	Save(ctx context.Context, prefs *entity.Preferences) error
}
