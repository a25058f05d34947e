package usecase

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// PreferencesUseCase estado de tema y toggles de usuario. Solo persiste
// valores; no impone ningún comportamiento sobre ellos.
type PreferencesUseCase struct {
	prefs repository.PreferencesRepository
}

// NewPreferencesUseCase construye el caso de uso.
func NewPreferencesUseCase(prefs repository.PreferencesRepository) *PreferencesUseCase {
	return &PreferencesUseCase{prefs: prefs}
}

// GetTheme devuelve el tema activo; "light" si nunca se eligió uno.
func (uc *PreferencesUseCase) GetTheme(ctx context.Context) (*dto.ThemeResponse, error) {
	theme, err := uc.prefs.GetTheme(ctx)
	if err != nil {
		return nil, err
	}
	if theme == "" {
		theme = entity.ThemeLight
	}
	return &dto.ThemeResponse{Theme: theme}, nil
}

// SetTheme guarda el tema; solo acepta "light" o "dark".
func (uc *PreferencesUseCase) SetTheme(ctx context.Context, theme string) (*dto.ThemeResponse, error) {
	if !entity.ValidTheme(theme) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.prefs.SaveTheme(ctx, theme); err != nil {
		return nil, err
	}
	return &dto.ThemeResponse{Theme: theme}, nil
}

// Get devuelve los toggles; valores cero si nunca se guardaron.
func (uc *PreferencesUseCase) Get(ctx context.Context) (*dto.PreferencesResponse, error) {
	prefs, err := uc.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = &entity.Preferences{}
	}
	return &dto.PreferencesResponse{
		Notifications: prefs.Notifications,
		AutoSync:      prefs.AutoSync,
		OfflineMode:   prefs.OfflineMode,
	}, nil
}

// Update aplica los toggles enviados sobre el estado actual y persiste.
func (uc *PreferencesUseCase) Update(ctx context.Context, in dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	prefs, err := uc.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = &entity.Preferences{}
	}
	if in.Notifications != nil {
		prefs.Notifications = *in.Notifications
	}
	if in.AutoSync != nil {
		prefs.AutoSync = *in.AutoSync
	}
	if in.OfflineMode != nil {
		prefs.OfflineMode = *in.OfflineMode
	}
	if err := uc.prefs.Save(ctx, prefs); err != nil {
		return nil, err
	}
	return &dto.PreferencesResponse{
		Notifications: prefs.Notifications,
		AutoSync:      prefs.AutoSync,
		OfflineMode:   prefs.OfflineMode,
	}, nil
}
