package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/application/usecase"
	"github.com/inventoree/inventoree-api/internal/domain"
)

func TestPreferencesTheme_DefaultLight(t *testing.T) {
	uc := usecase.NewPreferencesUseCase(&fakePreferencesRepo{})

	theme, err := uc.GetTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "light", theme.Theme, "sin tema guardado se responde light")
}

func TestPreferencesTheme_GuardaYRechazaValoresDesconocidos(t *testing.T) {
	uc := usecase.NewPreferencesUseCase(&fakePreferencesRepo{})
	ctx := context.Background()

	saved, err := uc.SetTheme(ctx, "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", saved.Theme)

	theme, err := uc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Theme)

	_, err = uc.SetTheme(ctx, "sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El tema guardado no cambió tras el rechazo.
	theme, err = uc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Theme)
}

func TestPreferencesUpdate_TogglesParciales(t *testing.T) {
	uc := usecase.NewPreferencesUseCase(&fakePreferencesRepo{})
	ctx := context.Background()

	initial, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, initial.Notifications, "valores cero si nunca se guardaron")
	assert.False(t, initial.AutoSync)
	assert.False(t, initial.OfflineMode)

	on := true
	updated, err := uc.Update(ctx, dto.UpdatePreferencesRequest{Notifications: &on})
	require.NoError(t, err)
	assert.True(t, updated.Notifications)
	assert.False(t, updated.AutoSync, "los toggles no enviados no cambian")

	off := false
	updated, err = uc.Update(ctx, dto.UpdatePreferencesRequest{Notifications: &off, AutoSync: &on})
	require.NoError(t, err)
	assert.False(t, updated.Notifications)
	assert.True(t, updated.AutoSync)
}
