package dto

// ThemeResponse tema activo de la interfaz.
type ThemeResponse struct {
	Theme string `json:"theme"` // "light" | "dark"
}

// SetThemeRequest cambio de tema.
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// PreferencesResponse toggles de usuario.
type PreferencesResponse struct {
	Notifications bool `json:"notifications"`
	AutoSync      bool `json:"autoSync"`
	OfflineMode   bool `json:"offlineMode"`
}

// UpdatePreferencesRequest toggles a modificar; nil = sin cambios.
type UpdatePreferencesRequest struct {
	Notifications *bool `json:"notifications,omitempty"`
	AutoSync      *bool `json:"autoSync,omitempty"`
	OfflineMode   *bool `json:"offlineMode,omitempty"`
}
