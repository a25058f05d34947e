package entity

// Temas de interfaz soportados.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme indica si el valor es un tema soportado.
func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

// Preferences toggles de usuario. Solo estado; la app decide qué hacer con ellos.
type Preferences struct {
	Notifications bool `json:"notifications"`
	AutoSync      bool `json:"autoSync"`
	OfflineMode   bool `json:"offlineMode"`
}
