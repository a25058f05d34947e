package entity

import "time"

// Roles válidos para User. Jerarquía total: admin ⊇ staff ⊇ viewer.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

var roleLevels = map[string]int{
	RoleAdmin:  3,
	RoleStaff:  2,
	RoleViewer: 1,
}

// RoleLevel devuelve el nivel numérico del rol (0 si es desconocido).
func RoleLevel(role string) int { return roleLevels[role] }

// ValidRole indica si el rol pertenece a la jerarquía.
func ValidRole(role string) bool { return roleLevels[role] > 0 }

// User representa un operador registrado en el dispositivo.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca la contraseña en claro
	Name         string    `json:"name"`
	Role         string    `json:"role"` // admin, staff, viewer
	Bio          string    `json:"bio,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasPermission compara niveles de jerarquía: el rol del usuario debe ser >= al requerido.
func (u *User) HasPermission(requiredRole string) bool {
	if u == nil {
		return false
	}
	return RoleLevel(u.Role) >= RoleLevel(requiredRole)
}
