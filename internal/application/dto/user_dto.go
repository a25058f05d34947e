package dto

import "time"

// SignupRequest alta de usuario. Role es opcional (por defecto "staff").
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest campos editables del perfil; nil = sin cambios.
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SessionResponse sesión establecida: token + usuario.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
