// Package auth contiene los casos de uso de autenticación y sesión:
// registro, login, logout, perfil y verificación de permisos por jerarquía.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
	"github.com/inventoree/inventoree-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación sobre la colección local de usuarios.
type AuthUseCase struct {
	users   repository.UserRepository
	session repository.SessionRepository
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, session repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, session: session, jwtCfg: jwtCfg}
}

// Signup crea un usuario con password bcrypt, lo persiste y deja la sesión
// establecida. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
// Sin rol explícito se asigna "staff".
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SessionResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.establishSession(ctx, user)
}

// Login verifica las credenciales contra el hash guardado y establece la
// sesión. Cualquier discrepancia responde ErrInvalidCredentials, sin
// distinguir email desconocido de contraseña incorrecta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.establishSession(ctx, user)
}

// establishSession genera el token, persiste el snapshot de sesión y la
// identidad visible del chat.
func (uc *AuthUseCase) establishSession(ctx context.Context, user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.session.Save(ctx, user, token); err != nil {
		return nil, err
	}
	if err := uc.session.SaveIdentity(ctx, user.Name, user.Email); err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Logout limpia la sesión persistida. Cerrar una sesión inexistente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.session.Clear(ctx)
}

// RestoreSession devuelve la sesión guardada en el dispositivo, o
// ErrNotAuthenticated si no hay ninguna.
func (uc *AuthUseCase) RestoreSession(ctx context.Context) (*dto.SessionResponse, error) {
	user, token, err := uc.session.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return &dto.SessionResponse{Token: token, User: *toUserResponse(user)}, nil
}

// UpdateProfile aplica los campos enviados sobre el usuario de la sesión
// activa, tanto en el snapshot de sesión como en la colección de usuarios.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, token, err := uc.session.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.ProfilePhoto != nil {
		user.ProfilePhoto = *in.ProfilePhoto
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.session.Save(ctx, user, token); err != nil {
		return nil, err
	}
	if err := uc.session.SaveIdentity(ctx, user.Name, user.Email); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// HasPermission compara la jerarquía de roles (admin=3, staff=2, viewer=1):
// el rol de la sesión activa debe ser >= al requerido. Sin sesión: false.
func (uc *AuthUseCase) HasPermission(ctx context.Context, requiredRole string) bool {
	user, _, err := uc.session.Load(ctx)
	if err != nil || user == nil {
		return false
	}
	return user.HasPermission(requiredRole)
}

// ListUsers devuelve todos los usuarios registrados, sin hashes de contraseña.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		Bio:          u.Bio,
		Phone:        u.Phone,
		Location:     u.Location,
		ProfilePhoto: u.ProfilePhoto,
		CreatedAt:    u.CreatedAt,
	}
}
