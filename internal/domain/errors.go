package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInvalidCredentials     = errors.New("email o contraseña incorrectos")
	ErrNotAuthenticated       = errors.New("no hay sesión activa")
	ErrForbidden              = errors.New("acceso denegado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrEntityInUse            = errors.New("la entidad tiene productos asociados")
	ErrProductNotFound        = errors.New("producto no encontrado")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrConcurrentModification = errors.New("el producto fue modificado por otra operación")
	ErrNotIdentified          = errors.New("se requiere nombre y email para enviar mensajes")
)
