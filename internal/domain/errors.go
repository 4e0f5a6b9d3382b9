package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmployeeNotFound   = errors.New("empleado no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidDateRange   = errors.New("rango de fechas inválido")
	ErrInvalidTimestamp   = errors.New("timestamp inválido")
	ErrInvalidCode        = errors.New("código de verificación inválido")
	ErrNotVerified        = errors.New("email no verificado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyDecided     = errors.New("la solicitud ya fue decidida")
)
