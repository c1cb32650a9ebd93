package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidIndex   = errors.New("índice fuera de rango")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrUpstream       = errors.New("fallo del API de negocio")
	ErrSessionPending = errors.New("sesión en resolución")
	ErrNoSupplies     = errors.New("catálogo de insumos vacío")
	ErrFormClosed     = errors.New("el formulario ya fue cerrado")
	ErrStoreClosed    = errors.New("el store de la página fue descartado")
)
