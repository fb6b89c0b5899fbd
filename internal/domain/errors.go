package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Sólo los resultados terminales cruzan esta frontera: la contención transitoria
// de locks se absorbe en la capa sqlite y aflora únicamente como ErrSystemBusy
// cuando se agota el presupuesto de reintentos.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrSystemBusy        = errors.New("sistema ocupado, intente de nuevo")
)
