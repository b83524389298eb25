package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrMissingField  = errors.New("campo requerido vacío")
	ErrInvalidNumber = errors.New("número inválido")
	ErrInvalidDate   = errors.New("fecha inválida")
)

// ValidationError señala el campo del formulario que no superó la validación.
// Err es siempre uno de ErrMissingField, ErrInvalidNumber o ErrInvalidDate.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
