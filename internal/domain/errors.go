package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSessionNotFound    = errors.New("sesión de traspaso no encontrada")
	ErrSubmissionInFlight = errors.New("ya hay un envío en curso para esta sesión")
	ErrEmptySelection     = errors.New("no hay productos seleccionados")
)

// FieldErrors mensajes de validación del backend agrupados por campo
// (ej. "items.0.quantity" -> ["máximo 5 unidades"]).
type FieldErrors map[string][]string

// ValidationError error de validación estructurado (HTTP 422 del backend).
type ValidationError struct {
	Message     string
	FieldErrors FieldErrors
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "error de validación"
}

// JoinedMessages concatena todos los mensajes de campo para mostrar un resumen único.
func (e *ValidationError) JoinedMessages() string {
	all := make([]string, 0, len(e.FieldErrors))
	for _, msgs := range e.FieldErrors {
		all = append(all, msgs...)
	}
	if len(all) == 0 && e.Message != "" {
		return e.Message
	}
	return strings.Join(all, ", ")
}

// BackendError error genérico del backend (respuesta no-2xx distinta de 422).
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error del backend (HTTP %d)", e.Status)
}
