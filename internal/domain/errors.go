package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Son los tipos de fallo que
// la capa HTTP traduce a códigos de estado; cualquier otro error es interno.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error es un fallo de dominio etiquetado con su tipo (Kind) y un mensaje que
// identifica la clave afectada. errors.Is(err, ErrNotFound) funciona sobre él.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// NotFoundf construye un error de tipo ErrNotFound.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf construye un error de tipo ErrConflict.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

// Invalidf construye un error de tipo ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// KindOf devuelve el tipo de dominio de err, o nil si es un error interno.
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrInvalidInput} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
