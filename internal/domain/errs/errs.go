package errs

import (
	"errors"
	"fmt"
)

// Dos únicas clases de error del dominio. Los handlers las traducen a 404 / 400.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// NotFound envuelve ErrNotFound indicando recurso e id.
func NotFound(resource string, id int64) error {
	return fmt.Errorf("%s %d %w", resource, id, ErrNotFound)
}

// Invalid envuelve ErrInvalidInput con un mensaje apto para el cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
