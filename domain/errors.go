package domain

import "errors"

var (
	// ErrInvalidArgument indicates a negative term or a range whose min
	// exceeds its max. The caller must fix the input; retrying won't help.
	ErrInvalidArgument = errors.New("argumento inválido")
	// ErrMissingField indicates a record with neither termMonths nor a
	// complete termMin/termMax pair.
	ErrMissingField = errors.New("campo faltante")
)
