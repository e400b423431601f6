package errors

import "errors"

var (
	ErrMovesetNotFound  = errors.New("moveset not found")
	ErrMalformedMoveset = errors.New("moveset is not valid JSON")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownStore     = errors.New("unknown moveset store")
	ErrUnknownFormat    = errors.New("unknown fragment format")
)
