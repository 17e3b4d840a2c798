package macro

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidKey      = errors.New("macro: invalid key")
	ErrEmptyCapability = errors.New("macro: capability cannot be empty")
	ErrNilFactory      = errors.New("macro: adapter factory cannot be nil")
	ErrNilResolver     = errors.New("macro: resolver cannot be nil")
)

// InvalidKeyError describes a string rejected at the string-to-key boundary.
type InvalidKeyError struct {
	Input  string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return "macro: invalid key " + strconv.Quote(e.Input) + ": " + e.Reason
}

// Unwrap allows errors.Is(err, ErrInvalidKey).
func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}
