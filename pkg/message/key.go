package message

import (
	"fmt"

	"github.com/dmitrymomot/herald/pkg/macro"
)

// RecordKey identifies a message record, e.g. PLAYER.DEATH.
// It follows the macro key grammar but is a distinct type, so record keys
// and macro keys cannot be mixed up.
type RecordKey struct {
	s string
}

// NewRecordKey validates s and returns it as a RecordKey.
// The error wraps both ErrInvalidRecordKey and macro.ErrInvalidKey.
func NewRecordKey(s string) (RecordKey, error) {
	if err := macro.Validate(s); err != nil {
		return RecordKey{}, fmt.Errorf("%w: %w", ErrInvalidRecordKey, err)
	}
	return RecordKey{s: s}, nil
}

// MustRecordKey is like NewRecordKey but panics on invalid input.
func MustRecordKey(s string) RecordKey {
	k, err := NewRecordKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// IsValid reports whether k was produced from valid input.
func (k RecordKey) IsValid() bool { return k.s != "" }

// String returns the dotted key.
func (k RecordKey) String() string { return k.s }
