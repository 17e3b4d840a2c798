package message

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dmitrymomot/herald/pkg/macro"
)

// Repository looks up raw message records.
// A lookup that cannot produce a usable record returns an error wrapping
// ErrRecordNotFound or ErrInvalidRecord; the pipeline then treats the
// message as disabled.
type Repository interface {
	Record(key RecordKey) (Record, error)
}

// ConstantProvider is implemented by repositories that define constants,
// values such as a server name that every template may reference.
// The returned map must not be modified.
type ConstantProvider interface {
	Constants() map[macro.Key]string
}

// RepositoryOption configures a MapRepository.
type RepositoryOption func(*MapRepository) error

// WithRecords adds records. A later record with the same key replaces an
// earlier one.
func WithRecords(records ...Record) RepositoryOption {
	return func(r *MapRepository) error {
		for _, rec := range records {
			if !rec.Key.IsValid() {
				return fmt.Errorf("%w: record without key", ErrInvalidRecordKey)
			}
			r.records[rec.Key] = rec
			delete(r.invalid, rec.Key)
		}
		return nil
	}
}

// WithConstant defines a constant available to every template as {NAME}.
func WithConstant(name, value string) RepositoryOption {
	return func(r *MapRepository) error {
		k, err := macro.NewKey(name)
		if err != nil {
			return err
		}
		r.constants[k] = value
		return nil
	}
}

// withInvalid marks key as present but unusable.
func withInvalid(key RecordKey, reason error) RepositoryOption {
	return func(r *MapRepository) error {
		r.invalid[key] = reason
		delete(r.records, key)
		return nil
	}
}

// MapRepository is an in-memory Repository.
// It is immutable after construction and safe for concurrent use.
type MapRepository struct {
	records   map[RecordKey]Record
	invalid   map[RecordKey]error
	constants map[macro.Key]string
}

// NewMapRepository creates a repository from options.
func NewMapRepository(opts ...RepositoryOption) (*MapRepository, error) {
	r := &MapRepository{
		records:   make(map[RecordKey]Record),
		invalid:   make(map[RecordKey]error),
		constants: make(map[macro.Key]string),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply repository option: %w", err)
		}
	}
	return r, nil
}

// Record implements Repository.
func (r *MapRepository) Record(key RecordKey) (Record, error) {
	if reason, ok := r.invalid[key]; ok {
		return Disabled(key), fmt.Errorf("%w %s: %w", ErrInvalidRecord, key, reason)
	}
	rec, ok := r.records[key]
	if !ok {
		return Disabled(key), fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	return rec, nil
}

// Constants implements ConstantProvider.
func (r *MapRepository) Constants() map[macro.Key]string {
	return r.constants
}

// Keys returns the keys of all usable records, sorted.
func (r *MapRepository) Keys() []RecordKey {
	keys := make([]RecordKey, 0, len(r.records))
	for k := range r.records {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b RecordKey) int { return cmp.Compare(a.s, b.s) })
	return keys
}

// Len returns the number of usable records.
func (r *MapRepository) Len() int {
	return len(r.records)
}

var (
	_ Repository       = (*MapRepository)(nil)
	_ ConstantProvider = (*MapRepository)(nil)
)
