package macro

import "iter"

// StringMap holds the formatted values produced during one resolution pass.
// Insertion order is preserved. Every stored value is either Unresolved or
// non-blank text.
type StringMap struct {
	values map[Key]Value
	order  []Key
	blanks []Key
}

// NewStringMap returns an empty string map.
func NewStringMap() *StringMap {
	return &StringMap{values: make(map[Key]Value)}
}

// Put stores v under key, overwriting any previous value.
// Invalid keys and blank resolved text are rejected; Put reports whether the
// value was stored.
func (m *StringMap) Put(key Key, v Value) bool {
	if !key.IsValid() {
		return false
	}
	if v.blank() {
		m.blanks = append(m.blanks, key)
		return false
	}
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = v
	return true
}

// PutIfAbsent stores v only if key has no value yet.
func (m *StringMap) PutIfAbsent(key Key, v Value) bool {
	if _, ok := m.values[key]; ok {
		return false
	}
	return m.Put(key, v)
}

// Get returns the value stored under key.
func (m *StringMap) Get(key Key) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Merge copies entries of other that are absent from m.
// Existing entries win, so the first writer of a key is kept.
func (m *StringMap) Merge(other *StringMap) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		m.PutIfAbsent(k, other.values[k])
	}
}

// discarded returns the keys whose blank text Put rejected.
func (m *StringMap) discarded() []Key {
	if m == nil {
		return nil
	}
	return m.blanks
}

// Len returns the number of entries.
func (m *StringMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// All iterates entries in insertion order.
func (m *StringMap) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.order {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *StringMap) Keys() []Key {
	if m == nil {
		return nil
	}
	keys := make([]Key, len(m.order))
	copy(keys, m.order)
	return keys
}
