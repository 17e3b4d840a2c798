package macro

// ObjectMap is the bag of context objects for a single render.
// Values are borrowed references. An ObjectMap is not safe for concurrent use.
type ObjectMap map[Key]any

// NewObjectMap returns an empty object map.
func NewObjectMap() ObjectMap {
	return make(ObjectMap)
}

// Put stores value under key. A nil value is stored as Unresolved so that a
// key placed in the map always resolves to something. Invalid keys are ignored.
func (m ObjectMap) Put(key Key, value any) {
	if !key.IsValid() {
		return
	}
	if value == nil {
		value = Unresolved
	}
	m[key] = value
}

// PutIfAbsent stores value only when key is not present yet.
// It reports whether the value was stored.
func (m ObjectMap) PutIfAbsent(key Key, value any) bool {
	if _, ok := m[key]; ok {
		return false
	}
	if !key.IsValid() {
		return false
	}
	m.Put(key, value)
	return true
}

// Get returns the object stored under key.
func (m ObjectMap) Get(key Key) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Has reports whether key is present.
func (m ObjectMap) Has(key Key) bool {
	_, ok := m[key]
	return ok
}
