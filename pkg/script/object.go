// object.go - Insertion-ordered object values
//
// BareScript objects are string-keyed maps that preserve insertion order so
// objectKeys(), diagnostics, and JSON rendering are stable across runs. The
// same structure backs the interpreter's globals and call-frame locals.
package script

// Object is an ordered mapping from string keys to values
type Object struct {
	keys    []string
	entries map[string]Value
}

// NewObjectMap creates an empty ordered object
func NewObjectMap() *Object {
	return &Object{
		entries: make(map[string]Value),
	}
}

// Get retrieves a value by key
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// GetOrNull retrieves a value by key, returning null for absent keys
func (o *Object) GetOrNull(key string) Value {
	if v, ok := o.entries[key]; ok {
		return v
	}
	return NewNull()
}

// Has reports whether the key is present
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Set stores a value, preserving the key's original insertion position
func (o *Object) Set(key string, value Value) {
	if _, ok := o.entries[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = value
}

// Delete removes a key and its insertion-order slot
func (o *Object) Delete(key string) {
	if _, ok := o.entries[key]; !ok {
		return
	}
	delete(o.entries, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of entries
func (o *Object) Len() int {
	return len(o.keys)
}

// Copy returns a shallow copy preserving key order
func (o *Object) Copy() *Object {
	dup := &Object{
		keys:    make([]string, len(o.keys)),
		entries: make(map[string]Value, len(o.entries)),
	}
	copy(dup.keys, o.keys)
	for k, v := range o.entries {
		dup.entries[k] = v
	}
	return dup
}
