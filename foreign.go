package surgo

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Keyer is the only obligation surgo places on record types referenced by
// [Foreign] and [ForeignSlice]: extracting the record's identifying key.
// IntoKey fails when the record has no assigned identifier yet.
type Keyer interface {
	IntoKey() (string, error)
}

type foreignState int

const (
	unloaded foreignState = iota
	keyOnly
	loaded
)

// Foreign is a lazy reference to a related record. It holds either just the
// record's key, the fully loaded record, or nothing at all when the relation
// was not fetched. The zero value is unloaded.
//
// Foreign marshals to the record's key string, whichever state it is in, and
// unmarshals from a key string, an embedded record object, or null.
type Foreign[T Keyer] struct {
	state foreignState
	key   string
	value T
}

// ForeignKey returns a reference holding only the record's key.
func ForeignKey[T Keyer](key string) Foreign[T] {
	return Foreign[T]{state: keyOnly, key: key}
}

// ForeignValue returns a reference holding a fully loaded record.
func ForeignValue[T Keyer](value T) Foreign[T] {
	return Foreign[T]{state: loaded, value: value}
}

// Key returns the identifying key of the referenced record. In the loaded
// state the key is recovered from the record itself; the second return is
// false when the reference is unloaded or the record has no identifier.
func (f Foreign[T]) Key() (string, bool) {
	switch f.state {
	case keyOnly:
		return f.key, true
	case loaded:
		key, err := f.value.IntoKey()
		if err != nil {
			return "", false
		}
		return key, true
	}
	return "", false
}

// Value returns the loaded record. It never fetches; the second return is
// false unless the reference is in the loaded state.
func (f Foreign[T]) Value() (T, bool) {
	if f.state != loaded {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Unloaded reports whether the relation was present but never fetched.
func (f Foreign[T]) Unloaded() bool {
	return f.state == unloaded
}

// MarshalJSON collapses the reference to its key string. An unloaded
// reference marshals to null; a loaded record without an assigned
// identifier is a marshaling error.
func (f Foreign[T]) MarshalJSON() ([]byte, error) {
	switch f.state {
	case keyOnly:
		return json.Marshal(f.key)
	case loaded:
		key, err := f.value.IntoKey()
		if err != nil {
			return nil, fmt.Errorf("marshaling foreign reference: %w", err)
		}
		return json.Marshal(key)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes by shape, without a discriminator: a string yields a
// key-only reference, an object a loaded record, null an unloaded one. Null
// is checked first since JSON decoders treat null as a no-op for the other
// shapes.
func (f *Foreign[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = Foreign[T]{}
		return nil
	}
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*f = ForeignKey[T](key)
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("unmarshaling foreign reference: %w", err)
	}
	*f = ForeignValue(value)
	return nil
}

// ForeignSlice is the one-to-many analogue of [Foreign]: either an ordered
// list of record keys, an ordered list of loaded records, or unloaded. The
// zero value is unloaded.
type ForeignSlice[T Keyer] struct {
	state  foreignState
	keys   []string
	values []T
}

// ForeignKeys returns a reference holding only the records' keys.
func ForeignKeys[T Keyer](keys ...string) ForeignSlice[T] {
	return ForeignSlice[T]{state: keyOnly, keys: keys}
}

// ForeignValues returns a reference holding fully loaded records.
func ForeignValues[T Keyer](values ...T) ForeignSlice[T] {
	return ForeignSlice[T]{state: loaded, values: values}
}

// Keys returns the identifying keys of the referenced records, recovering
// them from the records themselves in the loaded state.
func (f ForeignSlice[T]) Keys() ([]string, bool) {
	switch f.state {
	case keyOnly:
		return f.keys, true
	case loaded:
		keys, err := intoKeys(f.values)
		if err != nil {
			return nil, false
		}
		return keys, true
	}
	return nil, false
}

// Values returns the loaded records, if any.
func (f ForeignSlice[T]) Values() ([]T, bool) {
	if f.state != loaded {
		return nil, false
	}
	return f.values, true
}

// Unloaded reports whether the relation was present but never fetched.
func (f ForeignSlice[T]) Unloaded() bool {
	return f.state == unloaded
}

// MarshalJSON collapses the reference to a list of key strings, or null
// when unloaded.
func (f ForeignSlice[T]) MarshalJSON() ([]byte, error) {
	switch f.state {
	case keyOnly:
		return json.Marshal(f.keys)
	case loaded:
		keys, err := intoKeys(f.values)
		if err != nil {
			return nil, err
		}
		return json.Marshal(keys)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes by shape, like [Foreign.UnmarshalJSON], over
// list-typed input: a list of strings yields keys, a list of objects loaded
// records, null an unloaded reference.
func (f *ForeignSlice[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = ForeignSlice[T]{}
		return nil
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err == nil {
		*f = ForeignKeys[T](keys...)
		return nil
	}
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("unmarshaling foreign references: %w", err)
	}
	*f = ForeignValues(values...)
	return nil
}

func intoKeys[T Keyer](values []T) ([]string, error) {
	keys := make([]string, len(values))
	for i, v := range values {
		key, err := v.IntoKey()
		if err != nil {
			return nil, fmt.Errorf("marshaling foreign reference %d: %w", i, err)
		}
		keys[i] = key
	}
	return keys, nil
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
