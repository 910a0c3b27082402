package todo

import "encoding/json"

// Optional is a tri-state wrapper used in partial updates. A field can be
// absent from the payload ("leave unchanged"), present as JSON null
// ("clear"), or present with a value. Plain pointer fields collapse the
// first two cases, so updates carry Optionals instead.
//
// The zero Optional means "absent"; combined with the omitzero struct tag,
// absence survives a marshal/unmarshal round-trip between modules.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns an Optional holding a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload at all.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present as an explicit null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether a non-null value is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// IsZero lets encoding/json's omitzero tag drop absent fields on marshal.
func (o Optional[T]) IsZero() bool { return !o.set }

// MarshalJSON encodes null for explicit nulls and the value otherwise.
// Absent Optionals are dropped before this is called via omitzero.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON is only invoked when the key is present in the payload,
// which is what distinguishes set from absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
