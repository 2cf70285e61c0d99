package courier

import "fmt"

// Presence is the bit flag recorded for an optional field.
type Presence uint8

const (
	PresenceSeen    Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                      // Field value was null.
)

// Opt holds an optional field: absent, explicit null, or a value.
// The zero value is absent.
type Opt[T any] struct {
	value    T
	presence Presence
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{value: v, presence: PresenceSeen} }

// Null returns an Opt that dumps as an explicit JSON null.
func Null[T any]() Opt[T] { return Opt[T]{presence: PresenceSeen | PresenceWasNull} }

// Absent returns an Opt that is omitted on dump.
func Absent[T any]() Opt[T] { return Opt[T]{} }

// Presence returns the raw presence flags.
func (o Opt[T]) Presence() Presence { return o.presence }

// IsSet reports whether the field was present, either as a value or as null.
func (o Opt[T]) IsSet() bool { return o.presence&PresenceSeen != 0 }

// IsNull reports whether the field was explicitly null.
func (o Opt[T]) IsNull() bool { return o.presence&PresenceWasNull != 0 }

// IsAbsent reports whether the field was never set.
func (o Opt[T]) IsAbsent() bool { return !o.IsSet() }

// Get returns the value and whether one is held (false for absent and null).
func (o Opt[T]) Get() (T, bool) {
	if o.IsSet() && !o.IsNull() {
		return o.value, true
	}
	var zero T
	return zero, false
}

// OrElse returns the held value or d.
func (o Opt[T]) OrElse(d T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

func (o Opt[T]) String() string {
	switch {
	case o.IsAbsent():
		return "<absent>"
	case o.IsNull():
		return "<null>"
	default:
		return fmt.Sprint(o.value)
	}
}
