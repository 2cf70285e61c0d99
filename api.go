package courier

import (
	"context"

	js "github.com/reoring/courier/jsonschema"
)

// Schema maps between a generic decoded JSON value and T.
//
// Schemas are immutable after construction and safe for concurrent use.
type Schema[T any] interface {
	// Coerce turns a decoded value (map[string]any, []any, string,
	// json.Number, bool or nil) into T. The input is never mutated and no
	// partial value is returned on failure.
	Coerce(ctx context.Context, v any) (T, error)

	// Dump is the inverse of Coerce and produces a JSON-encodable value.
	Dump(ctx context.Context, v T) (any, error)

	// TypeCheck verifies only the top-level kind of v.
	TypeCheck(ctx context.Context, v any) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	In() Schema[A]                              // Wire schema.
	Decode(ctx context.Context, a A) (B, error) // A -> B.
	Encode(ctx context.Context, b B) (A, error) // B -> A.
}

// Normalizer is an optional hook run on a coerced value before Refine.
type Normalizer[T any] interface {
	Normalize(ctx context.Context, v T) (T, error)
}

// Refiner is an optional hook run last during coercion, typically for
// cross-field checks.
type Refiner[T any] interface {
	Refine(ctx context.Context, v T) error
}

// Coerce is a thin wrapper around Schema.Coerce.
func Coerce[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Coerce(ctx, v)
}

// Dump is a thin wrapper around Schema.Dump.
func Dump[T any](ctx context.Context, s Schema[T], v T) (any, error) {
	return s.Dump(ctx, v)
}

// SafeCoerce coerces v into T, returning (zero, false) on failure.
func SafeCoerce[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Coerce(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is reports whether v passes the schema's top-level kind check.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.TypeCheck(ctx, v) == nil
}

// RoundTrip coerces v and dumps the result, yielding the normalized wire
// form.
func RoundTrip[T any](ctx context.Context, s Schema[T], v any) (any, error) {
	tv, err := s.Coerce(ctx, v)
	if err != nil {
		return nil, err
	}
	return s.Dump(ctx, tv)
}

// ---- coercion context flags ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that stops record and array coercion
// at the first issue.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current coercion should stop on the first
// issue.
func IsFailFast(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyFailFast).(bool)
	return b
}
