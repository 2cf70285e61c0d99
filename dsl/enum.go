package dsl

import (
	"context"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// EnumSchema is a closed set of wire strings. Matching is exact and
// case-sensitive.
type EnumSchema[E ~string] struct {
	values  []E
	allowed []string
	index   map[string]struct{}
}

var _ courier.Schema[string] = (*EnumSchema[string])(nil)

// Enum builds a closed enum coder over values, kept in declared order.
// Repeated values are collapsed.
func Enum[E ~string](values ...E) *EnumSchema[E] {
	e := &EnumSchema[E]{index: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if _, dup := e.index[string(v)]; dup {
			continue
		}
		e.index[string(v)] = struct{}{}
		e.values = append(e.values, v)
		e.allowed = append(e.allowed, string(v))
	}
	return e
}

// Values returns the members in declared order.
func (e *EnumSchema[E]) Values() []E { return append([]E(nil), e.values...) }

// Contains reports whether v belongs to the set.
func (e *EnumSchema[E]) Contains(v E) bool {
	_, ok := e.index[string(v)]
	return ok
}

func (e *EnumSchema[E]) Coerce(ctx context.Context, v any) (E, error) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case E:
		s = string(t)
	default:
		return "", courier.Issues{courier.TypeMismatch("/", "string", v)}
	}
	if _, ok := e.index[s]; !ok {
		return "", courier.Issues{courier.UnknownEnum("/", s, append([]string(nil), e.allowed...))}
	}
	return E(s), nil
}

// Dump returns the wire string. It never fails.
func (e *EnumSchema[E]) Dump(ctx context.Context, v E) (any, error) { return string(v), nil }

func (e *EnumSchema[E]) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case string, E:
		return nil
	}
	return courier.Issues{courier.TypeMismatch("/", "string", v)}
}

func (e *EnumSchema[E]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.allowed))
	for i, s := range e.allowed {
		vals[i] = s
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}
