package dsl

import (
	"context"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// Codec exposes a wire/domain codec as a Schema over the domain type:
// Coerce runs In().Coerce then Decode, Dump runs Encode then In().Dump.
// Plain Decode errors are reported as invalid_format.
func Codec[A, B any](c courier.Codec[A, B]) courier.Schema[B] { return codecSchema[A, B]{c: c} }

type codecSchema[A, B any] struct {
	c courier.Codec[A, B]
}

func (s codecSchema[A, B]) Coerce(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := s.c.In().Coerce(ctx, v)
	if err != nil {
		return zero, err
	}
	b, err := s.c.Decode(ctx, a)
	if err != nil {
		if iss, ok := courier.AsIssues(err); ok {
			return zero, iss
		}
		return zero, courier.Issues{courier.InvalidFormat("/", s.format(), err)}
	}
	return b, nil
}

func (s codecSchema[A, B]) Dump(ctx context.Context, v B) (any, error) {
	a, err := s.c.Encode(ctx, v)
	if err != nil {
		return nil, courier.ToIssues("/", err)
	}
	return s.c.In().Dump(ctx, a)
}

func (s codecSchema[A, B]) TypeCheck(ctx context.Context, v any) error {
	return s.c.In().TypeCheck(ctx, v)
}

func (s codecSchema[A, B]) JSONSchema() (*js.Schema, error) {
	base, err := s.c.In().JSONSchema()
	if err != nil {
		return nil, err
	}
	if f := s.format(); f != "" {
		base = base.Clone()
		base.Format = f
	}
	return base, nil
}

func (s codecSchema[A, B]) format() string {
	if f, ok := s.c.(interface{ Format() string }); ok {
		return f.Format()
	}
	return ""
}

// Convert projects s onto B with a pair of total conversions. It is meant
// for named types over an existing shape, such as type Tags []string.
func Convert[A, B any](s courier.Schema[A], to func(A) B, from func(B) A) courier.Schema[B] {
	return convertSchema[A, B]{s: s, to: to, from: from}
}

type convertSchema[A, B any] struct {
	s    courier.Schema[A]
	to   func(A) B
	from func(B) A
}

func (c convertSchema[A, B]) Coerce(ctx context.Context, v any) (B, error) {
	a, err := c.s.Coerce(ctx, v)
	if err != nil {
		var zero B
		return zero, err
	}
	return c.to(a), nil
}

func (c convertSchema[A, B]) Dump(ctx context.Context, v B) (any, error) {
	return c.s.Dump(ctx, c.from(v))
}

func (c convertSchema[A, B]) TypeCheck(ctx context.Context, v any) error {
	return c.s.TypeCheck(ctx, v)
}

func (c convertSchema[A, B]) JSONSchema() (*js.Schema, error) { return c.s.JSONSchema() }

// Nullable accepts JSON null as a nil pointer in addition to what s accepts.
func Nullable[V any](s courier.Schema[V]) courier.Schema[*V] { return nullableSchema[V]{s: s} }

type nullableSchema[V any] struct {
	s courier.Schema[V]
}

func (n nullableSchema[V]) Coerce(ctx context.Context, v any) (*V, error) {
	if v == nil {
		return nil, nil
	}
	tv, err := n.s.Coerce(ctx, v)
	if err != nil {
		return nil, err
	}
	return &tv, nil
}

func (n nullableSchema[V]) Dump(ctx context.Context, v *V) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.s.Dump(ctx, *v)
}

func (n nullableSchema[V]) TypeCheck(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return n.s.TypeCheck(ctx, v)
}

func (n nullableSchema[V]) JSONSchema() (*js.Schema, error) {
	inner, err := n.s.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{OneOf: []*js.Schema{inner, js.Null()}}, nil
}
