package dsl

import (
	"context"
	"fmt"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// AnyAdapter is a type-erased view of a Schema[T]. Registries and tools that
// handle many record types through one code path use it.
type AnyAdapter struct {
	typeName   string
	coerce     func(context.Context, any) (any, error)
	dump       func(context.Context, any) (any, error)
	typeCheck  func(context.Context, any) error
	jsonSchema func() (*js.Schema, error)
	orig       any
}

// Erase wraps s as an AnyAdapter.
func Erase[T any](s courier.Schema[T]) AnyAdapter {
	name := typeNameOf[T]()
	return AnyAdapter{
		typeName: name,
		coerce: func(ctx context.Context, v any) (any, error) {
			tv, err := s.Coerce(ctx, v)
			if err != nil {
				return nil, err
			}
			return tv, nil
		},
		dump: func(ctx context.Context, v any) (any, error) {
			tv, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("dsl: %s adapter cannot dump %T", name, v)
			}
			return s.Dump(ctx, tv)
		},
		typeCheck:  s.TypeCheck,
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// TypeName returns the Go type name of the wrapped schema's value.
func (ad AnyAdapter) TypeName() string { return ad.typeName }

// Coerce returns the typed value boxed in any.
func (ad AnyAdapter) Coerce(ctx context.Context, v any) (any, error) { return ad.coerce(ctx, v) }

// Dump accepts a value previously produced by Coerce (or of the same type).
func (ad AnyAdapter) Dump(ctx context.Context, v any) (any, error) { return ad.dump(ctx, v) }

// TypeCheck runs the wrapped schema's kind check.
func (ad AnyAdapter) TypeCheck(ctx context.Context, v any) error { return ad.typeCheck(ctx, v) }

// JSONSchema exports the wrapped schema.
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) { return ad.jsonSchema() }

// RoundTrip coerces v and dumps the typed result, yielding the normalized
// wire form.
func (ad AnyAdapter) RoundTrip(ctx context.Context, v any) (any, error) {
	tv, err := ad.coerce(ctx, v)
	if err != nil {
		return nil, err
	}
	return ad.dump(ctx, tv)
}

// Orig returns the wrapped Schema[T].
func (ad AnyAdapter) Orig() any { return ad.orig }
