package dsl

import (
	"context"
	"sort"
	"strconv"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// Array returns a coder for JSON arrays whose elements all use elem.
// Coercion is all-or-nothing; element issues carry their index in the path.
func Array[V any](elem courier.Schema[V]) courier.Schema[[]V] { return &arraySchema[V]{elem: elem} }

type arraySchema[V any] struct {
	elem courier.Schema[V]
}

func (a *arraySchema[V]) Coerce(ctx context.Context, v any) ([]V, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, courier.Issues{courier.TypeMismatch("/", "array", v)}
	}
	out := make([]V, 0, len(src))
	var iss courier.Issues
	for i, ev := range src {
		tv, err := a.elem.Coerce(ctx, ev)
		if err != nil {
			iss = courier.AppendIssues(iss, courier.ToIssues("/", err).Rebase("/"+strconv.Itoa(i))...)
			if courier.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, tv)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Dump always produces an array; a nil slice dumps as [].
func (a *arraySchema[V]) Dump(ctx context.Context, v []V) (any, error) {
	out := make([]any, 0, len(v))
	for i, ev := range v {
		dv, err := a.elem.Dump(ctx, ev)
		if err != nil {
			return nil, courier.ToIssues("/", err).Rebase("/" + strconv.Itoa(i))
		}
		out = append(out, dv)
	}
	return out, nil
}

func (a *arraySchema[V]) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.([]any); !ok {
		return courier.Issues{courier.TypeMismatch("/", "array", v)}
	}
	return nil
}

func (a *arraySchema[V]) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items}, nil
}

// Map returns a coder for JSON objects used as string-keyed dictionaries.
func Map[V any](elem courier.Schema[V]) courier.Schema[map[string]V] { return &mapSchema[V]{elem: elem} }

type mapSchema[V any] struct {
	elem courier.Schema[V]
}

func (m *mapSchema[V]) Coerce(ctx context.Context, v any) (map[string]V, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, courier.Issues{courier.TypeMismatch("/", "object", v)}
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]V, len(src))
	var iss courier.Issues
	for _, k := range keys {
		tv, err := m.elem.Coerce(ctx, src[k])
		if err != nil {
			iss = courier.AppendIssues(iss, courier.ToIssues("/", err).Rebase(courier.FieldPointer(k))...)
			if courier.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = tv
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (m *mapSchema[V]) Dump(ctx context.Context, v map[string]V) (any, error) {
	out := make(map[string]any, len(v))
	for k, ev := range v {
		dv, err := m.elem.Dump(ctx, ev)
		if err != nil {
			return nil, courier.ToIssues("/", err).Rebase(courier.FieldPointer(k))
		}
		out[k] = dv
	}
	return out, nil
}

func (m *mapSchema[V]) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return courier.Issues{courier.TypeMismatch("/", "object", v)}
	}
	return nil
}

func (m *mapSchema[V]) JSONSchema() (*js.Schema, error) {
	vs, err := m.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs}, nil
}
