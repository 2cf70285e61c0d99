package dsl

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// String returns the string coder. Numbers and other kinds are rejected.
func String() courier.Schema[string] { return stringSchema[string]{} }

// StringOf returns a string coder projected onto a named string type.
func StringOf[T ~string]() courier.Schema[T] { return stringSchema[T]{} }

// Bool returns the boolean coder.
func Bool() courier.Schema[bool] { return boolSchema[bool]{} }

// BoolOf returns a boolean coder projected onto a named bool type.
func BoolOf[T ~bool]() courier.Schema[T] { return boolSchema[T]{} }

// Int returns the integer coder. It accepts JSON numbers with no fractional
// part that fit in int64; strings are never converted.
func Int() courier.Schema[int64] { return intSchema[int64]{} }

// IntOf returns an integer coder projected onto a named integer type. Values
// outside the range of T fail with overflow.
func IntOf[T ~int | ~int32 | ~int64]() courier.Schema[T] { return intSchema[T]{} }

// Float returns the float64 coder.
func Float() courier.Schema[float64] { return floatSchema{} }

// Any returns a coder that passes decoded values through untouched.
func Any() courier.Schema[any] { return anySchema{} }

// ---- string ----

type stringSchema[T ~string] struct{}

func (stringSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	switch s := v.(type) {
	case string:
		return T(s), nil
	case T:
		return s, nil
	}
	return "", courier.Issues{courier.TypeMismatch("/", "string", v)}
}

func (stringSchema[T]) Dump(ctx context.Context, v T) (any, error) { return string(v), nil }

func (s stringSchema[T]) TypeCheck(ctx context.Context, v any) error {
	_, err := s.Coerce(ctx, v)
	return err
}

func (stringSchema[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

// ---- bool ----

type boolSchema[T ~bool] struct{}

func (boolSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	switch b := v.(type) {
	case bool:
		return T(b), nil
	case T:
		return b, nil
	}
	return false, courier.Issues{courier.TypeMismatch("/", "boolean", v)}
}

func (boolSchema[T]) Dump(ctx context.Context, v T) (any, error) { return bool(v), nil }

func (s boolSchema[T]) TypeCheck(ctx context.Context, v any) error {
	_, err := s.Coerce(ctx, v)
	return err
}

func (boolSchema[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// ---- integer ----

type intSchema[T ~int | ~int32 | ~int64] struct{}

func (intSchema[T]) Coerce(ctx context.Context, v any) (T, error) {
	i, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	if int64(T(i)) != i {
		return 0, overflow(v)
	}
	return T(i), nil
}

func (intSchema[T]) Dump(ctx context.Context, v T) (any, error) { return int64(v), nil }

func (s intSchema[T]) TypeCheck(ctx context.Context, v any) error {
	_, err := toInt64(v)
	return err
}

func (intSchema[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		} else if errors.Is(err, strconv.ErrRange) {
			return 0, overflow(v)
		}
		f, err := t.Float64()
		if err != nil {
			return 0, courier.Issues{courier.TypeMismatch("/", "integer", v)}
		}
		return floatToInt64(f, v)
	case float64:
		return floatToInt64(t, v)
	case float32:
		return floatToInt64(float64(t), v)
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return uintToInt64(uint64(t), v)
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return uintToInt64(t, v)
	}
	return 0, courier.Issues{courier.TypeMismatch("/", "integer", v)}
}

func floatToInt64(f float64, orig any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, courier.Issues{courier.TypeMismatch("/", "integer", orig)}
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, overflow(orig)
	}
	return int64(f), nil
}

func uintToInt64(u uint64, orig any) (int64, error) {
	if u > math.MaxInt64 {
		return 0, overflow(orig)
	}
	return int64(u), nil
}

func overflow(v any) courier.Issues {
	iss := courier.Single("/", courier.CodeOverflow, "integer out of range")
	iss[0].Params = map[string]any{"value": v}
	return iss
}

// ---- float ----

type floatSchema struct{}

func (floatSchema) Coerce(ctx context.Context, v any) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, overflow(v)
			}
			return 0, courier.Issues{courier.TypeMismatch("/", "number", v)}
		}
		return f, nil
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case int32:
		return float64(t), nil
	}
	return 0, courier.Issues{courier.TypeMismatch("/", "number", v)}
}

func (floatSchema) Dump(ctx context.Context, v float64) (any, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, courier.Single("/", courier.CodeInvalidFormat, "non-finite number")
	}
	return v, nil
}

func (s floatSchema) TypeCheck(ctx context.Context, v any) error {
	_, err := s.Coerce(ctx, v)
	return err
}

func (floatSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

// ---- any ----

type anySchema struct{}

func (anySchema) Coerce(ctx context.Context, v any) (any, error) { return v, nil }
func (anySchema) Dump(ctx context.Context, v any) (any, error)   { return v, nil }
func (anySchema) TypeCheck(ctx context.Context, v any) error     { return nil }
func (anySchema) JSONSchema() (*js.Schema, error)                { return &js.Schema{}, nil }
