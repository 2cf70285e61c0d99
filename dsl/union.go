package dsl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// Variant is one candidate of a union over U. Build it with Case.
type Variant[U any] struct {
	name    string
	typ     reflect.Type
	invalid error

	coerce func(ctx context.Context, v any) (U, error)
	match  func(u U) bool
	dump   func(ctx context.Context, u U) (any, error)
	schema func() (*js.Schema, error)
}

// Name returns the candidate name (the tag value for discriminated unions).
func (c Variant[U]) Name() string { return c.name }

// Case declares a candidate whose Go type V implements U. The concrete type
// stored in U is what selects the candidate again on dump, so every case of
// a union needs a distinct V.
func Case[U, V any](name string, s courier.Schema[V]) Variant[U] {
	vt := reflect.TypeFor[V]()
	ut := reflect.TypeFor[U]()
	c := Variant[U]{name: name, typ: vt}
	switch {
	case s == nil:
		c.invalid = fmt.Errorf("case %q: nil schema", name)
		return c
	case vt != ut && (ut.Kind() != reflect.Interface || !vt.Implements(ut)):
		c.invalid = fmt.Errorf("case %q: %s does not implement %s", name, vt, ut)
		return c
	}
	c.coerce = func(ctx context.Context, v any) (U, error) {
		var zero U
		tv, err := s.Coerce(ctx, v)
		if err != nil {
			return zero, err
		}
		return any(tv).(U), nil
	}
	c.match = func(u U) bool {
		_, ok := any(u).(V)
		return ok
	}
	c.dump = func(ctx context.Context, u U) (any, error) {
		return s.Dump(ctx, any(u).(V))
	}
	c.schema = s.JSONSchema
	return c
}

// UnionBuilder assembles an ordered or discriminated union.
type UnionBuilder[U any] struct {
	discriminator string
	cases         []Variant[U]
}

// OneOf starts an ordered union. Coercion tries the cases in declared order
// and commits to the first that succeeds; later cases are not consulted.
func OneOf[U any](cases ...Variant[U]) *UnionBuilder[U] {
	return &UnionBuilder[U]{cases: append([]Variant[U](nil), cases...)}
}

// Discriminated starts a union selected by the string member key of an
// object. Case names are the accepted tag values.
func Discriminated[U any](key string, cases ...Variant[U]) *UnionBuilder[U] {
	return &UnionBuilder[U]{discriminator: key, cases: append([]Variant[U](nil), cases...)}
}

// Build validates the declaration and returns the schema.
func (b *UnionBuilder[U]) Build() (courier.Schema[U], error) {
	var errs []error
	if len(b.cases) == 0 {
		errs = append(errs, errors.New("no cases"))
	}
	names := map[string]struct{}{}
	types := map[reflect.Type]string{}
	for _, c := range b.cases {
		if c.invalid != nil {
			errs = append(errs, c.invalid)
			continue
		}
		if c.name == "" {
			errs = append(errs, errors.New("case with empty name"))
		}
		if _, dup := names[c.name]; dup {
			errs = append(errs, fmt.Errorf("duplicate case %q", c.name))
		}
		if prev, dup := types[c.typ]; dup {
			errs = append(errs, fmt.Errorf("cases %q and %q share Go type %s", prev, c.name, c.typ))
		}
		names[c.name] = struct{}{}
		types[c.typ] = c.name
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("dsl: union %s: %w", typeNameOf[U](), errors.Join(errs...))
	}
	cases := append([]Variant[U](nil), b.cases...)
	candidates := make([]string, len(cases))
	for i, c := range cases {
		candidates[i] = c.name
	}
	u := unionSchema[U]{cases: cases, candidates: candidates}
	if b.discriminator != "" {
		return &discriminatedSchema[U]{unionSchema: u, key: b.discriminator}, nil
	}
	return &orderedSchema[U]{unionSchema: u}, nil
}

// MustBuild is like Build but panics on an invalid declaration.
func (b *UnionBuilder[U]) MustBuild() courier.Schema[U] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type unionSchema[U any] struct {
	cases      []Variant[U]
	candidates []string
}

func (u *unionSchema[U]) caseFor(v U) (Variant[U], bool) {
	for _, c := range u.cases {
		if c.match(v) {
			return c, true
		}
	}
	return Variant[U]{}, false
}

func (u *unionSchema[U]) variantSchemas() ([]*js.Schema, error) {
	out := make([]*js.Schema, 0, len(u.cases))
	for _, c := range u.cases {
		s, err := c.schema()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ---- ordered ----

type orderedSchema[U any] struct {
	unionSchema[U]
}

func (u *orderedSchema[U]) Coerce(ctx context.Context, v any) (U, error) {
	causes := make([]error, 0, len(u.cases))
	for _, c := range u.cases {
		out, err := c.coerce(ctx, v)
		if err == nil {
			return out, nil
		}
		causes = append(causes, err)
		if log := courier.Logger(); log.Enabled(ctx, slog.LevelDebug) {
			log.DebugContext(ctx, "union candidate rejected",
				slog.String("union", typeNameOf[U]()),
				slog.String("candidate", c.name),
				slog.String("error", err.Error()))
		}
	}
	var zero U
	return zero, courier.Issues{courier.NoMatchingVariant("/", v, append([]string(nil), u.candidates...), causes)}
}

func (u *orderedSchema[U]) Dump(ctx context.Context, v U) (any, error) {
	c, ok := u.caseFor(v)
	if !ok {
		return nil, courier.Issues{courier.TypeMismatch("/", "one of "+strings.Join(u.candidates, "|"), v)}
	}
	return c.dump(ctx, v)
}

// TypeCheck accepts v when any candidate accepts its kind.
func (u *orderedSchema[U]) TypeCheck(ctx context.Context, v any) error {
	for _, c := range u.cases {
		if _, err := c.coerce(ctx, v); err == nil {
			return nil
		}
	}
	return courier.Issues{courier.NoMatchingVariant("/", v, append([]string(nil), u.candidates...), nil)}
}

func (u *orderedSchema[U]) JSONSchema() (*js.Schema, error) {
	vs, err := u.variantSchemas()
	if err != nil {
		return nil, err
	}
	return &js.Schema{OneOf: vs}, nil
}

// ---- discriminated ----

type discriminatedSchema[U any] struct {
	unionSchema[U]
	key string
}

func (u *discriminatedSchema[U]) Coerce(ctx context.Context, v any) (U, error) {
	var zero U
	m, ok := v.(map[string]any)
	if !ok {
		return zero, courier.Issues{courier.TypeMismatch("/", "object", v)}
	}
	tagPath := courier.FieldPointer(u.key)
	raw, present := m[u.key]
	if !present || raw == nil || raw == "" {
		return zero, courier.Single(tagPath, courier.CodeDiscriminatorMissing, u.key)
	}
	tag, isString := raw.(string)
	if !isString {
		return zero, courier.Issues{courier.TypeMismatch(tagPath, "string", raw)}
	}
	for _, c := range u.cases {
		if c.name != tag {
			continue
		}
		rest := make(map[string]any, len(m)-1)
		for k, val := range m {
			if k != u.key {
				rest[k] = val
			}
		}
		return c.coerce(ctx, rest)
	}
	iss := courier.Single(tagPath, courier.CodeDiscriminatorUnknown, "unknown variant '"+tag+"'; expected one of "+strings.Join(u.candidates, ", "))
	iss[0].Params = map[string]any{"value": tag, "allowed": append([]string(nil), u.candidates...)}
	return zero, iss
}

func (u *discriminatedSchema[U]) Dump(ctx context.Context, v U) (any, error) {
	c, ok := u.caseFor(v)
	if !ok {
		return nil, courier.Issues{courier.TypeMismatch("/", "one of "+strings.Join(u.candidates, "|"), v)}
	}
	out, err := c.dump(ctx, v)
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		return nil, courier.Issues{courier.TypeMismatch("/", "object", out)}
	}
	m[u.key] = c.name
	return m, nil
}

func (u *discriminatedSchema[U]) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return courier.Issues{courier.TypeMismatch("/", "object", v)}
	}
	return nil
}

func (u *discriminatedSchema[U]) JSONSchema() (*js.Schema, error) {
	vs, err := u.variantSchemas()
	if err != nil {
		return nil, err
	}
	for i, s := range vs {
		s = s.Clone()
		if s.Properties == nil {
			s.Properties = map[string]*js.Schema{}
		}
		s.Properties[u.key] = &js.Schema{Type: "string", Const: u.cases[i].name}
		s.Required = append([]string{u.key}, s.Required...)
		vs[i] = s
	}
	return &js.Schema{OneOf: vs}, nil
}
