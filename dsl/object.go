package dsl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	courier "github.com/reoring/courier"
	js "github.com/reoring/courier/jsonschema"
)

// Field describes one property of the record type R: its property name, wire
// key, coder and accessor. Build fields with Required or Optional.
type Field[R any] struct {
	name     string
	key      string
	typeName string
	required bool
	invalid  error

	coerce func(ctx context.Context, v any, dst *R) error
	dump   func(ctx context.Context, src *R) (out any, emit bool, err error)
	schema func() (*js.Schema, error)
}

// Key sets the wire key. Without it the property name is used.
func (f Field[R]) Key(wire string) Field[R] {
	f.key = wire
	return f
}

// Name returns the property name.
func (f Field[R]) Name() string { return f.name }

// WireKey returns the JSON key the field reads and writes.
func (f Field[R]) WireKey() string { return f.key }

// IsRequired reports whether the field must be present.
func (f Field[R]) IsRequired() bool { return f.required }

// Required declares a field that must be present. A JSON null is handed to
// the coder, so it fails unless the coder accepts null (see Nullable).
func Required[R, V any](name string, s courier.Schema[V], get func(*R) *V) Field[R] {
	f := Field[R]{name: name, key: name, typeName: typeNameOf[V](), required: true}
	if s == nil || get == nil {
		f.invalid = fmt.Errorf("field %q: nil schema or accessor", name)
		return f
	}
	f.coerce = func(ctx context.Context, v any, dst *R) error {
		tv, err := s.Coerce(ctx, v)
		if err != nil {
			return err
		}
		*get(dst) = tv
		return nil
	}
	f.dump = func(ctx context.Context, src *R) (any, bool, error) {
		out, err := s.Dump(ctx, *get(src))
		return out, true, err
	}
	f.schema = s.JSONSchema
	return f
}

// Optional declares a field that may be absent or null. Absence leaves the
// Opt unset, null sets it to courier.Null, anything else is coerced with s.
func Optional[R, V any](name string, s courier.Schema[V], get func(*R) *courier.Opt[V]) Field[R] {
	f := Field[R]{name: name, key: name, typeName: typeNameOf[V]()}
	if s == nil || get == nil {
		f.invalid = fmt.Errorf("field %q: nil schema or accessor", name)
		return f
	}
	f.coerce = func(ctx context.Context, v any, dst *R) error {
		if v == nil {
			*get(dst) = courier.Null[V]()
			return nil
		}
		tv, err := s.Coerce(ctx, v)
		if err != nil {
			return err
		}
		*get(dst) = courier.Some(tv)
		return nil
	}
	f.dump = func(ctx context.Context, src *R) (any, bool, error) {
		o := *get(src)
		if o.IsAbsent() {
			return nil, false, nil
		}
		if o.IsNull() {
			return nil, true, nil
		}
		v, _ := o.Get()
		out, err := s.Dump(ctx, v)
		return out, true, err
	}
	f.schema = s.JSONSchema
	return f
}

func typeNameOf[V any]() string {
	t := reflect.TypeFor[V]()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

type objectNormalize[R any] struct {
	name string
	fn   func(ctx context.Context, r *R) error
}

type objectRefine[R any] struct {
	name string
	fn   func(ctx context.Context, r *R) error
}

// ObjectBuilder assembles a record schema.
type ObjectBuilder[R any] struct {
	fields  []Field[R]
	unknown courier.UnknownPolicy
	extras  func(*R) *map[string]any
	norms   []objectNormalize[R]
	refines []objectRefine[R]
}

// Object starts a record schema for R with fields in declared order.
func Object[R any](fields ...Field[R]) *ObjectBuilder[R] {
	return &ObjectBuilder[R]{fields: append([]Field[R](nil), fields...)}
}

// Field appends a field.
func (b *ObjectBuilder[R]) Field(f Field[R]) *ObjectBuilder[R] {
	b.fields = append(b.fields, f)
	return b
}

// UnknownStrip ignores keys the record does not declare. This is the default.
func (b *ObjectBuilder[R]) UnknownStrip() *ObjectBuilder[R] {
	b.unknown = courier.UnknownStrip
	b.extras = nil
	return b
}

// UnknownStrict rejects keys the record does not declare.
func (b *ObjectBuilder[R]) UnknownStrict() *ObjectBuilder[R] {
	b.unknown = courier.UnknownStrict
	b.extras = nil
	return b
}

// UnknownPassthrough stores undeclared keys in the map returned by get and
// emits them again on dump. Declared keys always win over extras.
func (b *ObjectBuilder[R]) UnknownPassthrough(get func(*R) *map[string]any) *ObjectBuilder[R] {
	b.unknown = courier.UnknownPassthrough
	b.extras = get
	return b
}

// Normalize registers an in-place rewrite that runs after every field
// coerced successfully and before any refinement. Plain errors are reported
// with code "custom".
func (b *ObjectBuilder[R]) Normalize(name string, fn func(ctx context.Context, r *R) error) *ObjectBuilder[R] {
	b.norms = append(b.norms, objectNormalize[R]{name: name, fn: fn})
	return b
}

// Refine registers a check that runs after every field coerced
// successfully. Plain errors are reported with code "custom".
func (b *ObjectBuilder[R]) Refine(name string, fn func(ctx context.Context, r *R) error) *ObjectBuilder[R] {
	b.refines = append(b.refines, objectRefine[R]{name: name, fn: fn})
	return b
}

// Build validates the declaration and returns the schema.
func (b *ObjectBuilder[R]) Build() (courier.Schema[R], error) {
	names := make(map[string]struct{}, len(b.fields))
	keys := make(map[string]struct{}, len(b.fields))
	var errs []error
	for _, f := range b.fields {
		if f.invalid != nil {
			errs = append(errs, f.invalid)
			continue
		}
		if f.name == "" || f.key == "" {
			errs = append(errs, errors.New("field with empty name or key"))
			continue
		}
		if _, dup := names[f.name]; dup {
			errs = append(errs, fmt.Errorf("duplicate property %q", f.name))
		}
		if _, dup := keys[f.key]; dup {
			errs = append(errs, fmt.Errorf("duplicate wire key %q", f.key))
		}
		names[f.name] = struct{}{}
		keys[f.key] = struct{}{}
	}
	if b.unknown == courier.UnknownPassthrough && b.extras == nil {
		errs = append(errs, errors.New("passthrough requires an extras accessor"))
	}
	for _, n := range b.norms {
		if n.fn == nil {
			errs = append(errs, fmt.Errorf("normalize %q: nil func", n.name))
		}
	}
	for _, r := range b.refines {
		if r.fn == nil {
			errs = append(errs, fmt.Errorf("refine %q: nil func", r.name))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("dsl: object %s: %w", typeNameOf[R](), errors.Join(errs...))
	}
	return &objectSchema[R]{
		fields:  append([]Field[R](nil), b.fields...),
		keys:    keys,
		unknown: b.unknown,
		extras:  b.extras,
		norms:   append([]objectNormalize[R](nil), b.norms...),
		refines: append([]objectRefine[R](nil), b.refines...),
	}, nil
}

// MustBuild is like Build but panics on an invalid declaration.
func (b *ObjectBuilder[R]) MustBuild() courier.Schema[R] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type objectSchema[R any] struct {
	fields  []Field[R]
	keys    map[string]struct{}
	unknown courier.UnknownPolicy
	extras  func(*R) *map[string]any
	norms   []objectNormalize[R]
	refines []objectRefine[R]
}

var (
	_ courier.Normalizer[struct{}] = (*objectSchema[struct{}])(nil)
	_ courier.Refiner[struct{}]    = (*objectSchema[struct{}])(nil)
)

func (o *objectSchema[R]) Coerce(ctx context.Context, v any) (R, error) {
	var zero R
	m, ok := v.(map[string]any)
	if !ok {
		return zero, courier.Issues{courier.TypeMismatch("/", "object", v)}
	}
	failFast := courier.IsFailFast(ctx)

	var out R
	var iss courier.Issues
	for _, f := range o.fields {
		base := courier.FieldPointer(f.key)
		raw, present := m[f.key]
		if !present {
			if f.required {
				iss = courier.AppendIssues(iss, courier.MissingField(base, f.name, f.key, f.typeName))
				if failFast {
					return zero, iss
				}
			}
			continue
		}
		if err := f.coerce(ctx, raw, &out); err != nil {
			iss = courier.AppendIssues(iss, courier.ToIssues("/", err).Rebase(base)...)
			if failFast {
				return zero, iss
			}
		}
	}

	var extras map[string]any
	for _, k := range o.unknownKeys(m) {
		switch o.unknown {
		case courier.UnknownStrict:
			iss = courier.AppendIssues(iss, courier.Single(courier.FieldPointer(k), courier.CodeUnknownKey, k)...)
			if failFast {
				return zero, iss
			}
		case courier.UnknownPassthrough:
			if extras == nil {
				extras = make(map[string]any)
			}
			extras[k] = m[k]
		default:
			if log := courier.Logger(); log.Enabled(ctx, slog.LevelDebug) {
				log.DebugContext(ctx, "unknown key ignored", slog.String("key", k), slog.String("type", typeNameOf[R]()))
			}
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	if extras != nil {
		*o.extras(&out) = extras
	}

	return courier.Finish[R](ctx, out, o)
}

func (o *objectSchema[R]) unknownKeys(m map[string]any) []string {
	var ks []string
	for k := range m {
		if _, known := o.keys[k]; !known {
			ks = append(ks, k)
		}
	}
	sort.Strings(ks)
	return ks
}

// Normalize applies the registered rewrites in order and stops at the first
// failure.
func (o *objectSchema[R]) Normalize(ctx context.Context, v R) (R, error) {
	for _, n := range o.norms {
		if err := n.fn(ctx, &v); err != nil {
			if _, ok := courier.AsIssues(err); ok {
				return v, err
			}
			return v, courier.Issues{{Path: "/", Code: courier.CodeCustom, Message: err.Error(), Hint: n.name, Cause: err}}
		}
	}
	return v, nil
}

// Refine runs the registered refinements in order and gathers their issues.
func (o *objectSchema[R]) Refine(ctx context.Context, v R) error {
	var iss courier.Issues
	for _, r := range o.refines {
		err := r.fn(ctx, &v)
		if err == nil {
			continue
		}
		if ri, ok := courier.AsIssues(err); ok {
			iss = courier.AppendIssues(iss, ri...)
		} else {
			iss = courier.AppendIssues(iss, courier.Issue{Path: "/", Code: courier.CodeCustom, Message: err.Error(), Hint: r.name, Cause: err})
		}
		if courier.IsFailFast(ctx) {
			break
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (o *objectSchema[R]) Dump(ctx context.Context, v R) (any, error) {
	out := make(map[string]any, len(o.fields))
	if o.extras != nil {
		for k, ev := range *o.extras(&v) {
			if _, known := o.keys[k]; !known {
				out[k] = ev
			}
		}
	}
	var iss courier.Issues
	for _, f := range o.fields {
		dv, emit, err := f.dump(ctx, &v)
		if err != nil {
			iss = courier.AppendIssues(iss, courier.ToIssues("/", err).Rebase(courier.FieldPointer(f.key))...)
			continue
		}
		if emit {
			out[f.key] = dv
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema[R]) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return courier.Issues{courier.TypeMismatch("/", "object", v)}
	}
	return nil
}

func (o *objectSchema[R]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(o.fields))}
	for _, f := range o.fields {
		fs, err := f.schema()
		if err != nil {
			return nil, err
		}
		out.Properties[f.key] = fs
		if f.required {
			out.Required = append(out.Required, f.key)
		}
	}
	if o.unknown == courier.UnknownStrict {
		out.AdditionalProperties = false
	}
	return out, nil
}

// FieldKeys returns the wire keys of a record schema in declared order, or
// nil when s is not a record.
func FieldKeys[R any](s courier.Schema[R]) []string {
	o, ok := s.(*objectSchema[R])
	if !ok {
		return nil
	}
	ks := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		ks = append(ks, f.key)
	}
	return ks
}
