package dsl_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	courier "github.com/reoring/courier"
	g "github.com/reoring/courier/dsl"
)

type tokenRequest struct {
	Scope     string
	ExpiresIn courier.Opt[string]
}

var tokenRequestSchema = g.Object(
	g.Required("scope", g.String(), func(r *tokenRequest) *string { return &r.Scope }),
	g.Optional("expiresIn", g.String(), func(r *tokenRequest) *courier.Opt[string] { return &r.ExpiresIn }).Key("expires_in"),
).MustBuild()

type auditRequest struct {
	Cursor courier.Opt[string]
}

var auditRequestSchema = g.Object(
	g.Optional("cursor", g.String(), func(r *auditRequest) *courier.Opt[string] { return &r.Cursor }),
).MustBuild()

func TestObject_RequiredMissing(t *testing.T) {
	_, err := tokenRequestSchema.Coerce(context.Background(), map[string]any{})
	var mf *courier.MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected *MissingFieldError, got %v", err)
	}
	if mf.Field != "scope" || mf.Type != "string" {
		t.Fatalf("unexpected detail: %+v", mf)
	}
	iss, _ := courier.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/scope" || iss[0].Code != courier.CodeRequired {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestObject_WireKeyAlias(t *testing.T) {
	ctx := context.Background()
	v, err := tokenRequestSchema.Coerce(ctx, map[string]any{"scope": "read:user", "expires_in": "2 days"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got, ok := v.ExpiresIn.Get(); !ok || got != "2 days" {
		t.Fatalf("alias not honored: %v", v.ExpiresIn)
	}

	// the property name is not a wire key
	v, err = tokenRequestSchema.Coerce(ctx, map[string]any{"scope": "read:user", "expiresIn": "2 days"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.ExpiresIn.IsSet() {
		t.Fatalf("property name must not be read when an alias exists")
	}

	out, _ := tokenRequestSchema.Dump(ctx, tokenRequest{Scope: "s", ExpiresIn: courier.Some("1h")})
	want := map[string]any{"scope": "s", "expires_in": "1h"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("dump mismatch\n got=%v\nwant=%v", out, want)
	}
}

func TestObject_OptionalTriState(t *testing.T) {
	ctx := context.Background()

	out, _ := auditRequestSchema.Dump(ctx, auditRequest{})
	if m := out.(map[string]any); len(m) != 0 {
		t.Fatalf("unset optional must be omitted, got %v", m)
	}

	out, _ = auditRequestSchema.Dump(ctx, auditRequest{Cursor: courier.Null[string]()})
	m := out.(map[string]any)
	if v, ok := m["cursor"]; !ok || v != nil {
		t.Fatalf("explicit null must be emitted, got %v", m)
	}

	v, err := auditRequestSchema.Coerce(ctx, map[string]any{"cursor": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !v.Cursor.IsNull() {
		t.Fatalf("null input must be kept as explicit null: %v", v.Cursor)
	}

	v, _ = auditRequestSchema.Coerce(ctx, map[string]any{})
	if !v.Cursor.IsAbsent() {
		t.Fatalf("missing key must stay absent: %v", v.Cursor)
	}
}

func TestObject_UnknownKeysIgnoredByDefault(t *testing.T) {
	v, err := auditRequestSchema.Coerce(context.Background(), map[string]any{"cursor": "abc", "unexpected": json.Number("1")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c, _ := v.Cursor.Get(); c != "abc" {
		t.Fatalf("cursor mismatch: %v", v.Cursor)
	}
}

func TestObject_UnknownStrict(t *testing.T) {
	s := g.Object(
		g.Optional("cursor", g.String(), func(r *auditRequest) *courier.Opt[string] { return &r.Cursor }),
	).UnknownStrict().MustBuild()

	_, err := s.Coerce(context.Background(), map[string]any{"cursor": "abc", "unexpected": true})
	iss, ok := courier.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != courier.CodeUnknownKey || iss[0].Path != "/unexpected" {
		t.Fatalf("expected unknown_key at /unexpected, got %v", err)
	}
}

type labeled struct {
	Name  string
	Extra map[string]any
}

func TestObject_UnknownPassthrough(t *testing.T) {
	ctx := context.Background()
	s := g.Object(
		g.Required("name", g.String(), func(r *labeled) *string { return &r.Name }),
	).UnknownPassthrough(func(r *labeled) *map[string]any { return &r.Extra }).MustBuild()

	in := map[string]any{"name": "n", "color": "red"}
	v, err := s.Coerce(ctx, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Extra["color"] != "red" {
		t.Fatalf("extra not kept: %v", v.Extra)
	}
	out, _ := s.Dump(ctx, v)
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch\n got=%v\nwant=%v", out, in)
	}

	// declared keys win over extras
	v.Extra["name"] = "shadow"
	out, _ = s.Dump(ctx, v)
	if out.(map[string]any)["name"] != "n" {
		t.Fatalf("extras must not override declared keys: %v", out)
	}
}

type nested struct {
	Outer string
	Inner tokenRequest
	List  []tokenRequest
}

var nestedSchema = g.Object(
	g.Required("outer", g.String(), func(r *nested) *string { return &r.Outer }),
	g.Required("inner", tokenRequestSchema, func(r *nested) *tokenRequest { return &r.Inner }),
	g.Required("list", g.Array(tokenRequestSchema), func(r *nested) *[]tokenRequest { return &r.List }),
)

func TestObject_AllOrNothingWithNestedPaths(t *testing.T) {
	s := nestedSchema.MustBuild()
	_, err := s.Coerce(context.Background(), map[string]any{
		"outer": json.Number("1"),
		"inner": map[string]any{"expires_in": "x"},
		"list":  []any{map[string]any{"scope": "a"}, map[string]any{}},
	})
	iss, ok := courier.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	paths := map[string]string{}
	for _, it := range iss {
		paths[it.Path] = it.Code
	}
	want := map[string]string{
		"/outer":        courier.CodeInvalidType,
		"/inner/scope":  courier.CodeRequired,
		"/list/1/scope": courier.CodeRequired,
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("issue paths mismatch\n got=%v\nwant=%v", paths, want)
	}

	var mf *courier.MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "scope" {
		t.Fatalf("nested cause must survive propagation, got %v", mf)
	}
}

func TestObject_FailFastStopsAtFirst(t *testing.T) {
	s := nestedSchema.MustBuild()
	ctx := courier.WithFailFast(context.Background(), true)
	_, err := s.Coerce(ctx, map[string]any{"outer": json.Number("1")})
	iss, _ := courier.AsIssues(err)
	if len(iss) != 1 {
		t.Fatalf("expected exactly one issue in fail-fast mode, got %v", iss)
	}
}

func TestObject_DoesNotMutateInput(t *testing.T) {
	s := nestedSchema.MustBuild()
	in := map[string]any{
		"outer": "o",
		"inner": map[string]any{"scope": "s", "junk": 1},
		"list":  []any{},
		"other": "x",
	}
	before, _ := json.Marshal(in)
	if _, err := s.Coerce(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	after, _ := json.Marshal(in)
	if string(before) != string(after) {
		t.Fatalf("input mutated\nbefore=%s\nafter=%s", before, after)
	}
}

func TestObject_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := nestedSchema.MustBuild()
	in := map[string]any{
		"outer": "o",
		"inner": map[string]any{"scope": "s", "expires_in": nil},
		"list":  []any{map[string]any{"scope": "a", "expires_in": "1d"}},
	}
	out, err := courier.RoundTrip(ctx, s, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch\n got=%v\nwant=%v", out, in)
	}
}

func TestObject_Refine(t *testing.T) {
	ctx := context.Background()
	s := g.Object(
		g.Required("scope", g.String(), func(r *tokenRequest) *string { return &r.Scope }),
	).Refine("scope-prefix", func(ctx context.Context, r *tokenRequest) error {
		if len(r.Scope) < 5 || r.Scope[:5] != "read:" {
			return courier.Issues{courier.Root().Field("scope").Issue(courier.CodeCustom, "scope must start with read:")}
		}
		return nil
	}).MustBuild()

	if _, err := s.Coerce(ctx, map[string]any{"scope": "read:user"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := s.Coerce(ctx, map[string]any{"scope": "write:user"})
	iss, ok := courier.AsIssues(err)
	if !ok || iss[0].Path != "/scope" || iss[0].Code != courier.CodeCustom {
		t.Fatalf("expected custom issue at /scope, got %v", err)
	}
}

func TestObject_NormalizeRunsBeforeRefine(t *testing.T) {
	ctx := context.Background()
	s := g.Object(
		g.Required("scope", g.String(), func(r *tokenRequest) *string { return &r.Scope }),
	).Normalize("trim", func(ctx context.Context, r *tokenRequest) error {
		r.Scope = strings.TrimSpace(r.Scope)
		if r.Scope == "" {
			return errors.New("blank scope")
		}
		return nil
	}).Refine("no-spaces", func(ctx context.Context, r *tokenRequest) error {
		if strings.Contains(r.Scope, " ") {
			return errors.New("scope contains spaces")
		}
		return nil
	}).MustBuild()

	v, err := s.Coerce(ctx, map[string]any{"scope": "  read:user "})
	if err != nil || v.Scope != "read:user" {
		t.Fatalf("unexpected: v=%+v err=%v", v, err)
	}
	_, err = s.Coerce(ctx, map[string]any{"scope": "   "})
	iss, ok := courier.AsIssues(err)
	if !ok || iss[0].Code != courier.CodeCustom || iss[0].Hint != "trim" {
		t.Fatalf("expected custom issue from trim, got %v", err)
	}
	if _, err := g.Object[tokenRequest]().Normalize("nil", nil).Build(); err == nil {
		t.Fatalf("nil normalizer must not build")
	}
}

func TestObject_BuildRejectsDuplicates(t *testing.T) {
	_, err := g.Object(
		g.Required("a", g.String(), func(r *tokenRequest) *string { return &r.Scope }),
		g.Optional("b", g.String(), func(r *tokenRequest) *courier.Opt[string] { return &r.ExpiresIn }).Key("a"),
	).Build()
	if err == nil {
		t.Fatalf("expected duplicate wire key error")
	}
}

func TestObject_NotAnObject(t *testing.T) {
	_, err := tokenRequestSchema.Coerce(context.Background(), []any{})
	var tm *courier.TypeMismatchError
	if !errors.As(err, &tm) || tm.Expected != "object" || tm.Got != "array" {
		t.Fatalf("expected object mismatch, got %v", err)
	}
}

func TestObject_JSONSchema(t *testing.T) {
	js, err := tokenRequestSchema.JSONSchema()
	if err != nil {
		t.Fatalf("json schema err: %v", err)
	}
	if js.Type != "object" || !reflect.DeepEqual(js.Required, []string{"scope"}) {
		t.Fatalf("unexpected schema: %+v", js)
	}
	if _, ok := js.Properties["expires_in"]; !ok {
		t.Fatalf("properties must use wire keys: %v", js.Properties)
	}
	if !reflect.DeepEqual(g.FieldKeys(tokenRequestSchema), []string{"scope", "expires_in"}) {
		t.Fatalf("unexpected field keys: %v", g.FieldKeys(tokenRequestSchema))
	}
}
