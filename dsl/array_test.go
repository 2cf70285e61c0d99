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

func TestArray_IndexedIssues(t *testing.T) {
	ctx := context.Background()
	s := g.Array(g.String())

	v, err := s.Coerce(ctx, []any{"a", "b"})
	if err != nil || !reflect.DeepEqual(v, []string{"a", "b"}) {
		t.Fatalf("unexpected: v=%v err=%v", v, err)
	}

	_, err = s.Coerce(ctx, []any{"a", json.Number("1"), true})
	iss, ok := courier.AsIssues(err)
	if !ok || len(iss) != 2 || iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("expected issues at /1 and /2, got %v", err)
	}

	out, _ := s.Dump(ctx, nil)
	if arr, ok := out.([]any); !ok || len(arr) != 0 {
		t.Fatalf("nil slice must dump as an empty array, got %#v", out)
	}
}

func TestMap_KeysInPaths(t *testing.T) {
	ctx := context.Background()
	s := g.Map(g.Int())
	_, err := s.Coerce(ctx, map[string]any{"a/b": "x", "ok": json.Number("1")})
	iss, _ := courier.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/a~1b" {
		t.Fatalf("expected escaped pointer, got %v", err)
	}
	js, _ := s.JSONSchema()
	if js.Type != "object" || js.AdditionalProperties == nil {
		t.Fatalf("unexpected schema: %+v", js)
	}
}

type tags []string

func TestConvert_NamedSlice(t *testing.T) {
	ctx := context.Background()
	s := g.Convert(g.Array(g.String()),
		func(v []string) tags { return tags(v) },
		func(v tags) []string { return []string(v) })
	v, err := s.Coerce(ctx, []any{"x"})
	if err != nil || len(v) != 1 || v[0] != "x" {
		t.Fatalf("unexpected: v=%v err=%v", v, err)
	}
	out, _ := s.Dump(ctx, v)
	if !reflect.DeepEqual(out, []any{"x"}) {
		t.Fatalf("dump mismatch: %#v", out)
	}
}

func TestNullable(t *testing.T) {
	ctx := context.Background()
	s := g.Nullable(g.String())

	v, err := s.Coerce(ctx, nil)
	if err != nil || v != nil {
		t.Fatalf("null must coerce to nil, got %v err=%v", v, err)
	}
	v, err = s.Coerce(ctx, "x")
	if err != nil || v == nil || *v != "x" {
		t.Fatalf("unexpected: v=%v err=%v", v, err)
	}
	if out, _ := s.Dump(ctx, nil); out != nil {
		t.Fatalf("nil must dump as null, got %#v", out)
	}
	js, _ := s.JSONSchema()
	if len(js.OneOf) != 2 || js.OneOf[1].Type != "null" {
		t.Fatalf("unexpected schema: %+v", js)
	}
}

type upperCodec struct{}

func (upperCodec) In() courier.Schema[string] { return g.String() }
func (upperCodec) Decode(_ context.Context, a string) (string, error) {
	if a == "" {
		return "", errors.New("empty")
	}
	return strings.ToUpper(a), nil
}
func (upperCodec) Encode(_ context.Context, b string) (string, error) {
	return strings.ToLower(b), nil
}

func TestCodec_PlainDecodeErrorIsInvalidFormat(t *testing.T) {
	ctx := context.Background()
	s := g.Codec[string, string](upperCodec{})

	v, err := s.Coerce(ctx, "abc")
	if err != nil || v != "ABC" {
		t.Fatalf("unexpected: v=%v err=%v", v, err)
	}
	out, _ := s.Dump(ctx, v)
	if out != "abc" {
		t.Fatalf("dump mismatch: %v", out)
	}
	_, err = s.Coerce(ctx, "")
	iss, ok := courier.AsIssues(err)
	if !ok || iss[0].Code != courier.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestErase_Adapter(t *testing.T) {
	ctx := context.Background()
	ad := g.Erase(tokenRequestSchema)
	if ad.TypeName() != "tokenRequest" {
		t.Fatalf("unexpected type name: %s", ad.TypeName())
	}
	v, err := ad.Coerce(ctx, map[string]any{"scope": "s"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := v.(tokenRequest); !ok {
		t.Fatalf("expected tokenRequest, got %T", v)
	}
	if _, err := ad.Dump(ctx, "wrong"); err == nil {
		t.Fatalf("dump of a foreign type must fail")
	}
	out, err := ad.RoundTrip(ctx, map[string]any{"scope": "s", "junk": 1})
	if err != nil || !reflect.DeepEqual(out, map[string]any{"scope": "s"}) {
		t.Fatalf("unexpected: out=%v err=%v", out, err)
	}
}
