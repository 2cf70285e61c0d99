package dsl_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	courier "github.com/reoring/courier"
	g "github.com/reoring/courier/dsl"
)

type expiresIn interface{ isExpiresIn() }

type expiresInDuration string
type expiresInMillis int64

func (expiresInDuration) isExpiresIn() {}
func (expiresInMillis) isExpiresIn()   {}

func TestOneOf_StringIntegerAmbiguity(t *testing.T) {
	ctx := context.Background()
	strFirst := g.OneOf(
		g.Case[expiresIn]("duration", g.StringOf[expiresInDuration]()),
		g.Case[expiresIn]("millis", g.IntOf[expiresInMillis]()),
	).MustBuild()
	intFirst := g.OneOf(
		g.Case[expiresIn]("millis", g.IntOf[expiresInMillis]()),
		g.Case[expiresIn]("duration", g.StringOf[expiresInDuration]()),
	).MustBuild()

	for name, s := range map[string]courier.Schema[expiresIn]{"string-first": strFirst, "int-first": intFirst} {
		v, err := s.Coerce(ctx, "5")
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		if v != expiresInDuration("5") {
			t.Fatalf("%s: a JSON string must stay a string, got %#v", name, v)
		}

		v, err = s.Coerce(ctx, json.Number("5"))
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		if v != expiresInMillis(5) {
			t.Fatalf("%s: a JSON number must select the integer case, got %#v", name, v)
		}
	}
}

func TestOneOf_FirstMatchWins(t *testing.T) {
	type label interface{}
	type first string
	type second string
	s := g.OneOf(
		g.Case[label]("first", g.StringOf[first]()),
		g.Case[label]("second", g.StringOf[second]()),
	).MustBuild()
	v, err := s.Coerce(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := v.(first); !ok {
		t.Fatalf("expected first declared case, got %T", v)
	}
}

func TestOneOf_NoMatch(t *testing.T) {
	s := g.OneOf(
		g.Case[expiresIn]("duration", g.StringOf[expiresInDuration]()),
		g.Case[expiresIn]("millis", g.IntOf[expiresInMillis]()),
	).MustBuild()
	_, err := s.Coerce(context.Background(), true)
	var nm *courier.NoMatchingVariantError
	if !errors.As(err, &nm) {
		t.Fatalf("expected *NoMatchingVariantError, got %v", err)
	}
	if !reflect.DeepEqual(nm.Candidates, []string{"duration", "millis"}) || len(nm.Causes) != 2 {
		t.Fatalf("unexpected detail: %+v", nm)
	}
	var tm *courier.TypeMismatchError
	if !errors.As(nm.Causes[0], &tm) || tm.Expected != "string" {
		t.Fatalf("first cause should be the string mismatch, got %v", nm.Causes[0])
	}
}

func TestOneOf_DumpByConcreteType(t *testing.T) {
	ctx := context.Background()
	s := g.OneOf(
		g.Case[expiresIn]("duration", g.StringOf[expiresInDuration]()),
		g.Case[expiresIn]("millis", g.IntOf[expiresInMillis]()),
	).MustBuild()

	out, err := s.Dump(ctx, expiresInMillis(1500))
	if err != nil || out != int64(1500) {
		t.Fatalf("dump millis: out=%#v err=%v", out, err)
	}
	out, err = s.Dump(ctx, expiresInDuration("2 days"))
	if err != nil || out != "2 days" {
		t.Fatalf("dump duration: out=%#v err=%v", out, err)
	}
	if _, err := s.Dump(ctx, nil); err == nil {
		t.Fatalf("nil union value must not dump")
	}
}

func TestOneOf_BuildErrors(t *testing.T) {
	if _, err := g.OneOf[expiresIn]().Build(); err == nil {
		t.Fatalf("empty union must not build")
	}
	_, err := g.OneOf(
		g.Case[expiresIn]("a", g.StringOf[expiresInDuration]()),
		g.Case[expiresIn]("b", g.StringOf[expiresInDuration]()),
	).Build()
	if err == nil {
		t.Fatalf("cases sharing a Go type must not build")
	}
	_, err = g.OneOf(
		g.Case[expiresIn]("plain", g.String()),
	).Build()
	if err == nil {
		t.Fatalf("a case type that does not implement the union must not build")
	}
}

type node interface{ isNode() }

type textNode struct {
	Content string
}

type imageNode struct {
	Src     string
	AltText courier.Opt[string]
}

func (textNode) isNode()  {}
func (imageNode) isNode() {}

var nodeSchema = g.Discriminated[node]("type",
	g.Case[node]("text", g.Object(
		g.Required("content", g.String(), func(r *textNode) *string { return &r.Content }),
	).UnknownStrict().MustBuild()),
	g.Case[node]("image", g.Object(
		g.Required("src", g.String(), func(r *imageNode) *string { return &r.Src }),
		g.Optional("altText", g.String(), func(r *imageNode) *courier.Opt[string] { return &r.AltText }).Key("alt_text"),
	).MustBuild()),
).MustBuild()

func TestDiscriminated_SelectsByTag(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{"type": "text", "content": "hi"}
	v, err := nodeSchema.Coerce(ctx, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != (textNode{Content: "hi"}) {
		t.Fatalf("unexpected value: %#v", v)
	}
	if len(in) != 2 {
		t.Fatalf("input must not be mutated: %v", in)
	}
	out, err := nodeSchema.Dump(ctx, v)
	if err != nil {
		t.Fatalf("dump err: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch\n got=%v\nwant=%v", out, in)
	}
}

func TestDiscriminated_TagErrors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		in   any
		code string
		path string
	}{
		{"missing", map[string]any{"content": "hi"}, courier.CodeDiscriminatorMissing, "/type"},
		{"empty", map[string]any{"type": ""}, courier.CodeDiscriminatorMissing, "/type"},
		{"null", map[string]any{"type": nil}, courier.CodeDiscriminatorMissing, "/type"},
		{"non-string", map[string]any{"type": json.Number("1")}, courier.CodeInvalidType, "/type"},
		{"unknown", map[string]any{"type": "video"}, courier.CodeDiscriminatorUnknown, "/type"},
		{"not an object", "text", courier.CodeInvalidType, "/"},
		{"variant failure", map[string]any{"type": "image"}, courier.CodeRequired, "/src"},
	}
	for _, c := range cases {
		_, err := nodeSchema.Coerce(ctx, c.in)
		iss, ok := courier.AsIssues(err)
		if !ok || iss[0].Code != c.code || iss[0].Path != c.path {
			t.Fatalf("%s: expected %s at %s, got %v", c.name, c.code, c.path, err)
		}
	}

	_, err := nodeSchema.Coerce(ctx, map[string]any{"type": "video"})
	iss, _ := courier.AsIssues(err)
	if !reflect.DeepEqual(iss[0].Params["allowed"], []string{"text", "image"}) {
		t.Fatalf("unexpected allowed params: %v", iss[0].Params)
	}
}

func TestDiscriminated_TagIsNotAnUnknownKey(t *testing.T) {
	// the text case is strict; the tag must not reach it
	if _, err := nodeSchema.Coerce(context.Background(), map[string]any{"type": "text", "content": "x"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDiscriminated_JSONSchema(t *testing.T) {
	js, err := nodeSchema.JSONSchema()
	if err != nil {
		t.Fatalf("json schema err: %v", err)
	}
	if len(js.OneOf) != 2 {
		t.Fatalf("expected two variants, got %+v", js)
	}
	img := js.OneOf[1]
	if img.Properties["type"].Const != "image" || img.Required[0] != "type" {
		t.Fatalf("tag not projected: %+v", img)
	}
}

type countingHandler struct {
	level   slog.Level
	handled *int
}

func (h countingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }
func (h countingHandler) Handle(context.Context, slog.Record) error {
	*h.handled++
	return nil
}
func (h countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h countingHandler) WithGroup(string) slog.Handler      { return h }

func TestOneOf_RejectionLogsOnlyAtDebug(t *testing.T) {
	prev := courier.Logger()
	t.Cleanup(func() { courier.SetLogger(prev) })
	s := g.OneOf(
		g.Case[expiresIn]("millis", g.IntOf[expiresInMillis]()),
		g.Case[expiresIn]("duration", g.StringOf[expiresInDuration]()),
	).MustBuild()

	var n int
	courier.SetLogger(slog.New(countingHandler{level: slog.LevelInfo, handled: &n}))
	if _, err := s.Coerce(context.Background(), "2 days"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 {
		t.Fatalf("info logger must not receive rejections, got %d", n)
	}

	courier.SetLogger(slog.New(countingHandler{level: slog.LevelDebug, handled: &n}))
	if _, err := s.Coerce(context.Background(), "2 days"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one rejection record, got %d", n)
	}
}
