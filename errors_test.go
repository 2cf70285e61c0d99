package courier_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	courier "github.com/reoring/courier"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := courier.Issues{
		{Path: "/a", Code: courier.CodeRequired, Hint: "string"},
		{Path: "/b", Code: courier.CodeInvalidType},
		{Path: "/c", Code: courier.CodeInvalidType},
		{Path: "/d", Code: courier.CodeInvalidType},
	}
	got := iss.Error()
	want := "required at /a (string); invalid_type at /b; invalid_type at /c; ... (total 4)"
	if got != want {
		t.Fatalf("unexpected summary\n got=%s\nwant=%s", got, want)
	}
	if (courier.Issues{}).Error() != "" {
		t.Fatalf("empty issues must render empty")
	}
}

func TestIssues_UnwrapReachesTypedCauses(t *testing.T) {
	iss := courier.Issues{
		courier.MissingField("/scope", "scope", "scope", "string"),
		courier.TypeMismatch("/limit", "integer", "x"),
	}
	var err error = fmt.Errorf("send: %w", iss)

	var mf *courier.MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "scope" {
		t.Fatalf("MissingFieldError not reachable: %v", err)
	}
	var tm *courier.TypeMismatchError
	if !errors.As(err, &tm) || tm.Expected != "integer" || tm.Got != "string" {
		t.Fatalf("TypeMismatchError not reachable: %v", err)
	}
	got, ok := courier.AsIssues(err)
	if !ok || len(got) != 2 {
		t.Fatalf("AsIssues failed: %v", err)
	}
}

func TestIssues_Rebase(t *testing.T) {
	iss := courier.Issues{{Path: "/"}, {Path: "/x"}, {Path: "0"}}.Rebase("/to")
	for i, want := range []string{"/to", "/to/x", "/to/0"} {
		if iss[i].Path != want {
			t.Fatalf("issue %d: got %s want %s", i, iss[i].Path, want)
		}
	}
}

func TestToIssues_ForeignError(t *testing.T) {
	base := errors.New("boom")
	iss := courier.ToIssues("", base)
	if len(iss) != 1 || iss[0].Code != courier.CodeParseError || iss[0].Path != "/" {
		t.Fatalf("unexpected: %v", iss)
	}
	if !errors.Is(iss, base) {
		t.Fatalf("foreign error must stay reachable")
	}
	if courier.ToIssues("/", nil) != nil {
		t.Fatalf("nil error must map to nil issues")
	}
}

func TestTypedErrorMessages(t *testing.T) {
	mf := &courier.MissingFieldError{Field: "expiresIn", Key: "expires_in", Type: "ExpiresIn"}
	if !strings.Contains(mf.Error(), `"expires_in"`) {
		t.Fatalf("wire key should appear when it differs: %s", mf.Error())
	}
	ue := &courier.UnknownEnumValueError{Value: "MAYBE", Allowed: []string{"A", "B"}}
	if ue.Error() != `unknown enum value "MAYBE" (allowed: A, B)` {
		t.Fatalf("unexpected message: %s", ue.Error())
	}
	nm := &courier.NoMatchingVariantError{Value: true, Candidates: []string{"string", "integer"}}
	if nm.Error() != "value of kind boolean matches none of [string, integer]" {
		t.Fatalf("unexpected message: %s", nm.Error())
	}
}

func TestPathRef(t *testing.T) {
	p := courier.Root().Field("message").Field("a/b").Index(2)
	if p.Pointer() != "/message/a~1b/2" {
		t.Fatalf("unexpected pointer: %s", p.Pointer())
	}
	it := courier.At("/message/to").Issue(courier.CodeCustom, "hint", "k", 1)
	if it.Path != "/message/to" || it.Params["k"] != 1 {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if courier.Root().Pointer() != "/" {
		t.Fatalf("root pointer must be /")
	}
}
