package courier

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateKey         = "duplicate_key"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidFormat        = "invalid_format"
	CodeNoMatchingVariant    = "no_matching_variant"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeParseError           = "parse_error"
	CodeOverflow             = "overflow"
	CodeTruncated            = "truncated"
	CodeCustom               = "custom"
)

// Issue represents a single coercion failure.
type Issue struct {
	Path    string // JSON Pointer over wire keys (for example: /message/to/list_id).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected kind, allowed values, etc.
	Cause   error  // Optional: typed error such as *MissingFieldError.
	// Params carries structured parameters for i18n and logging.
	Params map[string]any
}

// Issues is a collection of coercion errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Unwrap exposes the typed causes so errors.As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase prefixes every issue path with base (a JSON Pointer such as
// "/cursor"). Causes are carried over untouched.
func (iss Issues) Rebase(base string) Issues {
	if base == "" || base == "/" {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		switch {
		case it.Path == "" || it.Path == "/":
			it.Path = base
		case it.Path[0] == '/':
			it.Path = base + it.Path
		default:
			it.Path = base + "/" + it.Path
		}
		out = append(out, it)
	}
	return out
}

// ToIssues converts any error into Issues at path, wrapping foreign errors
// as parse_error.
func ToIssues(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	if path == "" {
		path = "/"
	}
	return Issues{{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}

// MissingFieldError reports that a required field was absent from the input.
type MissingFieldError struct {
	Field string // property name
	Key   string // wire key looked up
	Type  string // declared type of the field
}

func (e *MissingFieldError) Error() string {
	if e.Key != "" && e.Key != e.Field {
		return fmt.Sprintf("missing required field %s (key %q, %s)", e.Field, e.Key, e.Type)
	}
	return fmt.Sprintf("missing required field %s (%s)", e.Field, e.Type)
}

// TypeMismatchError reports a value of the wrong kind.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// UnknownEnumValueError reports a string outside an enum's closed set.
type UnknownEnumValueError struct {
	Value   string
	Allowed []string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown enum value %q (allowed: %s)", e.Value, strings.Join(e.Allowed, ", "))
}

// NoMatchingVariantError reports that no union candidate accepted the value.
// Causes holds one error per candidate, in declared order.
type NoMatchingVariantError struct {
	Value      any
	Candidates []string
	Causes     []error
}

func (e *NoMatchingVariantError) Error() string {
	return fmt.Sprintf("value of kind %s matches none of [%s]", KindOf(e.Value), strings.Join(e.Candidates, ", "))
}

// KindOf names the JSON kind of a decoded value.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	}
	if _, ok := v.(interface{ Int64() (int64, error) }); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
