package courier

import (
	"strings"

	"github.com/reoring/courier/i18n"
)

// MissingField builds the required-field issue for the wire key at path.
func MissingField(path, field, key, typ string) Issue {
	return Issue{
		Path:    path,
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"field": field}),
		Hint:    typ,
		Cause:   &MissingFieldError{Field: field, Key: key, Type: typ},
		Params:  map[string]any{"field": field, "type": typ},
	}
}

// TypeMismatch builds an invalid_type issue for v at path.
func TypeMismatch(path, expected string, v any) Issue {
	got := KindOf(v)
	return Issue{
		Path:    path,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected, "got": got}),
		Hint:    "expected " + expected,
		Cause:   &TypeMismatchError{Expected: expected, Got: got},
		Params:  map[string]any{"expected": expected, "got": got},
	}
}

// UnknownEnum builds an invalid_enum issue.
func UnknownEnum(path, value string, allowed []string) Issue {
	return Issue{
		Path:    path,
		Code:    CodeInvalidEnum,
		Message: i18n.T(CodeInvalidEnum, map[string]string{"value": value}),
		Hint:    "one of " + strings.Join(allowed, ", "),
		Cause:   &UnknownEnumValueError{Value: value, Allowed: allowed},
		Params:  map[string]any{"value": value, "allowed": allowed},
	}
}

// NoMatchingVariant builds the issue reported when every union candidate
// rejected v.
func NoMatchingVariant(path string, v any, candidates []string, causes []error) Issue {
	return Issue{
		Path:    path,
		Code:    CodeNoMatchingVariant,
		Message: i18n.T(CodeNoMatchingVariant, nil),
		Hint:    "candidates: " + strings.Join(candidates, ", "),
		Cause:   &NoMatchingVariantError{Value: v, Candidates: candidates, Causes: causes},
		Params:  map[string]any{"candidates": candidates},
	}
}

// Single wraps one issue without a typed cause.
func Single(path, code, hint string) Issues {
	if path == "" {
		path = "/"
	}
	return Issues{{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint}}
}

// InvalidFormat builds an invalid_format issue for a value that had the
// right kind but could not be decoded, such as a malformed timestamp.
func InvalidFormat(path, format string, err error) Issue {
	if path == "" {
		path = "/"
	}
	it := Issue{Path: path, Code: CodeInvalidFormat, Message: i18n.T(CodeInvalidFormat, nil), Hint: format, Cause: err}
	if format != "" {
		it.Params = map[string]any{"format": format}
	}
	return it
}
