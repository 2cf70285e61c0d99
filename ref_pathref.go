package courier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/courier/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// Refinements use it to point at the offending wire key.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, hint string, kv ...any) Issue
}

// Root returns the PathRef for the document root.
func Root() PathRef { return pathRef{} }

// At parses a JSON Pointer into a PathRef.
func At(pointer string) PathRef {
	var parts []string
	for _, p := range strings.Split(pointer, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (p pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return pathRef{parts: append(append([]string{}, p.parts...), pointerEscaper.Replace(name))}
}

func (p pathRef) Index(i int) PathRef {
	return pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p pathRef) Issue(code, hint string, kv ...any) Issue {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, nil), Hint: hint, Params: params}
}

// FieldPointer returns the pointer for a single wire key below the root.
func FieldPointer(key string) string { return "/" + pointerEscaper.Replace(key) }
