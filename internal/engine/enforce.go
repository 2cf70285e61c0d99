package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by the engine.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a fatal enforcement finding.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.Message + " at " + e.Path }

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives non-fatal findings (duplicate keys under DupWarn).
	IssueSink func(SimpleIssue)
	// FailFast turns every finding into a fatal error.
	FailFast bool
}

// Enabled reports whether any check is active.
func (o EnforceOptions) Enabled() bool {
	return o.OnDuplicate != DupIgnore || o.MaxDepth > 0 || o.MaxBytes > 0
}

type frame struct {
	object bool
	path   string
	keys   map[string]struct{}
	key    string // pending key inside an object
	index  int    // next index inside an array
}

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy, maximum nesting depth and maximum consumed bytes.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcing{inner: inner, opt: opt}
}

type enforcing struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcing) Location() int64 { return e.inner.Location() }

func (e *enforcing) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	if e.opt.MaxBytes > 0 {
		if off := e.inner.Location(); off > e.opt.MaxBytes {
			return Token{}, IssueError{SimpleIssue{Code: "truncated", Path: e.here(), Message: "max bytes exceeded"}}
		}
	}

	switch tok.Kind {
	case KindKey:
		if err := e.key(tok.String); err != nil {
			return Token{}, err
		}
	case KindBeginObject, KindBeginArray:
		path := e.valuePath()
		e.stack = append(e.stack, frame{object: tok.Kind == KindBeginObject, path: path, keys: map[string]struct{}{}})
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, IssueError{SimpleIssue{Code: "parse_error", Path: pointer(path), Message: "max depth exceeded"}}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	default:
		e.valuePath()
	}
	return tok, nil
}

func (e *enforcing) key(k string) error {
	n := len(e.stack)
	if n == 0 || !e.stack[n-1].object {
		return nil
	}
	top := &e.stack[n-1]
	top.key = k
	if e.opt.OnDuplicate == DupIgnore {
		return nil
	}
	if _, dup := top.keys[k]; dup {
		si := SimpleIssue{Code: "duplicate_key", Path: pointer(join(top.path, k)), Message: "key '" + k + "' duplicated"}
		if e.opt.OnDuplicate == DupError || e.opt.FailFast {
			return IssueError{si}
		}
		if e.opt.IssueSink != nil {
			e.opt.IssueSink(si)
		}
	}
	top.keys[k] = struct{}{}
	return nil
}

// valuePath returns the pointer of the value about to be read and advances
// the parent's position.
func (e *enforcing) valuePath() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.object {
		return join(top.path, top.key)
	}
	p := join(top.path, strconv.Itoa(top.index))
	top.index++
	return p
}

func (e *enforcing) here() string {
	if n := len(e.stack); n > 0 {
		return pointer(e.stack[n-1].path)
	}
	return "/"
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func join(base, token string) string { return base + "/" + pointerEscaper.Replace(token) }

func pointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
