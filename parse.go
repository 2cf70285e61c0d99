package courier

import (
	"bytes"
	"context"
	"errors"
	"io"

	eng "github.com/reoring/courier/internal/engine"
)

// DecodeAny reads one JSON value from data into the generic tree schemas
// consume. Numbers are kept as json.Number.
func DecodeAny(data []byte, opts ...DecodeOpt) (any, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, Single("/", CodeTruncated, "max bytes exceeded")
	}
	return decodeAnyFrom(bytes.NewReader(data), opt)
}

// DecodeAnyReader is DecodeAny over an io.Reader. With MaxBytes set the
// reader is capped up front.
func DecodeAnyReader(r io.Reader, opts ...DecodeOpt) (any, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, ToIssues("/", err)
		}
		return DecodeAny(data, opt)
	}
	return decodeAnyFrom(r, opt)
}

func decodeAnyFrom(r io.Reader, opt DecodeOpt) (any, error) {
	src := newTokenSource(r)
	eopt := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		FailFast:    opt.FailFast,
	}
	if opt.OnWarn != nil {
		eopt.IssueSink = func(si eng.SimpleIssue) {
			opt.OnWarn(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	if eopt.Enabled() {
		src = eng.WrapWithEnforcement(src, eopt)
	}
	v, err := eng.Decode(src)
	if err != nil {
		return nil, engineIssues(err)
	}
	return v, nil
}

func engineIssues(err error) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message, Cause: err}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}

// DecodeJSON parses data and coerces it with s.
func DecodeJSON[T any](ctx context.Context, s Schema[T], data []byte, opts ...DecodeOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, Single("/", CodeParseError, "nil schema")
	}
	v, err := DecodeAny(data, opts...)
	if err != nil {
		return zero, err
	}
	if lastOpt(opts).FailFast {
		ctx = WithFailFast(ctx, true)
	}
	return s.Coerce(ctx, v)
}

// DecodeReader parses one JSON value from r and coerces it with s.
func DecodeReader[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...DecodeOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, Single("/", CodeParseError, "nil schema")
	}
	v, err := DecodeAnyReader(r, opts...)
	if err != nil {
		return zero, err
	}
	if lastOpt(opts).FailFast {
		ctx = WithFailFast(ctx, true)
	}
	return s.Coerce(ctx, v)
}

// EncodeJSON dumps v with s and marshals the result.
func EncodeJSON[T any](ctx context.Context, s Schema[T], v T) ([]byte, error) {
	out, err := s.Dump(ctx, v)
	if err != nil {
		return nil, err
	}
	return Marshal(out)
}
