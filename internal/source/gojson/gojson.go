// Package gojson provides an engine.TokenSource backed by goccy/go-json.
package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/courier/internal/engine"
)

// errInvalid is reported when the input fails validation but go-json gives
// no syntax error of its own.
var errInvalid = errors.New("gojson: invalid JSON")

type source struct {
	dec *j.Decoder
	tr  eng.Tracker
	// bad holds the validation failure. Decoder.Token does not check the
	// separators between tokens, so it is reported in place of io.EOF.
	bad error
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
// The input is buffered so it can be validated up front.
func NewReader(r io.Reader) eng.TokenSource {
	data, err := io.ReadAll(r)
	if err != nil {
		return &source{dec: j.NewDecoder(bytes.NewReader(nil)), bad: err}
	}
	return NewBytes(data)
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	s := &source{dec: dec}
	if !j.Valid(b) {
		s.bad = syntaxError(b)
	}
	return s
}

func syntaxError(b []byte) error {
	var v any
	if err := j.Unmarshal(b, &v); err != nil {
		return err
	}
	return errInvalid
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if s.bad != nil && errors.Is(err, io.EOF) {
			return eng.Token{}, s.bad
		}
		return eng.Token{}, err
	}
	// go-json does not track input offsets
	switch v := tok.(type) {
	case j.Delim:
		return s.tr.Delim(rune(v), -1), nil
	case string:
		return s.tr.String(v, -1), nil
	case bool:
		return s.tr.Scalar(eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}), nil
	case j.Number:
		return s.tr.Scalar(eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}), nil
	case float64:
		return s.tr.Scalar(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}), nil
	default:
		return s.tr.Scalar(eng.Token{Kind: eng.KindNull, Offset: -1}), nil
	}
}

func (s *source) Location() int64 { return -1 }

// Marshal encodes v with go-json.
func Marshal(v any) ([]byte, error) { return j.Marshal(v) }

// MarshalIndent is Marshal with indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) { return j.MarshalIndent(v, prefix, indent) }
