// Package stdjson provides an engine.TokenSource backed by encoding/json.
package stdjson

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/reoring/courier/internal/engine"
)

type source struct {
	dec        *json.Decoder
	tr         eng.Tracker
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()
	off := s.lastOffset

	switch v := tok.(type) {
	case json.Delim:
		return s.tr.Delim(rune(v), off), nil
	case string:
		return s.tr.String(v, off), nil
	case bool:
		return s.tr.Scalar(eng.Token{Kind: eng.KindBool, Bool: v, Offset: off}), nil
	case json.Number:
		return s.tr.Scalar(eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: off}), nil
	case float64:
		return s.tr.Scalar(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}), nil
	default:
		return s.tr.Scalar(eng.Token{Kind: eng.KindNull, Offset: off}), nil
	}
}

func (s *source) Location() int64 { return s.lastOffset }

// Marshal encodes v with encoding/json.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// MarshalIndent is Marshal with indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) { return json.MarshalIndent(v, prefix, indent) }
