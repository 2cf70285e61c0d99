package engine

// Tracker turns the flat token stream of an encoding/json style decoder
// (delimiters and scalars, with object keys reported as plain strings) into
// engine tokens by remembering whether the next string in an object is a key.
type Tracker struct {
	stack []trackFrame
}

type trackFrame struct {
	object       bool
	expectingKey bool
}

// Delim converts one of '{', '}', '[' or ']'.
func (t *Tracker) Delim(d rune, off int64) Token {
	switch d {
	case '{':
		t.stack = append(t.stack, trackFrame{object: true, expectingKey: true})
		return Token{Kind: KindBeginObject, Offset: off}
	case '[':
		t.stack = append(t.stack, trackFrame{})
		return Token{Kind: KindBeginArray, Offset: off}
	case '}':
		t.pop()
		return Token{Kind: KindEndObject, Offset: off}
	default:
		t.pop()
		return Token{Kind: KindEndArray, Offset: off}
	}
}

// String converts a string token, deciding between key and value.
func (t *Tracker) String(s string, off int64) Token {
	if n := len(t.stack); n > 0 && t.stack[n-1].object && t.stack[n-1].expectingKey {
		t.stack[n-1].expectingKey = false
		return Token{Kind: KindKey, String: s, Offset: off}
	}
	t.valueDone()
	return Token{Kind: KindString, String: s, Offset: off}
}

// Scalar records that a non-string scalar value was consumed.
func (t *Tracker) Scalar(tok Token) Token {
	t.valueDone()
	return tok
}

func (t *Tracker) pop() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
	t.valueDone()
}

func (t *Tracker) valueDone() {
	if n := len(t.stack); n > 0 && t.stack[n-1].object {
		t.stack[n-1].expectingKey = true
	}
}
