package codec

import (
	"context"
	"time"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and
// time.Time. Encoding is canonical: UTC with trailing zero fractions trimmed.
func TimeRFC3339() courier.Codec[string, time.Time] { return rfc3339Codec{in: dsl.String()} }

// DateTime is TimeRFC3339 exposed as a Schema, for use as a record field.
func DateTime() courier.Schema[time.Time] { return dsl.Codec(TimeRFC3339()) }

type rfc3339Codec struct {
	in courier.Schema[string]
}

func (c rfc3339Codec) In() courier.Schema[string] { return c.in }

// Format names the JSON Schema string format of the wire side.
func (rfc3339Codec) Format() string { return "date-time" }

func (c rfc3339Codec) Decode(_ context.Context, a string) (time.Time, error) {
	t, err := parseRFC3339(a)
	if err != nil {
		return time.Time{}, courier.Issues{courier.InvalidFormat("/", "date-time", err)}
	}
	return t, nil
}

func (c rfc3339Codec) Encode(_ context.Context, b time.Time) (string, error) {
	return formatRFC3339Canonical(b), nil
}

func parseRFC3339(s string) (time.Time, error) {
	// RFC3339Nano also accepts timestamps without a fraction.
	return time.Parse(time.RFC3339Nano, s)
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
