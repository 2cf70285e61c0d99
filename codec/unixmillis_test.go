package codec

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestMillis_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Millis()

	got, err := s.Coerce(ctx, json.Number("1735689600123"))
	if err != nil {
		t.Fatalf("coerce err: %v", err)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 123_000_000, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("unexpected time: %v", got)
	}
	out, err := s.Dump(ctx, got)
	if err != nil || out != int64(1735689600123) {
		t.Fatalf("dump: out=%#v err=%v", out, err)
	}
	if _, err := s.Coerce(ctx, "1735689600123"); err == nil {
		t.Fatalf("a string must not coerce to epoch millis")
	}
}
