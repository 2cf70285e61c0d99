package codec

import (
	"context"
	"time"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
)

// UnixMillis returns a Codec between integer epoch milliseconds and
// time.Time. Decoded times are in UTC.
func UnixMillis() courier.Codec[int64, time.Time] { return unixMillisCodec{in: dsl.Int()} }

// Millis is UnixMillis exposed as a Schema.
func Millis() courier.Schema[time.Time] { return dsl.Codec(UnixMillis()) }

type unixMillisCodec struct {
	in courier.Schema[int64]
}

func (c unixMillisCodec) In() courier.Schema[int64] { return c.in }

func (unixMillisCodec) Decode(_ context.Context, ms int64) (time.Time, error) {
	return time.UnixMilli(ms).UTC(), nil
}

func (unixMillisCodec) Encode(_ context.Context, t time.Time) (int64, error) {
	return t.UnixMilli(), nil
}
