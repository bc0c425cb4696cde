package wellknown

import (
	"fmt"
	"time"

	"github.com/unkn0wn-root/canonjson"
)

// The representable range: 0001-01-01T00:00:00Z through
// 9999-12-31T23:59:59.999999999Z, as Unix seconds.
const (
	minTimestampSeconds = -62135596800
	maxTimestampSeconds = 253402300799
)

// Timestamp is a point in time: seconds since the Unix epoch plus a
// non-negative nanosecond offset. Nanos stays in [0, 1e9) for every Seconds,
// including negative ones, so -0.5s before the epoch is {-1, 500000000}.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// NewTimestamp converts a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Time converts to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}

// IsValid reports whether t is in the representable range with Nanos in
// [0, 1e9).
func (t Timestamp) IsValid() bool {
	return t.Seconds >= minTimestampSeconds && t.Seconds <= maxTimestampSeconds &&
		t.Nanos >= 0 && t.Nanos < 1e9
}

// Normalized carries whole seconds out of Nanos, makes Nanos non-negative,
// and clamps Seconds into the representable range.
func (t Timestamp) Normalized() Timestamp {
	s, n := t.Seconds, int64(t.Nanos)
	s += n / 1e9
	n %= 1e9
	if n < 0 {
		n += 1e9
		s--
	}
	if s < minTimestampSeconds {
		return Timestamp{Seconds: minTimestampSeconds}
	}
	if s > maxTimestampSeconds {
		return Timestamp{Seconds: maxTimestampSeconds, Nanos: 1e9 - 1}
	}
	return Timestamp{Seconds: s, Nanos: int32(n)}
}

// String returns the canonical RFC 3339 form, or a note for values the
// mapping cannot represent.
func (t Timestamp) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("timestamp{seconds: %d, nanos: %d} out of range", t.Seconds, t.Nanos)
	}
	return formatRFC3339(t)
}

// TimestampCodec maps Timestamp to RFC 3339 text. Decode accepts any offset
// and normalizes to UTC; encode always emits 'Z' with 0, 3, 6 or 9
// fractional digits. Null is a type mismatch: absent timestamps belong to
// canonjson.Optional.
var TimestampCodec canonjson.Codec[Timestamp] = timestampCodec{}

// TimestampOpt is TimestampCodec with null mapped to nil.
var TimestampOpt = canonjson.Optional[Timestamp](TimestampCodec)

type timestampCodec struct{}

var timestampH = timestampHandler{canonjson.Unimplemented[Timestamp]{Want: "an RFC 3339 timestamp string"}}

func (timestampCodec) Decode(d *canonjson.Decoder) (Timestamp, error) {
	return canonjson.Dispatch[Timestamp](d, timestampH)
}

func (timestampCodec) Encode(e *canonjson.Encoder, t Timestamp) error {
	if !t.IsValid() {
		return &canonjson.EncodingError{
			Encoding: "RFC 3339 timestamp",
			Value:    fmt.Sprintf("{seconds: %d, nanos: %d}", t.Seconds, t.Nanos),
		}
	}
	return e.String(formatRFC3339(t))
}

type timestampHandler struct {
	canonjson.Unimplemented[Timestamp]
}

func (timestampHandler) OnString(s string) (Timestamp, error) {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, &canonjson.EncodingError{Encoding: "RFC 3339 timestamp", Value: s, Err: err}
	}
	t := NewTimestamp(parsed)
	if !t.IsValid() {
		return Timestamp{}, &canonjson.EncodingError{Encoding: "RFC 3339 timestamp", Value: s}
	}
	return t, nil
}

func formatRFC3339(t Timestamp) string {
	base := t.Time().Format("2006-01-02T15:04:05")
	return base + fracSeconds(t.Nanos) + "Z"
}

// fracSeconds renders nanos as ".###", ".######" or ".#########", dropping
// whole trailing zero groups; zero nanos renders nothing.
func fracSeconds(nanos int32) string {
	if nanos == 0 {
		return ""
	}
	switch {
	case nanos%1e6 == 0:
		return fmt.Sprintf(".%03d", nanos/1e6)
	case nanos%1e3 == 0:
		return fmt.Sprintf(".%06d", nanos/1e3)
	default:
		return fmt.Sprintf(".%09d", nanos)
	}
}
