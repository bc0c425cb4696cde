package wellknown

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/unkn0wn-root/canonjson"
)

const two63 = 9223372036854775808.0 // 2^63

// Duration is a signed span of time. Seconds and Nanos always carry the same
// sign (or are zero), so -1.5s is {-1, -500000000}, never {-2, 500000000}.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// NewDuration converts a time.Duration.
func NewDuration(d time.Duration) Duration {
	secs := int64(d / time.Second)
	nanos := int32(d % time.Second)
	return Duration{Seconds: secs, Nanos: nanos}
}

// Std converts to a time.Duration. Spans beyond roughly ±292 years do not
// fit in time.Duration's nanosecond tick and return an error.
func (d Duration) Std() (time.Duration, error) {
	nd := d.Normalized()
	if nd.Seconds > math.MaxInt64/int64(time.Second) || nd.Seconds < math.MinInt64/int64(time.Second) {
		return 0, fmt.Errorf("canonjson/wellknown: duration %ds out of time.Duration range", nd.Seconds)
	}
	out := time.Duration(nd.Seconds) * time.Second
	rest := time.Duration(nd.Nanos)
	if (rest > 0 && out > math.MaxInt64-rest) || (rest < 0 && out < math.MinInt64-rest) {
		return 0, fmt.Errorf("canonjson/wellknown: duration %ds%dns out of time.Duration range", nd.Seconds, nd.Nanos)
	}
	return out + rest, nil
}

// Normalized carries whole seconds out of Nanos and restores the co-signed
// invariant. Carries that would push Seconds past the int64 rim saturate at
// the rim instead of wrapping.
func (d Duration) Normalized() Duration {
	s, n := d.Seconds, int64(d.Nanos)
	carry := n / 1e9
	n %= 1e9
	if carry > 0 && s > math.MaxInt64-carry {
		return Duration{Seconds: math.MaxInt64, Nanos: 1e9 - 1}
	}
	if carry < 0 && s < math.MinInt64-carry {
		return Duration{Seconds: math.MinInt64, Nanos: -(1e9 - 1)}
	}
	s += carry
	if s > 0 && n < 0 {
		s--
		n += 1e9
	}
	if s < 0 && n > 0 {
		s++
		n -= 1e9
	}
	return Duration{Seconds: s, Nanos: int32(n)}
}

// String returns the canonical form: decimal seconds and an 's' suffix.
func (d Duration) String() string {
	return formatDuration(d.Normalized())
}

// DurationCodec maps Duration to decimal-seconds text with a trailing 's'.
// Decode parses the prefix as a float and rounds to the nearest nanosecond;
// encode emits the sign once and 3, 6 or 9 fractional digits only when nanos
// are present. Null is a type mismatch, as with TimestampCodec.
var DurationCodec canonjson.Codec[Duration] = durationCodec{}

// DurationOpt is DurationCodec with null mapped to nil.
var DurationOpt = canonjson.Optional[Duration](DurationCodec)

type durationCodec struct{}

var durationH = durationHandler{canonjson.Unimplemented[Duration]{Want: "a duration string"}}

func (durationCodec) Decode(d *canonjson.Decoder) (Duration, error) {
	return canonjson.Dispatch[Duration](d, durationH)
}

func (durationCodec) Encode(e *canonjson.Encoder, v Duration) error {
	return e.String(formatDuration(v.Normalized()))
}

type durationHandler struct {
	canonjson.Unimplemented[Duration]
}

func (durationHandler) OnString(s string) (Duration, error) {
	body, ok := strings.CutSuffix(s, "s")
	if !ok {
		return Duration{}, &canonjson.EncodingError{Encoding: "duration string", Value: s}
	}
	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return Duration{}, &canonjson.EncodingError{Encoding: "duration string", Value: s, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Duration{}, &canonjson.EncodingError{Encoding: "duration string", Value: s}
	}
	neg := math.Signbit(f)
	mag := math.Abs(f)
	if mag >= two63 {
		return Duration{}, &canonjson.EncodingError{Encoding: "duration string", Value: s}
	}
	secs := math.Trunc(mag)
	nanos := int64(math.Round((mag - secs) * 1e9))
	d := Duration{Seconds: int64(secs), Nanos: int32(nanos)}
	if nanos == 1e9 {
		// rounding carried into the next whole second
		d = Duration{Seconds: int64(secs) + 1}
	}
	if neg {
		d.Seconds, d.Nanos = -d.Seconds, -d.Nanos
	}
	return d, nil
}

func formatDuration(d Duration) string {
	s, n := d.Seconds, d.Nanos
	sign := ""
	if s < 0 || n < 0 {
		sign = "-"
		if n < 0 {
			n = -n
		}
	}
	// Seconds magnitude goes through uint64 so math.MinInt64 does not wrap
	// when negated.
	var secs uint64
	if s < 0 {
		secs = uint64(-(s + 1)) + 1
	} else {
		secs = uint64(s)
	}
	if n == 0 {
		return fmt.Sprintf("%s%ds", sign, secs)
	}
	return fmt.Sprintf("%s%d%ss", sign, secs, fracSeconds(n))
}
