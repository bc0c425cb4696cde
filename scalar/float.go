package scalar

import (
	"errors"
	"math"
	"strconv"

	"github.com/unkn0wn-root/canonjson"
)

// F64 is the codec for 64-bit floats. Decode accepts any JSON number and
// numeric text, plus the spelled-out specials "NaN", "Infinity" and
// "-Infinity". Encode emits a JSON number for finite values and the quoted
// special names otherwise.
var F64 canonjson.Codec[float64] = f64Codec{}

// F64Opt is F64 with null mapped to nil instead of 0.
var F64Opt = canonjson.Optional[float64](F64)

// F32 is the codec for 32-bit floats. Values outside the float32 range are
// rejected rather than clamped to infinity.
var F32 canonjson.Codec[float32] = f32Codec{}

// F32Opt is F32 with null mapped to nil instead of 0.
var F32Opt = canonjson.Optional[float32](F32)

type f64Codec struct{}

var f64H = f64Handler{canonjson.Unimplemented[float64]{Want: "a valid f64"}}

func (f64Codec) Decode(d *canonjson.Decoder) (float64, error) {
	return canonjson.Dispatch[float64](d, f64H)
}

func (f64Codec) Encode(e *canonjson.Encoder, v float64) error {
	if s, ok := specialName(v); ok {
		return e.String(s)
	}
	return e.Float64(v)
}

type f64Handler struct {
	canonjson.Unimplemented[float64]
}

func (f64Handler) OnNull() (float64, error) { return 0, nil }

func (f64Handler) OnInt(v int64) (float64, error) { return float64(v), nil }

func (f64Handler) OnUint(v uint64) (float64, error) { return float64(v), nil }

func (f64Handler) OnFloat(v float64) (float64, error) { return v, nil }

func (f64Handler) OnString(s string) (float64, error) {
	if v, ok := specialValue(s); ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseFloatErr("f64", s, err)
	}
	return v, nil
}

type f32Codec struct{}

var f32H = f32Handler{canonjson.Unimplemented[float32]{Want: "a valid f32"}}

func (f32Codec) Decode(d *canonjson.Decoder) (float32, error) {
	return canonjson.Dispatch[float32](d, f32H)
}

func (f32Codec) Encode(e *canonjson.Encoder, v float32) error {
	if s, ok := specialName(float64(v)); ok {
		return e.String(s)
	}
	return e.Float32(v)
}

type f32Handler struct {
	canonjson.Unimplemented[float32]
}

func (f32Handler) OnNull() (float32, error) { return 0, nil }

func (f32Handler) OnInt(v int64) (float32, error) { return float32(v), nil }

func (f32Handler) OnUint(v uint64) (float32, error) { return float32(v), nil }

func (f32Handler) OnFloat(v float64) (float32, error) {
	if v > math.MaxFloat32 || v < -math.MaxFloat32 {
		return 0, &canonjson.RangeError{Target: "f32", Value: formatFloat(v), Reason: "out of range"}
	}
	return float32(v), nil
}

func (f32Handler) OnString(s string) (float32, error) {
	if v, ok := specialValue(s); ok {
		return float32(v), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, parseFloatErr("f32", s, err)
	}
	return float32(v), nil
}

// specialValue maps the canonical special spellings to their float values.
// The match is exact: "nan" or "+Infinity" fall through to numeric parsing.
func specialValue(s string) (float64, bool) {
	switch s {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	return 0, false
}

func specialName(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

func parseFloatErr(target, s string, err error) error {
	reason := "not a number"
	if errors.Is(err, strconv.ErrRange) {
		reason = "out of range"
	}
	return &canonjson.RangeError{Target: target, Value: strconv.Quote(s), Reason: reason}
}
