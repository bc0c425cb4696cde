package scalar

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/canonjson"
)

// float64Eps is the gap between 1.0 and the next float64. A float farther
// than this from its truncation is rejected rather than rounded.
const float64Eps = 2.220446049250313e-16

const (
	two63 = 9223372036854775808.0  // 2^63
	two64 = 18446744073709551616.0 // 2^64
)

// I32 is the codec for 32-bit signed integers. Decode accepts integer
// tokens, integral floats, quoted decimal or float text, and null; encode
// emits a native JSON number.
var I32 canonjson.Codec[int32] = i32Codec{}

// I32Opt is I32 with null mapped to nil instead of 0.
var I32Opt = canonjson.Optional[int32](I32)

// U32 is the codec for 32-bit unsigned integers.
var U32 canonjson.Codec[uint32] = u32Codec{}

// U32Opt is U32 with null mapped to nil instead of 0.
var U32Opt = canonjson.Optional[uint32](U32)

// I64 is the codec for 64-bit signed integers. The canonical encoding is a
// quoted decimal string so the full range survives parsers that read JSON
// numbers as 64-bit floats.
var I64 canonjson.Codec[int64] = i64Codec{}

// I64Opt is I64 with null mapped to nil instead of 0.
var I64Opt = canonjson.Optional[int64](I64)

// U64 is the codec for 64-bit unsigned integers. Like I64 it encodes as a
// quoted decimal string. Negative integer tokens are a type mismatch, not a
// range error: the codec has no signed form at all.
var U64 canonjson.Codec[uint64] = u64Codec{}

// U64Opt is U64 with null mapped to nil instead of 0.
var U64Opt = canonjson.Optional[uint64](U64)

// ---- i32 ----

type i32Codec struct{}

var i32H = i32Handler{canonjson.Unimplemented[int32]{Want: "a valid i32"}}

func (i32Codec) Decode(d *canonjson.Decoder) (int32, error) {
	return canonjson.Dispatch[int32](d, i32H)
}

func (i32Codec) Encode(e *canonjson.Encoder, v int32) error {
	return e.Int(int64(v))
}

type i32Handler struct {
	canonjson.Unimplemented[int32]
}

func (i32Handler) OnNull() (int32, error) { return 0, nil }

func (i32Handler) OnInt(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, intRangeErr("i32", strconv.FormatInt(v, 10))
	}
	return int32(v), nil
}

func (i32Handler) OnUint(v uint64) (int32, error) {
	if v > math.MaxInt32 {
		return 0, intRangeErr("i32", strconv.FormatUint(v, 10))
	}
	return int32(v), nil
}

func (i32Handler) OnFloat(v float64) (int32, error) { return int32FromFloat(v) }

func (i32Handler) OnString(s string) (int32, error) { return int32FromString(s) }

func int32FromFloat(v float64) (int32, error) {
	if err := wholeNumber("i32", v); err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, intRangeErr("i32", formatFloat(v))
	}
	return int32(v), nil
}

func int32FromString(s string) (int32, error) {
	if floatText(s) {
		f, err := parseFloatText("i32", s)
		if err != nil {
			return 0, err
		}
		return int32FromFloat(f)
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, parseIntErr("i32", s, err)
	}
	return int32(v), nil
}

// ---- u32 ----

type u32Codec struct{}

var u32H = u32Handler{canonjson.Unimplemented[uint32]{Want: "a valid u32"}}

func (u32Codec) Decode(d *canonjson.Decoder) (uint32, error) {
	return canonjson.Dispatch[uint32](d, u32H)
}

func (u32Codec) Encode(e *canonjson.Encoder, v uint32) error {
	return e.Uint(uint64(v))
}

type u32Handler struct {
	canonjson.Unimplemented[uint32]
}

func (u32Handler) OnNull() (uint32, error) { return 0, nil }

func (u32Handler) OnInt(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, intRangeErr("u32", strconv.FormatInt(v, 10))
	}
	return uint32(v), nil
}

func (u32Handler) OnUint(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, intRangeErr("u32", strconv.FormatUint(v, 10))
	}
	return uint32(v), nil
}

func (u32Handler) OnFloat(v float64) (uint32, error) { return uint32FromFloat(v) }

func (u32Handler) OnString(s string) (uint32, error) { return uint32FromString(s) }

func uint32FromFloat(v float64) (uint32, error) {
	if err := wholeNumber("u32", v); err != nil {
		return 0, err
	}
	if v < 0 || v > math.MaxUint32 {
		return 0, intRangeErr("u32", formatFloat(v))
	}
	return uint32(v), nil
}

func uint32FromString(s string) (uint32, error) {
	if floatText(s) {
		f, err := parseFloatText("u32", s)
		if err != nil {
			return 0, err
		}
		return uint32FromFloat(f)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, parseIntErr("u32", s, err)
	}
	return uint32(v), nil
}

// ---- i64 ----

type i64Codec struct{}

var i64H = i64Handler{canonjson.Unimplemented[int64]{Want: "a valid i64"}}

func (i64Codec) Decode(d *canonjson.Decoder) (int64, error) {
	return canonjson.Dispatch[int64](d, i64H)
}

func (i64Codec) Encode(e *canonjson.Encoder, v int64) error {
	return e.String(strconv.FormatInt(v, 10))
}

type i64Handler struct {
	canonjson.Unimplemented[int64]
}

func (i64Handler) OnNull() (int64, error) { return 0, nil }

func (i64Handler) OnInt(v int64) (int64, error) { return v, nil }

func (i64Handler) OnUint(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, intRangeErr("i64", strconv.FormatUint(v, 10))
	}
	return int64(v), nil
}

func (i64Handler) OnFloat(v float64) (int64, error) { return int64FromFloat(v) }

func (i64Handler) OnString(s string) (int64, error) { return int64FromString(s) }

func int64FromFloat(v float64) (int64, error) {
	if err := wholeNumber("i64", v); err != nil {
		return 0, err
	}
	if v >= two63 || v < -two63 {
		return 0, intRangeErr("i64", formatFloat(v))
	}
	return int64(v), nil
}

func int64FromString(s string) (int64, error) {
	if floatText(s) {
		f, err := parseFloatText("i64", s)
		if err != nil {
			return 0, err
		}
		return int64FromFloat(f)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, parseIntErr("i64", s, err)
	}
	return v, nil
}

// ---- u64 ----

type u64Codec struct{}

var u64H = u64Handler{canonjson.Unimplemented[uint64]{Want: "a valid u64"}}

func (u64Codec) Decode(d *canonjson.Decoder) (uint64, error) {
	return canonjson.Dispatch[uint64](d, u64H)
}

func (u64Codec) Encode(e *canonjson.Encoder, v uint64) error {
	return e.String(strconv.FormatUint(v, 10))
}

// u64Handler deliberately leaves OnInt to Unimplemented: negative integer
// tokens are rejected as a type the codec does not speak.
type u64Handler struct {
	canonjson.Unimplemented[uint64]
}

func (u64Handler) OnNull() (uint64, error) { return 0, nil }

func (u64Handler) OnUint(v uint64) (uint64, error) { return v, nil }

func (u64Handler) OnFloat(v float64) (uint64, error) { return uint64FromFloat(v) }

func (u64Handler) OnString(s string) (uint64, error) { return uint64FromString(s) }

func uint64FromFloat(v float64) (uint64, error) {
	if err := wholeNumber("u64", v); err != nil {
		return 0, err
	}
	if v >= two64 || v < 0 {
		return 0, intRangeErr("u64", formatFloat(v))
	}
	return uint64(v), nil
}

func uint64FromString(s string) (uint64, error) {
	if floatText(s) {
		f, err := parseFloatText("u64", s)
		if err != nil {
			return 0, err
		}
		return uint64FromFloat(f)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, parseIntErr("u64", s, err)
	}
	return v, nil
}

// ---- shared helpers ----

// floatText reports whether integer-from-string should take the float path:
// exponent notation or a ".0" suffix. Anything else must parse as a plain
// decimal integer, so "3.5" fails rather than rounding.
func floatText(s string) bool {
	return strings.ContainsAny(s, "eE") || strings.HasSuffix(s, ".0")
}

// wholeNumber rejects floats that are not exact integers. Values within
// float64Eps of their truncation pass; the width check is the caller's.
func wholeNumber(target string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return intRangeErr(target, formatFloat(v))
	}
	if math.Abs(math.Trunc(v)-v) > float64Eps {
		return &canonjson.RangeError{Target: target, Value: formatFloat(v), Reason: "not an integer"}
	}
	return nil
}

func parseFloatText(target, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &canonjson.RangeError{Target: target, Value: strconv.Quote(s), Reason: "not a number"}
	}
	return f, nil
}

func parseIntErr(target, s string, err error) error {
	reason := "not a decimal integer"
	if errors.Is(err, strconv.ErrRange) {
		reason = "out of range"
	}
	return &canonjson.RangeError{Target: target, Value: strconv.Quote(s), Reason: reason}
}

func intRangeErr(target, value string) error {
	return &canonjson.RangeError{Target: target, Value: value, Reason: "out of range"}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
