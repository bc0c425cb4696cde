package scalar

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/canonjson"
)

func decodeOK[T any](t *testing.T, c canonjson.Codec[T], in string) T {
	t.Helper()
	v, err := canonjson.Unmarshal(c, []byte(in))
	if err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", in, err)
	}
	return v
}

func encodeOK[T any](t *testing.T, c canonjson.Codec[T], v T) string {
	t.Helper()
	b, err := canonjson.Marshal(c, v)
	if err != nil {
		t.Fatalf("Marshal(%v) error: %v", v, err)
	}
	return string(b)
}

func wantRange[T any](t *testing.T, c canonjson.Codec[T], in, reason string) {
	t.Helper()
	_, err := canonjson.Unmarshal(c, []byte(in))
	var re *canonjson.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("Unmarshal(%s): want RangeError, got %v", in, err)
	}
	if reason != "" && re.Reason != reason {
		t.Errorf("Unmarshal(%s): reason = %q, want %q", in, re.Reason, reason)
	}
}

func wantMismatch[T any](t *testing.T, c canonjson.Codec[T], in string) {
	t.Helper()
	_, err := canonjson.Unmarshal(c, []byte(in))
	var tm *canonjson.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("Unmarshal(%s): want TypeMismatchError, got %v", in, err)
	}
}

func TestI32Spellings(t *testing.T) {
	for _, in := range []string{`3`, `"3"`, `3.0`, `"3.0"`, `"3e0"`, `3e0`} {
		if got := decodeOK(t, I32, in); got != 3 {
			t.Errorf("decode(%s) = %d, want 3", in, got)
		}
	}
	if got := decodeOK(t, I32, `null`); got != 0 {
		t.Errorf("null = %d, want 0", got)
	}
	if got := decodeOK(t, I32, `-3`); got != -3 {
		t.Errorf("decode(-3) = %d", got)
	}
	if s := encodeOK(t, I32, 3); s != `3` {
		t.Errorf("encode = %s", s)
	}
}

func TestI32RejectsFractionsAndOverflow(t *testing.T) {
	wantRange(t, I32, `3.5`, "not an integer")
	wantRange(t, I32, `"3.5"`, "not a decimal integer")
	wantRange(t, I32, `3.0000000000000004`, "not an integer")
	wantRange(t, I32, `2147483648`, "out of range")
	wantRange(t, I32, `-2147483649`, "out of range")
	wantRange(t, I32, `"2147483648"`, "out of range")
	wantMismatch(t, I32, `true`)
	wantMismatch(t, I32, `[1]`)
}

func TestU32Bounds(t *testing.T) {
	if got := decodeOK(t, U32, `4294967295`); got != 4294967295 {
		t.Errorf("got %d", got)
	}
	wantRange(t, U32, `4294967296`, "out of range")
	wantRange(t, U32, `-1`, "out of range")
	wantRange(t, U32, `-1.0`, "out of range")
	if s := encodeOK(t, U32, 7); s != `7` {
		t.Errorf("encode = %s", s)
	}
}

func TestI64CanonicalStringForm(t *testing.T) {
	if s := encodeOK(t, I64, -1); s != `"-1"` {
		t.Errorf("encode(-1) = %s", s)
	}
	if s := encodeOK(t, I64, 9223372036854775807); s != `"9223372036854775807"` {
		t.Errorf("encode(max) = %s", s)
	}
	// numeric and string spellings of the same value decode alike
	a := decodeOK(t, I64, `123`)
	b := decodeOK(t, I64, `"123"`)
	if a != b || a != 123 {
		t.Errorf("got %d and %d", a, b)
	}
	if got := decodeOK(t, I64, `"-9223372036854775808"`); got != -9223372036854775808 {
		t.Errorf("got %d", got)
	}
	wantRange(t, I64, `9223372036854775808`, "out of range")
	wantRange(t, I64, `9.3e18`, "out of range")
}

func TestU64RejectsNegativeTokensOutright(t *testing.T) {
	// a negative integer token is a kind the codec does not speak, unlike
	// u32 where the conversion fails
	wantMismatch(t, U64, `-1`)
	wantRange(t, U64, `-1.0`, "out of range")
	wantRange(t, U64, `"-1"`, "not a decimal integer")

	if got := decodeOK(t, U64, `"18446744073709551615"`); got != 18446744073709551615 {
		t.Errorf("got %d", got)
	}
	if s := encodeOK(t, U64, 123); s != `"123"` {
		t.Errorf("encode = %s", s)
	}
	wantRange(t, U64, `1.9e19`, "out of range")
}

func TestIntegerRoundTrips(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -9223372036854775808, 9223372036854775807} {
		b, err := canonjson.Marshal(I64, v)
		if err != nil {
			t.Fatalf("Marshal(%d): %v", v, err)
		}
		got, err := canonjson.Unmarshal(I64, b)
		if err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %s -> %d", v, b, got)
		}
	}
}

func TestIntegerKeys(t *testing.T) {
	k, err := I32Key.DecodeKey("3.0")
	if err != nil || k != 3 {
		t.Errorf("DecodeKey(3.0) = %d, %v", k, err)
	}
	if _, err := I32Key.DecodeKey("3.5"); err == nil {
		t.Error("DecodeKey(3.5) should fail")
	}
	if s := I64Key.EncodeKey(-5); s != "-5" {
		t.Errorf("EncodeKey = %s", s)
	}
	if !U64Key.Less(9, 10) || U64Key.Less(10, 9) {
		t.Error("numeric ordering broken")
	}
}
