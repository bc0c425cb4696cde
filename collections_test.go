package canonjson_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/unkn0wn-root/canonjson"
	"github.com/unkn0wn-root/canonjson/enum"
	"github.com/unkn0wn-root/canonjson/scalar"
	"github.com/unkn0wn-root/canonjson/wellknown"
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

func TestRepeatedAcceptsEverySpelling(t *testing.T) {
	c := canonjson.Repeated[int32](scalar.I32)

	got := decodeOK(t, c, `[1,"2",3.0,"4.0"]`)
	if !reflect.DeepEqual(got, []int32{1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}
	if got := decodeOK(t, c, `null`); got != nil {
		t.Errorf("null should decode to nil, got %v", got)
	}
	if s := encodeOK(t, c, []int32{5, 6}); s != `[5,6]` {
		t.Errorf("encode = %s", s)
	}
	if s := encodeOK(t, c, nil); s != `[]` {
		t.Errorf("nil encode = %s", s)
	}
}

func TestRepeatedInnerErrorAborts(t *testing.T) {
	c := canonjson.Repeated[int32](scalar.I32)
	_, err := canonjson.Unmarshal(c, []byte(`[1,"3.5",2]`))
	var re *canonjson.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("want RangeError from the element codec, got %v", err)
	}
	_, err = canonjson.Unmarshal(c, []byte(`true`))
	var tm *canonjson.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("want TypeMismatchError for non-array, got %v", err)
	}
}

func TestMapBoolKeysStringify(t *testing.T) {
	c := canonjson.MapOf[bool, int32](scalar.BoolKey, scalar.I32)

	if s := encodeOK(t, c, map[bool]int32{true: 1, false: 2}); s != `{"false":2,"true":1}` {
		t.Errorf("encode = %s", s)
	}
	got := decodeOK(t, c, `{"false":2}`)
	if len(got) != 1 || got[false] != 2 {
		t.Errorf("decode = %v", got)
	}
	_, err := canonjson.Unmarshal(c, []byte(`{"maybe":2}`))
	var tm *canonjson.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("want TypeMismatchError for a non-boolean key, got %v", err)
	}
}

func TestMapIntegerKeysSortNumerically(t *testing.T) {
	c := canonjson.MapOf[int32, string](scalar.I32Key, scalar.String)
	s := encodeOK(t, c, map[int32]string{10: "ten", 2: "two", 9: "nine"})
	if s != `{"2":"two","9":"nine","10":"ten"}` {
		t.Errorf("encode = %s", s)
	}
	// lenient key decode matches the value codec's string rules
	got := decodeOK(t, c, `{"3.0":"three"}`)
	if got[3] != "three" {
		t.Errorf("decode = %v", got)
	}
}

func TestMapCustomValueCodec(t *testing.T) {
	c := canonjson.MapOf[string, wellknown.Duration](scalar.StringKey, wellknown.DurationCodec)
	got := decodeOK(t, c, `{"t":"-1.5s"}`)
	want := wellknown.Duration{Seconds: -1, Nanos: -500000000}
	if got["t"] != want {
		t.Errorf("decode = %+v", got["t"])
	}
	if s := encodeOK(t, c, got); s != `{"t":"-1.5s"}` {
		t.Errorf("encode = %s", s)
	}
}

func TestMapEnumValues(t *testing.T) {
	type level int32
	levels := enum.New[level](
		map[int32]string{0: "LEVEL_UNSET", 1: "LEVEL_HIGH"},
		map[string]int32{"LEVEL_UNSET": 0, "LEVEL_HIGH": 1},
	)
	c := canonjson.MapOf[int32, level](scalar.I32Key, levels)

	got := decodeOK(t, c, `{"7":"LEVEL_HIGH","8":99}`)
	want := map[int32]level{7: 1, 8: 0} // unknown ordinal falls back to the default
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode = %v", got)
	}
	if s := encodeOK(t, c, map[int32]level{7: 1}); s != `{"7":"LEVEL_HIGH"}` {
		t.Errorf("encode = %s", s)
	}
}

func TestMapNullAndDuplicates(t *testing.T) {
	c := canonjson.MapOf[string, int32](scalar.StringKey, scalar.I32)
	if got := decodeOK(t, c, `null`); got != nil {
		t.Errorf("null should decode to nil, got %v", got)
	}
	got := decodeOK(t, c, `{"a":1,"a":2}`)
	if got["a"] != 2 {
		t.Errorf("duplicate key should keep the last value, got %v", got)
	}
}

func TestOptionalDistinguishesNull(t *testing.T) {
	if got := decodeOK(t, scalar.I32Opt, `null`); got != nil {
		t.Errorf("null = %v, want nil", got)
	}
	got := decodeOK(t, scalar.I32Opt, `"7"`)
	if got == nil || *got != 7 {
		t.Errorf("got %v, want &7", got)
	}
	if s := encodeOK(t, scalar.I32Opt, nil); s != `null` {
		t.Errorf("nil encode = %s", s)
	}
	v := int32(7)
	if s := encodeOK(t, scalar.I32Opt, &v); s != `7` {
		t.Errorf("encode = %s", s)
	}
}

func TestEmptyMessageStrictness(t *testing.T) {
	decodeOK(t, canonjson.Empty, `{}`)

	_, err := canonjson.Unmarshal(canonjson.Empty, []byte(`{"x":1}`))
	var se *canonjson.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("want StructuralError for a member on an empty message, got %v", err)
	}

	_, err = canonjson.Unmarshal(canonjson.Empty, []byte(`null`))
	var tm *canonjson.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("want TypeMismatchError for null, got %v", err)
	}

	if s := encodeOK(t, canonjson.Empty, struct{}{}); s != `{}` {
		t.Errorf("encode = %s", s)
	}
}

func TestOptionalEmptySeparatesAbsentFromEmpty(t *testing.T) {
	if got := decodeOK(t, canonjson.OptionalEmpty, `null`); got != nil {
		t.Errorf("null = %v, want nil", got)
	}
	if got := decodeOK(t, canonjson.OptionalEmpty, `{}`); got == nil {
		t.Error("{} should decode to a non-nil pointer")
	}
}

func TestNestedComposition(t *testing.T) {
	// map<string, repeated i64>: both collection layers plus the 64-bit
	// string form in one shape.
	c := canonjson.MapOf[string, []int64](scalar.StringKey, canonjson.Repeated[int64](scalar.I64))
	got := decodeOK(t, c, `{"a":[1,"9223372036854775807"],"b":null}`)
	want := map[string][]int64{"a": {1, 9223372036854775807}, "b": nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode = %v", got)
	}
	if s := encodeOK(t, c, got); s != `{"a":["1","9223372036854775807"],"b":[]}` {
		t.Errorf("encode = %s", s)
	}
}
