package wellknown

import (
	"errors"
	"testing"
	"time"

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
		t.Fatalf("Marshal(%+v) error: %v", v, err)
	}
	return string(b)
}

func wantEncoding[T any](t *testing.T, c canonjson.Codec[T], in string) {
	t.Helper()
	_, err := canonjson.Unmarshal(c, []byte(in))
	var ee *canonjson.EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("Unmarshal(%s): want EncodingError, got %v", in, err)
	}
}

func TestTimestampFractionGroups(t *testing.T) {
	cases := []struct {
		ts   Timestamp
		want string
	}{
		{Timestamp{Seconds: 0, Nanos: 0}, `"1970-01-01T00:00:00Z"`},
		{Timestamp{Seconds: 1, Nanos: 10000000}, `"1970-01-01T00:00:01.010Z"`},
		{Timestamp{Seconds: 1, Nanos: 10000}, `"1970-01-01T00:00:01.000010Z"`},
		{Timestamp{Seconds: 1, Nanos: 1}, `"1970-01-01T00:00:01.000000001Z"`},
		{Timestamp{Seconds: -1, Nanos: 500000000}, `"1969-12-31T23:59:59.500Z"`},
	}
	for _, tc := range cases {
		if got := encodeOK(t, TimestampCodec, tc.ts); got != tc.want {
			t.Errorf("encode(%+v) = %s, want %s", tc.ts, got, tc.want)
		}
	}
}

func TestTimestampDecodeNormalizesToUTC(t *testing.T) {
	a := decodeOK(t, TimestampCodec, `"2017-01-15T01:30:15.01Z"`)
	if (a != Timestamp{Seconds: 1484443815, Nanos: 10000000}) {
		t.Errorf("got %+v", a)
	}
	// same instant spelled with an offset
	b := decodeOK(t, TimestampCodec, `"2017-01-15T02:30:15.01+01:00"`)
	if a != b {
		t.Errorf("offset form differs: %+v vs %+v", a, b)
	}
	if got := encodeOK(t, TimestampCodec, b); got != `"2017-01-15T01:30:15.010Z"` {
		t.Errorf("re-encode = %s", got)
	}
}

func TestTimestampRejectsGarbageAndRange(t *testing.T) {
	wantEncoding(t, TimestampCodec, `"yesterday"`)
	wantEncoding(t, TimestampCodec, `"2017-01-15"`)
	wantEncoding(t, TimestampCodec, `"0000-12-31T23:59:59Z"`)

	_, err := canonjson.Unmarshal(TimestampCodec, []byte(`null`))
	var tm *canonjson.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("null: want TypeMismatchError, got %v", err)
	}
	_, err = canonjson.Unmarshal(TimestampCodec, []byte(`1484443815`))
	if !errors.As(err, &tm) {
		t.Fatalf("number: want TypeMismatchError, got %v", err)
	}

	// out-of-range values have no canonical form on the way out either
	_, err = canonjson.Marshal(TimestampCodec, Timestamp{Seconds: maxTimestampSeconds + 1})
	var ee *canonjson.EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("encode out of range: got %v", err)
	}
}

func TestTimestampTimeConversions(t *testing.T) {
	in := time.Date(2020, 6, 1, 12, 30, 0, 123456789, time.UTC)
	ts := NewTimestamp(in)
	if !ts.Time().Equal(in) {
		t.Errorf("round trip: %v vs %v", ts.Time(), in)
	}
	if ts.String() != "2020-06-01T12:30:00.123456789Z" {
		t.Errorf("String = %s", ts.String())
	}
}

func TestTimestampNormalized(t *testing.T) {
	got := Timestamp{Seconds: 1, Nanos: -1}.Normalized()
	if (got != Timestamp{Seconds: 0, Nanos: 999999999}) {
		t.Errorf("got %+v", got)
	}
	got = Timestamp{Seconds: 0, Nanos: 2500000000 - 3000000000}.Normalized() // -5e8
	if (got != Timestamp{Seconds: -1, Nanos: 500000000}) {
		t.Errorf("got %+v", got)
	}
	if !(Timestamp{}).Normalized().IsValid() {
		t.Error("normalized zero should be valid")
	}
	clamped := Timestamp{Seconds: maxTimestampSeconds + 100}.Normalized()
	if !clamped.IsValid() {
		t.Errorf("clamp failed: %+v", clamped)
	}
}

func TestOptionalTimestamp(t *testing.T) {
	got, err := canonjson.Unmarshal(TimestampOpt, []byte(`null`))
	if err != nil || got != nil {
		t.Errorf("null = %v, %v", got, err)
	}
}
