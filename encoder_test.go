package canonjson

import (
	"errors"
	"math"
	"testing"
)

func asErr[E error](t *testing.T, err error, target *E) bool {
	t.Helper()
	return errors.As(err, target)
}

func finish(t *testing.T, e *Encoder) string {
	t.Helper()
	b, err := e.Bytes()
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	return string(b)
}

func TestEncoderNestedDocument(t *testing.T) {
	var e Encoder
	steps := []error{
		e.BeginObject(),
		e.Key("a"),
		e.BeginArray(),
		e.Int(1),
		e.String("x"),
		e.Bool(true),
		e.Null(),
		e.EndArray(),
		e.Key("b"),
		e.BeginObject(),
		e.EndObject(),
		e.EndObject(),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	want := `{"a":[1,"x",true,null],"b":{}}`
	if got := finish(t, &e); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncoderStructureRules(t *testing.T) {
	expectStructural := func(name string, err error) {
		t.Helper()
		var se *StructuralError
		if !asErr(t, err, &se) {
			t.Errorf("%s: want StructuralError, got %v", name, err)
		}
	}

	var e Encoder
	expectStructural("key at top level", e.Key("a"))

	e = Encoder{}
	if err := e.BeginObject(); err != nil {
		t.Fatal(err)
	}
	expectStructural("value without key", e.Int(1))
	if err := e.Key("a"); err != nil {
		t.Fatal(err)
	}
	expectStructural("two keys in a row", e.Key("b"))
	expectStructural("close with pending key", e.EndObject())
	expectStructural("array close on object", e.EndArray())

	e = Encoder{}
	if err := e.Bool(true); err != nil {
		t.Fatal(err)
	}
	expectStructural("second top-level value", e.Bool(false))

	e = Encoder{}
	if _, err := e.Bytes(); err == nil {
		t.Error("Bytes on empty encoder should fail")
	}

	e = Encoder{}
	if err := e.BeginArray(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Bytes(); err == nil {
		t.Error("Bytes with an open array should fail")
	}
}

func TestEncoderFloatForms(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3.14, "3.14"},
		{-12.5, "-12.5"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
	}
	for _, tc := range cases {
		var e Encoder
		if err := e.Float64(tc.in); err != nil {
			t.Fatalf("Float64(%v): %v", tc.in, err)
		}
		if got := finish(t, &e); got != tc.want {
			t.Errorf("Float64(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestEncoderRejectsNonFiniteNumbers(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var e Encoder
		err := e.Float64(f)
		var ue *UnionError
		if !asErr(t, err, &ue) {
			t.Errorf("Float64(%v): want UnionError, got %v", f, err)
		}
	}
}

func TestEncoderStringEscaping(t *testing.T) {
	var e Encoder
	if err := e.String("a\"b\\c\nd\x01e"); err != nil {
		t.Fatal(err)
	}
	want := `"a\"b\\c\nde"`
	if got := finish(t, &e); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMarshalRoundsThroughCodec(t *testing.T) {
	b, err := Marshal[struct{}](nullOnly{}, struct{}{})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("got %s, want null", b)
	}
}
