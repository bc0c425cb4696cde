// Package enum maps named 32-bit enumerations to and from their JSON forms.
//
// An Enum decodes both spellings a peer may send: the symbolic name and the
// numeric ordinal. The two are not treated alike. An unknown name is an
// error, because it usually means a typo or a schema mismatch; an unknown
// ordinal decodes to the default value, because it usually means the peer is
// newer and the local schema simply has no name for it yet. Encoding always
// emits the name and fails on values that have none.
package enum

import (
	"fmt"
	"math"

	"github.com/unkn0wn-root/canonjson"
)

const two63 = 9223372036854775808.0 // 2^63

// Enum is a codec for a named ~int32 type. Construct one with New or
// NewWithDefault; the zero Enum rejects every name and encodes nothing.
type Enum[E ~int32] struct {
	names  map[E]string
	values map[string]E
	def    E
	typ    string
}

var _ canonjson.Codec[int32] = Enum[int32]{}

// New builds an Enum from the generated metadata tables: ordinal to name and
// name to ordinal, the X_name/X_value pair protoc-gen-go emits. The value
// table may carry alias names on top of the canonical set. The default value,
// used for null and for unrecognized ordinals, is E(0).
func New[E ~int32](names map[int32]string, values map[string]int32) Enum[E] {
	return NewWithDefault[E](names, values, 0)
}

// NewWithDefault is New with an explicit default value.
func NewWithDefault[E ~int32](names map[int32]string, values map[string]int32, def E) Enum[E] {
	n := make(map[E]string, len(names))
	for ord, name := range names {
		n[E(ord)] = name
	}
	v := make(map[string]E, len(values))
	for name, ord := range values {
		v[name] = E(ord)
	}
	return Enum[E]{
		names:  n,
		values: v,
		def:    def,
		typ:    fmt.Sprintf("%T", def),
	}
}

// Opt wraps the enum so null decodes to nil instead of the default value.
func (c Enum[E]) Opt() canonjson.Codec[*E] {
	return canonjson.Optional[E](c)
}

// Name returns the symbolic name for v, if it has one.
func (c Enum[E]) Name(v E) (string, bool) {
	n, ok := c.names[v]
	return n, ok
}

// Value returns the enum value for a symbolic name, if the name is known.
func (c Enum[E]) Value(name string) (E, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Default returns the value used for null and unrecognized ordinals.
func (c Enum[E]) Default() E { return c.def }

func (c Enum[E]) Decode(d *canonjson.Decoder) (E, error) {
	h := enumHandler[E]{
		Unimplemented: canonjson.Unimplemented[E]{Want: "an enum name or number"},
		enum:          c,
	}
	return canonjson.Dispatch[E](d, h)
}

func (c Enum[E]) Encode(e *canonjson.Encoder, v E) error {
	n, ok := c.names[v]
	if !ok {
		return &canonjson.UnknownEnumError{Enum: c.typ, Number: int32(v), ByNumber: true}
	}
	return e.String(n)
}

type enumHandler[E ~int32] struct {
	canonjson.Unimplemented[E]
	enum Enum[E]
}

func (h enumHandler[E]) OnNull() (E, error) { return h.enum.def, nil }

func (h enumHandler[E]) OnInt(v int64) (E, error) { return h.fromOrdinal(v), nil }

func (h enumHandler[E]) OnUint(v uint64) (E, error) {
	if v > math.MaxInt64 {
		return h.enum.def, nil
	}
	return h.fromOrdinal(int64(v)), nil
}

func (h enumHandler[E]) OnFloat(v float64) (E, error) {
	if math.IsNaN(v) || v >= two63 || v <= -two63 {
		return h.enum.def, nil
	}
	return h.fromOrdinal(int64(v)), nil
}

func (h enumHandler[E]) OnString(s string) (E, error) {
	v, ok := h.enum.values[s]
	if !ok {
		return 0, &canonjson.UnknownEnumError{Enum: h.enum.typ, Name: s}
	}
	return v, nil
}

// fromOrdinal resolves a numeric ordinal, mapping anything the local schema
// has no name for to the default value.
func (h enumHandler[E]) fromOrdinal(v int64) E {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return h.enum.def
	}
	e := E(v)
	if _, ok := h.enum.names[e]; !ok {
		return h.enum.def
	}
	return e
}
