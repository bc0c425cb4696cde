package wellknown

import (
	"math"
	"sort"

	"github.com/unkn0wn-root/canonjson"
)

// ValueCodec maps Value to whatever JSON shape matches its variant. Decode
// accepts every token kind and builds the corresponding variant, recursing
// into arrays and objects under the decoder's depth limit. Encode fails on
// the zero Value and on non-finite numbers: the mapping has no spelling for
// either (a NaN written as text would read back as a string variant).
var ValueCodec canonjson.Codec[Value] = valueCodec{}

// StructCodec maps Struct to a JSON object, for fields typed as a bare
// struct rather than a value. Null decodes to a nil Struct.
var StructCodec canonjson.Codec[Struct] = structCodec{}

// ListCodec maps List to a JSON array. Null decodes to a nil List.
var ListCodec canonjson.Codec[List] = listCodec{}

type valueCodec struct{}

var valueH = valueHandler{}

func (valueCodec) Decode(d *canonjson.Decoder) (Value, error) {
	return canonjson.Dispatch[Value](d, valueH)
}

func (valueCodec) Encode(e *canonjson.Encoder, v Value) error {
	switch v.kind {
	case KindNull:
		return e.Null()
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return &canonjson.UnionError{Reason: "number values must not be NaN or infinite"}
		}
		return e.Float64(v.num)
	case KindString:
		return e.String(v.str)
	case KindBool:
		return e.Bool(v.b)
	case KindStruct:
		return encodeStruct(e, v.obj)
	case KindList:
		return encodeList(e, v.list)
	}
	return &canonjson.UnionError{Reason: "variant must be set"}
}

// valueHandler accepts everything, so it does not embed Unimplemented.
type valueHandler struct{}

func (valueHandler) OnNull() (Value, error) { return NewNullValue(), nil }

func (valueHandler) OnBool(v bool) (Value, error) { return NewBoolValue(v), nil }

func (valueHandler) OnInt(v int64) (Value, error) { return NewNumberValue(float64(v)), nil }

func (valueHandler) OnUint(v uint64) (Value, error) { return NewNumberValue(float64(v)), nil }

func (valueHandler) OnFloat(v float64) (Value, error) { return NewNumberValue(v), nil }

func (valueHandler) OnString(s string) (Value, error) { return NewStringValue(s), nil }

func (valueHandler) OnArray(d *canonjson.Decoder) (Value, error) {
	l, err := decodeListBody(d)
	if err != nil {
		return Value{}, err
	}
	return NewListValue(l), nil
}

func (valueHandler) OnObject(d *canonjson.Decoder) (Value, error) {
	s, err := decodeStructBody(d)
	if err != nil {
		return Value{}, err
	}
	return NewStructValue(s), nil
}

type structCodec struct{}

var structH = structHandler{canonjson.Unimplemented[Struct]{Want: "an object"}}

func (structCodec) Decode(d *canonjson.Decoder) (Struct, error) {
	return canonjson.Dispatch[Struct](d, structH)
}

func (structCodec) Encode(e *canonjson.Encoder, s Struct) error {
	return encodeStruct(e, s)
}

type structHandler struct {
	canonjson.Unimplemented[Struct]
}

func (structHandler) OnNull() (Struct, error) { return nil, nil }

func (structHandler) OnObject(d *canonjson.Decoder) (Struct, error) {
	return decodeStructBody(d)
}

type listCodec struct{}

var listH = listHandler{canonjson.Unimplemented[List]{Want: "an array"}}

func (listCodec) Decode(d *canonjson.Decoder) (List, error) {
	return canonjson.Dispatch[List](d, listH)
}

func (listCodec) Encode(e *canonjson.Encoder, l List) error {
	return encodeList(e, l)
}

type listHandler struct {
	canonjson.Unimplemented[List]
}

func (listHandler) OnNull() (List, error) { return nil, nil }

func (listHandler) OnArray(d *canonjson.Decoder) (List, error) {
	return decodeListBody(d)
}

func decodeStructBody(d *canonjson.Decoder) (Struct, error) {
	out := make(Struct)
	for {
		name, ok, err := d.NextKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		v, err := ValueCodec.Decode(d)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
}

func decodeListBody(d *canonjson.Decoder) (List, error) {
	var out List
	for d.More() {
		v, err := ValueCodec.Decode(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := d.EndArray(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeStruct(e *canonjson.Encoder, s Struct) error {
	if err := e.BeginObject(); err != nil {
		return err
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := e.Key(k); err != nil {
			return err
		}
		if err := ValueCodec.Encode(e, s[k]); err != nil {
			return err
		}
	}
	return e.EndObject()
}

func encodeList(e *canonjson.Encoder, l List) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range l {
		if err := ValueCodec.Encode(e, v); err != nil {
			return err
		}
	}
	return e.EndArray()
}
