package wellknown

import (
	"encoding/base64"
	"fmt"
)

// Kind names the variant a Value holds. The zero Kind is no variant at all,
// which is a legal in-memory state but not an encodable one.
type Kind uint8

const (
	KindUnset Kind = iota
	KindNull
	KindNumber
	KindString
	KindBool
	KindStruct
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindStruct:
		return "struct"
	case KindList:
		return "list"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a dynamically typed value mirroring JSON structure: null, a
// 64-bit float, a string, a bool, a Struct or a List. Exactly one variant is
// set at a time; the zero Value has none and fails to encode. Build one with
// the New*Value constructors or NewValue.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	obj  Struct
	list List
}

// Struct is an object of dynamic values. Encoding walks the keys in
// bytewise order, so output does not depend on map iteration.
type Struct map[string]Value

// List is an array of dynamic values.
type List []Value

func NewNullValue() Value            { return Value{kind: KindNull} }
func NewNumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }
func NewStringValue(s string) Value  { return Value{kind: KindString, str: s} }
func NewBoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func NewStructValue(s Struct) Value  { return Value{kind: KindStruct, obj: s} }
func NewListValue(l List) Value      { return Value{kind: KindList, list: l} }

// Kind reports which variant is set.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the null variant is set. The zero Value is not
// null; no variant is set at all.
func (v Value) IsNull() bool { return v.kind == KindNull }

// NumberValue returns the number variant.
func (v Value) NumberValue() (float64, bool) { return v.num, v.kind == KindNumber }

// StringValue returns the string variant.
func (v Value) StringValue() (string, bool) { return v.str, v.kind == KindString }

// BoolValue returns the bool variant.
func (v Value) BoolValue() (bool, bool) { return v.b, v.kind == KindBool }

// StructValue returns the struct variant.
func (v Value) StructValue() (Struct, bool) { return v.obj, v.kind == KindStruct }

// ListValue returns the list variant.
func (v Value) ListValue() (List, bool) { return v.list, v.kind == KindList }

// NewValue builds a Value tree from native Go data: nil, bool, any integer
// or float width, string, []byte (held as its base64 text), []any,
// map[string]any, and the package's own Value/Struct/List. Anything else is
// an error.
func NewValue(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NewNullValue(), nil
	case bool:
		return NewBoolValue(x), nil
	case int:
		return NewNumberValue(float64(x)), nil
	case int8:
		return NewNumberValue(float64(x)), nil
	case int16:
		return NewNumberValue(float64(x)), nil
	case int32:
		return NewNumberValue(float64(x)), nil
	case int64:
		return NewNumberValue(float64(x)), nil
	case uint:
		return NewNumberValue(float64(x)), nil
	case uint8:
		return NewNumberValue(float64(x)), nil
	case uint16:
		return NewNumberValue(float64(x)), nil
	case uint32:
		return NewNumberValue(float64(x)), nil
	case uint64:
		return NewNumberValue(float64(x)), nil
	case float32:
		return NewNumberValue(float64(x)), nil
	case float64:
		return NewNumberValue(x), nil
	case string:
		return NewStringValue(x), nil
	case []byte:
		return NewStringValue(base64.StdEncoding.EncodeToString(x)), nil
	case []any:
		l, err := NewList(x)
		if err != nil {
			return Value{}, err
		}
		return NewListValue(l), nil
	case map[string]any:
		s, err := NewStruct(x)
		if err != nil {
			return Value{}, err
		}
		return NewStructValue(s), nil
	case Value:
		return x, nil
	case Struct:
		return NewStructValue(x), nil
	case List:
		return NewListValue(x), nil
	}
	return Value{}, fmt.Errorf("canonjson/wellknown: cannot build a Value from %T", v)
}

// AsInterface returns the native Go form of the tree: nil, bool, float64,
// string, map[string]any or []any. The zero Value also returns nil.
func (v Value) AsInterface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindStruct:
		return v.obj.AsMap()
	case KindList:
		return v.list.AsSlice()
	}
	return nil
}

// NewStruct builds a Struct from a native map. Values go through NewValue.
func NewStruct(m map[string]any) (Struct, error) {
	out := make(Struct, len(m))
	for k, v := range m {
		val, err := NewValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}

// AsMap returns the native form of the struct.
func (s Struct) AsMap() map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = v.AsInterface()
	}
	return out
}

// NewList builds a List from a native slice. Elements go through NewValue.
func NewList(vs []any) (List, error) {
	out := make(List, len(vs))
	for i, v := range vs {
		val, err := NewValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// AsSlice returns the native form of the list.
func (l List) AsSlice() []any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = v.AsInterface()
	}
	return out
}
