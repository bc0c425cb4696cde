package canonjson

import (
	"fmt"
)

// TypeMismatchError reports a JSON token kind the codec does not accept.
type TypeMismatchError struct {
	Expected string // what the codec accepts, e.g. "a valid i32"
	Got      string // the offending token, e.g. `boolean true`
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("canonjson: invalid type: %s, expected %s", e.Got, e.Expected)
}

// RangeError reports a numeric value outside the target type's representable
// range, a fractional value where an exact integer is required, or numeric
// text that does not parse.
type RangeError struct {
	Target string // e.g. "i32"
	Value  string // the offending value, formatted
	Reason string // e.g. "out of range", "not an integer"
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("canonjson: invalid %s %s: %s", e.Target, e.Value, e.Reason)
}

// EncodingError reports malformed encoded text: base64 bytes, RFC 3339
// timestamps, duration strings.
type EncodingError struct {
	Encoding string // e.g. "base64 string", "RFC 3339 timestamp"
	Value    string
	Err      error // underlying parse error, may be nil
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("canonjson: %q is not a valid %s: %v", e.Value, e.Encoding, e.Err)
	}
	return fmt.Sprintf("canonjson: %q is not a valid %s", e.Value, e.Encoding)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// UnknownEnumError reports an enum name with no ordinal on decode, or an
// ordinal with no name on encode. Unknown ordinals on decode do NOT produce
// this error; they fall back to the enum's default value.
type UnknownEnumError struct {
	Enum     string // enum type name
	Name     string // offending name (decode)
	Number   int32  // offending ordinal (encode)
	ByNumber bool   // true when the ordinal lookup failed
}

func (e *UnknownEnumError) Error() string {
	if e.ByNumber {
		return fmt.Sprintf("canonjson: %s has no name for value %d", e.Enum, e.Number)
	}
	return fmt.Sprintf("canonjson: %s has no value named %q", e.Enum, e.Name)
}

// UnionError reports an unencodable dynamic value: a union with no variant
// set, or a non-finite number where the wire form has no spelling for it.
type UnionError struct {
	Reason string
}

func (e *UnionError) Error() string { return "canonjson: " + e.Reason }

// StructuralError reports a document-shape violation: members on an empty
// message, emitter misuse, trailing input after a complete value.
type StructuralError struct {
	Type   string // "decode", "encode", "message", "registry"
	Detail string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("canonjson: %s: %s", e.Type, e.Detail)
}

// DepthError reports decode nesting beyond the decoder's configured limit.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("canonjson: value nesting exceeds %d levels", e.Limit)
}
