package canonjson

import (
	"fmt"
	"strconv"
)

// Handler receives exactly one JSON value, one method per token kind.
// Codec implementations embed Unimplemented and override only the kinds
// they accept; Dispatch routes the next value to the right method.
//
// Integer tokens split by sign: negative literals arrive at OnInt,
// non-negative literals at OnUint. Literals with a fraction or exponent,
// and integer literals that do not fit in 64 bits, arrive at OnFloat.
//
// OnArray and OnObject are invoked after the opening delimiter has been
// consumed. The handler must drain the structure through its closing
// delimiter: More and EndArray for arrays, NextKey for objects.
type Handler[T any] interface {
	OnNull() (T, error)
	OnBool(bool) (T, error)
	OnInt(int64) (T, error)
	OnUint(uint64) (T, error)
	OnFloat(float64) (T, error)
	OnString(string) (T, error)
	OnArray(*Decoder) (T, error)
	OnObject(*Decoder) (T, error)
}

// Unimplemented rejects every token kind with a TypeMismatchError naming
// what the embedding codec expected.
type Unimplemented[T any] struct {
	Want string
}

func (u Unimplemented[T]) reject(got string) (T, error) {
	var zero T
	return zero, &TypeMismatchError{Expected: u.Want, Got: got}
}

func (u Unimplemented[T]) OnNull() (T, error) {
	return u.reject("null")
}

func (u Unimplemented[T]) OnBool(v bool) (T, error) {
	return u.reject("boolean " + strconv.FormatBool(v))
}

func (u Unimplemented[T]) OnInt(v int64) (T, error) {
	return u.reject("integer " + strconv.FormatInt(v, 10))
}

func (u Unimplemented[T]) OnUint(v uint64) (T, error) {
	return u.reject("integer " + strconv.FormatUint(v, 10))
}

func (u Unimplemented[T]) OnFloat(v float64) (T, error) {
	return u.reject("number " + strconv.FormatFloat(v, 'g', -1, 64))
}

func (u Unimplemented[T]) OnString(v string) (T, error) {
	return u.reject(fmt.Sprintf("string %q", v))
}

func (u Unimplemented[T]) OnArray(*Decoder) (T, error) {
	return u.reject("array")
}

func (u Unimplemented[T]) OnObject(*Decoder) (T, error) {
	return u.reject("object")
}
