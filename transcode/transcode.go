// Package transcode renders dynamic value trees in compact binary forms:
// deterministic CBOR (RFC 8949 Core Deterministic) for byte-for-byte stable
// output suitable for hashing or content addressing, and msgpack with sorted
// map keys for the same property in msgpack-speaking systems.
//
// Both directions go through the native form of the tree, so the binary side
// never sees the Value union: numbers come back as CBOR/msgpack integers or
// floats and are widened to the number variant on the way in, the same way
// the JSON codec widens them.
package transcode

import (
	"bytes"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/canonjson"
	"github.com/unkn0wn-root/canonjson/wellknown"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dm, err := (cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}).DecMode()
	if err != nil {
		panic(err)
	}
	cborEnc, cborDec = em, dm
}

// MarshalCBOR encodes v as deterministic CBOR. The zero Value is rejected,
// as in the JSON mapping.
func MarshalCBOR(v wellknown.Value) ([]byte, error) {
	iv, err := native(v)
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(iv)
}

// UnmarshalCBOR decodes one CBOR item into a Value tree.
func UnmarshalCBOR(b []byte) (wellknown.Value, error) {
	var iv any
	if err := cborDec.Unmarshal(b, &iv); err != nil {
		return wellknown.Value{}, err
	}
	return wellknown.NewValue(iv)
}

// MarshalMsgpack encodes v as msgpack with sorted map keys.
func MarshalMsgpack(v wellknown.Value) ([]byte, error) {
	iv, err := native(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(iv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack decodes one msgpack value into a Value tree.
func UnmarshalMsgpack(b []byte) (wellknown.Value, error) {
	var iv any
	if err := msgpack.Unmarshal(b, &iv); err != nil {
		return wellknown.Value{}, err
	}
	return wellknown.NewValue(iv)
}

func native(v wellknown.Value) (any, error) {
	if v.Kind() == wellknown.KindUnset {
		return nil, &canonjson.UnionError{Reason: "variant must be set"}
	}
	return v.AsInterface(), nil
}
