package scalar

import (
	"github.com/unkn0wn-root/canonjson"
)

// Bool is the codec for booleans. Only true, false and null are accepted in
// value position; the quoted forms "true" and "false" belong to map keys and
// are handled by BoolKey.
var Bool canonjson.Codec[bool] = boolCodec{}

// BoolOpt is Bool with null mapped to nil instead of false.
var BoolOpt = canonjson.Optional[bool](Bool)

type boolCodec struct{}

var boolH = boolHandler{canonjson.Unimplemented[bool]{Want: "a boolean"}}

func (boolCodec) Decode(d *canonjson.Decoder) (bool, error) {
	return canonjson.Dispatch[bool](d, boolH)
}

func (boolCodec) Encode(e *canonjson.Encoder, v bool) error {
	return e.Bool(v)
}

type boolHandler struct {
	canonjson.Unimplemented[bool]
}

func (boolHandler) OnNull() (bool, error) { return false, nil }

func (boolHandler) OnBool(v bool) (bool, error) { return v, nil }
