package scalar

import (
	"github.com/unkn0wn-root/canonjson"
)

// String is the codec for UTF-8 strings. Null decodes to "".
var String canonjson.Codec[string] = stringCodec{}

// StringOpt is String with null mapped to nil instead of "".
var StringOpt = canonjson.Optional[string](String)

type stringCodec struct{}

var stringH = stringHandler{canonjson.Unimplemented[string]{Want: "a string"}}

func (stringCodec) Decode(d *canonjson.Decoder) (string, error) {
	return canonjson.Dispatch[string](d, stringH)
}

func (stringCodec) Encode(e *canonjson.Encoder, v string) error {
	return e.String(v)
}

type stringHandler struct {
	canonjson.Unimplemented[string]
}

func (stringHandler) OnNull() (string, error) { return "", nil }

func (stringHandler) OnString(s string) (string, error) { return s, nil }
