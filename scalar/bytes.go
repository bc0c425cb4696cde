package scalar

import (
	"encoding/base64"

	"github.com/unkn0wn-root/canonjson"
)

// Bytes is the codec for byte strings. Decode accepts standard or URL-safe
// base64, padded or not; encode always emits padded standard base64. Null
// decodes to a nil slice.
var Bytes canonjson.Codec[[]byte] = bytesCodec{}

// BytesOpt is Bytes with null mapped to nil instead of an empty slice.
var BytesOpt = canonjson.Optional[[]byte](Bytes)

type bytesCodec struct{}

var bytesH = bytesHandler{canonjson.Unimplemented[[]byte]{Want: "a base64 string"}}

func (bytesCodec) Decode(d *canonjson.Decoder) ([]byte, error) {
	return canonjson.Dispatch[[]byte](d, bytesH)
}

func (bytesCodec) Encode(e *canonjson.Encoder, v []byte) error {
	return e.String(base64.StdEncoding.EncodeToString(v))
}

type bytesHandler struct {
	canonjson.Unimplemented[[]byte]
}

func (bytesHandler) OnNull() ([]byte, error) { return nil, nil }

func (bytesHandler) OnString(s string) ([]byte, error) { return decodeBase64(s) }

// decodeBase64 tries the four RFC 4648 alphabets in order. Senders disagree
// on padding and on the URL-safe alphabet, so decoding is permissive even
// though encoding is fixed.
func decodeBase64(s string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, &canonjson.EncodingError{Encoding: "base64 string", Value: s}
}
