package canonjson

// Codec decodes values of type T from a JSON token stream and encodes them
// to their canonical JSON form. Codecs are stateless strategy values, safe
// for concurrent use; generated bindings pick them at registration time and
// collection adapters compose them.
//
// Decode consumes exactly one JSON value from the decoder. Encode writes
// exactly one JSON value to the encoder.
type Codec[T any] interface {
	Decode(*Decoder) (T, error)
	Encode(*Encoder, T) error
}

// KeyCodec is the string view of a scalar used where it appears as a JSON
// object member name. DecodeKey applies the same string rules the value
// codec applies to quoted scalars; EncodeKey renders the canonical member
// name; Less orders keys so encoded objects are stable across runs.
type KeyCodec[K comparable] interface {
	DecodeKey(string) (K, error)
	EncodeKey(K) string
	Less(a, b K) bool
}
