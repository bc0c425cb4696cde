package canonjson

import "fmt"

// Empty is the codec for message types with no fields. It accepts only the
// empty JSON object; a member on such a message is a StructuralError, and
// null is a type mismatch (presence belongs to Optional).
var Empty Codec[struct{}] = emptyCodec{}

// OptionalEmpty distinguishes null (absent, nil) from {} (present but
// empty).
var OptionalEmpty = Optional[struct{}](Empty)

type emptyCodec struct{}

func (emptyCodec) Decode(d *Decoder) (struct{}, error) {
	return Dispatch[struct{}](d, emptyHandler{Unimplemented[struct{}]{Want: "an empty object"}})
}

func (emptyCodec) Encode(e *Encoder, _ struct{}) error {
	if err := e.BeginObject(); err != nil {
		return err
	}
	return e.EndObject()
}

type emptyHandler struct {
	Unimplemented[struct{}]
}

func (emptyHandler) OnObject(d *Decoder) (struct{}, error) {
	name, ok, err := d.NextKey()
	if err != nil {
		return struct{}{}, err
	}
	if ok {
		return struct{}{}, &StructuralError{
			Type:   "message",
			Detail: fmt.Sprintf("member %q on a message with no fields", name),
		}
	}
	return struct{}{}, nil
}
