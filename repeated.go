package canonjson

// Repeated adapts an element codec to JSON arrays. Null decodes to the
// empty list; the first element error aborts the whole decode.
func Repeated[T any](elem Codec[T]) Codec[[]T] {
	return repeatedCodec[T]{elem: elem}
}

type repeatedCodec[T any] struct {
	elem Codec[T]
}

func (r repeatedCodec[T]) Decode(d *Decoder) ([]T, error) {
	return Dispatch[[]T](d, repeatedHandler[T]{
		Unimplemented: Unimplemented[[]T]{Want: "an array"},
		elem:          r.elem,
	})
}

func (r repeatedCodec[T]) Encode(e *Encoder, vs []T) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for _, v := range vs {
		if err := r.elem.Encode(e, v); err != nil {
			return err
		}
	}
	return e.EndArray()
}

type repeatedHandler[T any] struct {
	Unimplemented[[]T]
	elem Codec[T]
}

func (h repeatedHandler[T]) OnNull() ([]T, error) { return nil, nil }

func (h repeatedHandler[T]) OnArray(d *Decoder) ([]T, error) {
	var out []T
	for d.More() {
		v, err := h.elem.Decode(d)
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
