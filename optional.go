package canonjson

// Optional wraps inner so JSON null decodes to nil instead of the inner
// codec's null mapping, and a nil value encodes to null. It composes with
// every codec family; the per-scalar *Opt values are built from it.
func Optional[T any](inner Codec[T]) Codec[*T] {
	return optionalCodec[T]{inner: inner}
}

type optionalCodec[T any] struct {
	inner Codec[T]
}

func (o optionalCodec[T]) Decode(d *Decoder) (*T, error) {
	isNull, err := d.nullAhead()
	if err != nil {
		return nil, err
	}
	if isNull {
		return nil, nil
	}
	v, err := o.inner.Decode(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (o optionalCodec[T]) Encode(e *Encoder, v *T) error {
	if v == nil {
		return e.Null()
	}
	return o.inner.Encode(e, *v)
}
