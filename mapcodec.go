package canonjson

import "sort"

// MapOf adapts a key codec and a value codec to JSON objects. Member names
// route through the key codec's string view; every map shape the schema
// language allows is an instantiation of this adapter with different
// strategy values.
//
// Null decodes to the empty map and duplicate member names keep the last
// value. Encode orders entries with KeyCodec.Less, so output is stable
// across runs.
func MapOf[K comparable, V any](key KeyCodec[K], val Codec[V]) Codec[map[K]V] {
	return mapCodec[K, V]{key: key, val: val}
}

type mapCodec[K comparable, V any] struct {
	key KeyCodec[K]
	val Codec[V]
}

func (m mapCodec[K, V]) Decode(d *Decoder) (map[K]V, error) {
	return Dispatch[map[K]V](d, mapHandler[K, V]{
		Unimplemented: Unimplemented[map[K]V]{Want: "an object"},
		key:           m.key,
		val:           m.val,
	})
}

func (m mapCodec[K, V]) Encode(e *Encoder, vs map[K]V) error {
	if err := e.BeginObject(); err != nil {
		return err
	}
	keys := make([]K, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return m.key.Less(keys[i], keys[j]) })
	for _, k := range keys {
		if err := e.Key(m.key.EncodeKey(k)); err != nil {
			return err
		}
		if err := m.val.Encode(e, vs[k]); err != nil {
			return err
		}
	}
	return e.EndObject()
}

type mapHandler[K comparable, V any] struct {
	Unimplemented[map[K]V]
	key KeyCodec[K]
	val Codec[V]
}

func (h mapHandler[K, V]) OnNull() (map[K]V, error) { return nil, nil }

func (h mapHandler[K, V]) OnObject(d *Decoder) (map[K]V, error) {
	out := make(map[K]V)
	for {
		name, ok, err := d.NextKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		k, err := h.key.DecodeKey(name)
		if err != nil {
			return nil, err
		}
		v, err := h.val.Decode(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
}
