package canonjson

import "reflect"

// IsDefault reports whether v structurally equals the zero-initialized value
// of its type: zero scalars, empty strings, nil or empty slices and maps,
// nil pointers, and structs whose fields are all default. Callers consult it
// to decide default-elision; codecs never elide on their own.
func IsDefault[T any](v T) bool {
	return isZero(reflect.ValueOf(&v).Elem())
}

func isZero(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !isZero(rv.Field(i)) {
				return false
			}
		}
		return true
	default:
		return rv.IsZero()
	}
}
