package canonjson

import (
	"fmt"
	"sync"
)

// Field is the type-erased capability pair generated bindings hold for one
// message field: how to decode it, how to encode it, and whether a value is
// the field's default. Build one with FieldOf.
type Field struct {
	decode    func(*Decoder) (any, error)
	encode    func(*Encoder, any) error
	isDefault func(any) bool
}

// FieldOf erases c into a Field.
func FieldOf[T any](c Codec[T]) Field {
	return Field{
		decode: func(d *Decoder) (any, error) {
			return c.Decode(d)
		},
		encode: func(e *Encoder, v any) error {
			t, ok := v.(T)
			if !ok {
				return &TypeMismatchError{
					Expected: fmt.Sprintf("%T", t),
					Got:      fmt.Sprintf("Go value of type %T", v),
				}
			}
			return c.Encode(e, t)
		},
		isDefault: func(v any) bool {
			t, ok := v.(T)
			return ok && IsDefault(t)
		},
	}
}

// Decode reads one JSON value through the erased codec.
func (f Field) Decode(d *Decoder) (any, error) {
	if f.decode == nil {
		return nil, &StructuralError{Type: "registry", Detail: "field has no codec"}
	}
	return f.decode(d)
}

// Encode writes v through the erased codec. A value of the wrong dynamic
// type is a TypeMismatchError.
func (f Field) Encode(e *Encoder, v any) error {
	if f.encode == nil {
		return &StructuralError{Type: "registry", Detail: "field has no codec"}
	}
	return f.encode(e, v)
}

// IsDefault reports whether v is the field's default value. Values of the
// wrong dynamic type are never default.
func (f Field) IsDefault(v any) bool {
	return f.isDefault != nil && f.isDefault(v)
}

// Options tune a Registry. A nil Logger disables logging.
type Options struct {
	Logger Logger
}

// Registry maps fully-qualified field names ("pkg.Message.field") to their
// erased codecs. Generated bindings register at init time; lookups are safe
// for concurrent use with registration.
type Registry struct {
	mu     sync.RWMutex
	fields map[string]Field
	log    Logger
}

func NewRegistry(opts Options) *Registry {
	return &Registry{
		fields: make(map[string]Field),
		log:    coalesce[Logger](opts.Logger, NopLogger{}),
	}
}

// Register binds name to f. Re-registering a name replaces the previous
// binding and logs a warning.
func (r *Registry) Register(name string, f Field) {
	r.mu.Lock()
	_, replaced := r.fields[name]
	r.fields[name] = f
	r.mu.Unlock()

	if replaced {
		r.log.Warn("field codec replaced", Fields{"field": name})
		return
	}
	r.log.Debug("field codec registered", Fields{"field": name})
}

// Lookup returns the Field bound to name.
func (r *Registry) Lookup(name string) (Field, bool) {
	r.mu.RLock()
	f, ok := r.fields[name]
	r.mu.RUnlock()
	return f, ok
}

// Names returns the registered field names, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.fields))
	for name := range r.fields {
		out = append(out, name)
	}
	r.mu.RUnlock()
	return out
}
