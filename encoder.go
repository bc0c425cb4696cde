package canonjson

import (
	"math"
	"strconv"

	"github.com/unkn0wn-root/canonjson/internal/jsonfmt"
)

// Encoder builds one JSON document in memory. Codecs append scalars and
// structure through it; Bytes returns the finished document. The zero value
// is ready to use.
//
// The encoder tracks structure so misuse surfaces as StructuralError rather
// than malformed output: values inside objects need a preceding Key, every
// Begin needs its End, and only one top-level value may be written.
type Encoder struct {
	buf   []byte
	stack []encFrame
	done  bool
}

type encFrame struct {
	object bool
	n      int  // members written
	keyed  bool // object only: key written, value pending
}

func (e *Encoder) beforeValue() error {
	if len(e.stack) == 0 {
		if e.done {
			return &StructuralError{Type: "encode", Detail: "more than one top-level value"}
		}
		e.done = true
		return nil
	}
	f := &e.stack[len(e.stack)-1]
	if f.object {
		if !f.keyed {
			return &StructuralError{Type: "encode", Detail: "value requires a preceding key"}
		}
		f.keyed = false
		return nil
	}
	if f.n > 0 {
		e.buf = append(e.buf, ',')
	}
	f.n++
	return nil
}

// Key writes the member name for the next value of the object being built.
func (e *Encoder) Key(name string) error {
	if len(e.stack) == 0 || !e.stack[len(e.stack)-1].object {
		return &StructuralError{Type: "encode", Detail: "key outside an object"}
	}
	f := &e.stack[len(e.stack)-1]
	if f.keyed {
		return &StructuralError{Type: "encode", Detail: "two keys in a row"}
	}
	if f.n > 0 {
		e.buf = append(e.buf, ',')
	}
	f.n++
	e.buf = jsonfmt.AppendQuote(e.buf, name)
	e.buf = append(e.buf, ':')
	f.keyed = true
	return nil
}

func (e *Encoder) Null() error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = append(e.buf, "null"...)
	return nil
}

func (e *Encoder) Bool(v bool) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = strconv.AppendBool(e.buf, v)
	return nil
}

func (e *Encoder) Int(v int64) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = strconv.AppendInt(e.buf, v, 10)
	return nil
}

func (e *Encoder) Uint(v uint64) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = strconv.AppendUint(e.buf, v, 10)
	return nil
}

// Float64 writes v as a JSON number. Non-finite values have no number form
// and fail with UnionError; codecs with a string spelling for the specials
// handle them before reaching the encoder.
func (e *Encoder) Float64(v float64) error {
	return e.float(v, 64)
}

// Float32 is Float64 at 32-bit shortest precision.
func (e *Encoder) Float32(v float32) error {
	return e.float(float64(v), 32)
}

func (e *Encoder) float(v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &UnionError{Reason: "non-finite number has no JSON number form"}
	}
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = jsonfmt.AppendFloat(e.buf, v, bits)
	return nil
}

func (e *Encoder) String(v string) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = jsonfmt.AppendQuote(e.buf, v)
	return nil
}

func (e *Encoder) BeginArray() error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = append(e.buf, '[')
	e.stack = append(e.stack, encFrame{})
	return nil
}

func (e *Encoder) EndArray() error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].object {
		return &StructuralError{Type: "encode", Detail: "no open array"}
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.buf = append(e.buf, ']')
	return nil
}

func (e *Encoder) BeginObject() error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.buf = append(e.buf, '{')
	e.stack = append(e.stack, encFrame{object: true})
	return nil
}

func (e *Encoder) EndObject() error {
	if len(e.stack) == 0 || !e.stack[len(e.stack)-1].object {
		return &StructuralError{Type: "encode", Detail: "no open object"}
	}
	if e.stack[len(e.stack)-1].keyed {
		return &StructuralError{Type: "encode", Detail: "key without a value"}
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.buf = append(e.buf, '}')
	return nil
}

// Bytes returns the finished document.
func (e *Encoder) Bytes() ([]byte, error) {
	if len(e.stack) != 0 {
		return nil, &StructuralError{Type: "encode", Detail: "unclosed array or object"}
	}
	if !e.done {
		return nil, &StructuralError{Type: "encode", Detail: "no value written"}
	}
	return e.buf, nil
}

// Marshal encodes v to its canonical JSON form using c.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	var e Encoder
	if err := c.Encode(&e, v); err != nil {
		return nil, err
	}
	return e.Bytes()
}
