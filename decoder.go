package canonjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultMaxDepth bounds how deeply arrays and objects may nest during
// decode. Recursive codecs (dynamic values, nested collections) inherit the
// bound from the decoder, so adversarial nesting fails with DepthError
// instead of exhausting the stack.
const DefaultMaxDepth = 1000

// Decoder is a pull reader over one JSON document. It wraps encoding/json's
// tokenizer with numbers kept as raw text, so 64-bit integers survive
// untouched, and dispatches one value at a time to a Handler.
//
// A Decoder is single-use and not safe for concurrent use.
type Decoder struct {
	dec      *json.Decoder
	peeked   *json.Token
	depth    int
	maxDepth int
}

// NewDecoder reads one JSON document from r.
func NewDecoder(r io.Reader) *Decoder {
	jd := json.NewDecoder(r)
	jd.UseNumber()
	return &Decoder{dec: jd, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth replaces DefaultMaxDepth for this decoder. Values below 1 are
// ignored.
func (d *Decoder) SetMaxDepth(n int) {
	if n >= 1 {
		d.maxDepth = n
	}
}

// next returns the next token, honoring a pending lookahead.
func (d *Decoder) next() (json.Token, error) {
	if d.peeked != nil {
		t := *d.peeked
		d.peeked = nil
		return t, nil
	}
	t, err := d.dec.Token()
	if err != nil {
		return nil, wrapTokenErr(err)
	}
	return t, nil
}

// nullAhead reports whether the next value is the JSON null literal and
// consumes it when it is. Any other token stays buffered for the next read.
func (d *Decoder) nullAhead() (bool, error) {
	if d.peeked == nil {
		t, err := d.dec.Token()
		if err != nil {
			return false, wrapTokenErr(err)
		}
		d.peeked = &t
	}
	if *d.peeked == nil {
		d.peeked = nil
		return true, nil
	}
	return false, nil
}

// More reports whether the array or object being read has another member.
func (d *Decoder) More() bool {
	if d.peeked != nil {
		return true
	}
	return d.dec.More()
}

// EndArray consumes the closing bracket of the array being read. Handlers
// call it once More reports false.
func (d *Decoder) EndArray() error {
	return d.closeDelim(']')
}

// NextKey returns the next member name of the object being read. ok is false
// once the object is exhausted, at which point the closing brace has been
// consumed.
func (d *Decoder) NextKey() (key string, ok bool, err error) {
	if d.More() {
		t, err := d.next()
		if err != nil {
			return "", false, err
		}
		s, isString := t.(string)
		if !isString {
			return "", false, &StructuralError{Type: "decode", Detail: "object member name is not a string"}
		}
		return s, true, nil
	}
	if err := d.closeDelim('}'); err != nil {
		return "", false, err
	}
	return "", false, nil
}

func (d *Decoder) closeDelim(want rune) error {
	t, err := d.next()
	if err != nil {
		return err
	}
	if delim, ok := t.(json.Delim); !ok || rune(delim) != want {
		return &StructuralError{Type: "decode", Detail: fmt.Sprintf("expected %q, found %v", want, t)}
	}
	d.depth--
	return nil
}

func (d *Decoder) push() error {
	d.depth++
	if d.depth > d.maxDepth {
		return &DepthError{Limit: d.maxDepth}
	}
	return nil
}

// Dispatch reads exactly one JSON value from d and routes it to h.
func Dispatch[T any](d *Decoder, h Handler[T]) (T, error) {
	var zero T
	t, err := d.next()
	if err != nil {
		return zero, err
	}
	switch v := t.(type) {
	case nil:
		return h.OnNull()
	case bool:
		return h.OnBool(v)
	case string:
		return h.OnString(v)
	case json.Number:
		return dispatchNumber(h, v)
	case json.Delim:
		switch v {
		case '[':
			if err := d.push(); err != nil {
				return zero, err
			}
			return h.OnArray(d)
		case '{':
			if err := d.push(); err != nil {
				return zero, err
			}
			return h.OnObject(d)
		}
	}
	return zero, &StructuralError{Type: "decode", Detail: fmt.Sprintf("unexpected token %v", t)}
}

// dispatchNumber classifies a numeric literal: fraction or exponent means
// float; otherwise sign picks the integer form, and literals beyond 64 bits
// fall back to float. "-0" stays a float so its sign survives.
func dispatchNumber[T any](h Handler[T], n json.Number) (T, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return dispatchFloat(h, s)
	}
	if s == "-0" {
		return h.OnFloat(math.Copysign(0, -1))
	}
	if strings.HasPrefix(s, "-") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return h.OnInt(i)
		}
	} else {
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return h.OnUint(u)
		}
	}
	return dispatchFloat(h, s)
}

func dispatchFloat[T any](h Handler[T], s string) (T, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var zero T
		return zero, &RangeError{Target: "number", Value: s, Reason: "does not fit in a float64"}
	}
	return h.OnFloat(f)
}

func wrapTokenErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("canonjson: unexpected end of input")
	}
	return fmt.Errorf("canonjson: malformed input: %w", err)
}

// Unmarshal decodes data as exactly one JSON value using c. Trailing
// non-whitespace input after the value is a StructuralError.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	var zero T
	d := NewDecoder(bytes.NewReader(data))
	v, err := c.Decode(d)
	if err != nil {
		return zero, err
	}
	if _, err := d.dec.Token(); err != io.EOF {
		return zero, &StructuralError{Type: "decode", Detail: "trailing data after value"}
	}
	return v, nil
}
