package scalar

import (
	"fmt"
	"strconv"

	"github.com/unkn0wn-root/canonjson"
)

// StringKey is the map-key view of String. Keys sort lexicographically by
// byte, which for canonical output doubles as UTF-8 code point order.
var StringKey canonjson.KeyCodec[string] = stringKey{}

// BoolKey is the map-key view of Bool. Only the exact spellings "true" and
// "false" are accepted; false sorts before true.
var BoolKey canonjson.KeyCodec[bool] = boolKey{}

// I32Key is the map-key view of I32. Decoding is as lenient as the value
// codec, so "3.0" is the key 3. Keys sort numerically.
var I32Key canonjson.KeyCodec[int32] = i32Key{}

// I64Key is the map-key view of I64.
var I64Key canonjson.KeyCodec[int64] = i64Key{}

// U32Key is the map-key view of U32.
var U32Key canonjson.KeyCodec[uint32] = u32Key{}

// U64Key is the map-key view of U64.
var U64Key canonjson.KeyCodec[uint64] = u64Key{}

type stringKey struct{}

func (stringKey) DecodeKey(s string) (string, error) { return s, nil }
func (stringKey) EncodeKey(k string) string          { return k }
func (stringKey) Less(a, b string) bool              { return a < b }

type boolKey struct{}

func (boolKey) DecodeKey(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &canonjson.TypeMismatchError{
		Got:      fmt.Sprintf("string %q", s),
		Expected: `"true" or "false"`,
	}
}

func (boolKey) EncodeKey(k bool) string { return strconv.FormatBool(k) }
func (boolKey) Less(a, b bool) bool     { return !a && b }

type i32Key struct{}

func (i32Key) DecodeKey(s string) (int32, error) { return int32FromString(s) }
func (i32Key) EncodeKey(k int32) string          { return strconv.FormatInt(int64(k), 10) }
func (i32Key) Less(a, b int32) bool              { return a < b }

type i64Key struct{}

func (i64Key) DecodeKey(s string) (int64, error) { return int64FromString(s) }
func (i64Key) EncodeKey(k int64) string          { return strconv.FormatInt(k, 10) }
func (i64Key) Less(a, b int64) bool              { return a < b }

type u32Key struct{}

func (u32Key) DecodeKey(s string) (uint32, error) { return uint32FromString(s) }
func (u32Key) EncodeKey(k uint32) string          { return strconv.FormatUint(uint64(k), 10) }
func (u32Key) Less(a, b uint32) bool              { return a < b }

type u64Key struct{}

func (u64Key) DecodeKey(s string) (uint64, error) { return uint64FromString(s) }
func (u64Key) EncodeKey(k uint64) string          { return strconv.FormatUint(k, 10) }
func (u64Key) Less(a, b uint64) bool              { return a < b }
