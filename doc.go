// Package canonjson implements the canonical JSON mapping for schema-typed
// values. Generated bindings compose the building blocks here; the package
// itself knows nothing about concrete message types.
//
// Components:
//   - Codec[T]: decodes T from a JSON token stream and encodes its canonical form.
//   - scalar, enum, wellknown: leaf codec families in their own packages.
//   - Repeated, MapOf, Optional, Empty: generic collection adapters.
//   - IsDefault: the presence predicate callers use for default-elision.
//   - Registry / Field: the type-erased surface generated bindings register into.
//
// Decode is lenient where the mapping allows multiple spellings (integers as
// quoted strings, enum ordinals for enum names, float specials as quoted
// literals); encode always emits the single canonical spelling, so
// encode(decode(x)) is stable once x is canonical.
//
// Decoding pulls tokens one value at a time:
//
//	v, err := canonjson.Unmarshal(scalar.I64, []byte(`"42"`)) // int64(42)
//	b, err := canonjson.Marshal(scalar.I64, v)                // `"42"`
//
// Composite fields are built from strategy values at registration time:
//
//	tags := canonjson.MapOf(scalar.StringKey, canonjson.Repeated(scalar.I32))
package canonjson
