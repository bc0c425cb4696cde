// Package scalar provides codecs for the primitive wire types: booleans,
// fixed-width integers, floats, strings and byte strings.
//
// Every codec follows the same asymmetric contract. Decoding is permissive:
// numbers may arrive as JSON numbers or as quoted decimal text, floats accept
// the spelled-out specials ("NaN", "Infinity", "-Infinity"), and null always
// decodes to the type's zero value. Encoding is canonical: one output per
// value, with 64-bit integers quoted so they survive float64-based parsers.
//
// The *Opt variants wrap each codec in canonjson.Optional, turning null into
// a nil pointer instead of a zero value. The *Key values are the map-key
// views used with canonjson.MapOf; they parse keys with the same leniency as
// the value codecs and define the canonical key order.
package scalar
