// Package wellknown provides the codecs for the schema types with their own
// JSON mapping: Timestamp (RFC 3339 text), Duration (decimal seconds with an
// 's' suffix), and the dynamic Value/Struct/List family that mirrors native
// JSON structure.
//
// Timestamp and Duration are plain value types convertible to and from the
// time package; Value is a tagged union whose zero value has no variant set
// and refuses to encode. All codecs in this package are strategy values like
// their scalar counterparts: TimestampCodec, DurationCodec, ValueCodec,
// StructCodec, ListCodec.
package wellknown
