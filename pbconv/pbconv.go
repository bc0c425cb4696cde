// Package pbconv converts between this module's well-known value types and
// the protobuf-go generated ones (timestamppb, durationpb, structpb), so
// code embedded in a protobuf codebase can cross the boundary without
// re-encoding through JSON.
//
// Timestamp and Duration conversions are field-for-field and lossless in
// both directions; invariants are neither checked nor repaired here, they
// travel as-is. Value conversions walk the tree; the zero Value has no
// protobuf form and is rejected.
package pbconv

import (
	"github.com/unkn0wn-root/canonjson"
	"github.com/unkn0wn-root/canonjson/wellknown"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TimestampProto converts to a timestamppb.Timestamp.
func TimestampProto(t wellknown.Timestamp) *timestamppb.Timestamp {
	return &timestamppb.Timestamp{Seconds: t.Seconds, Nanos: t.Nanos}
}

// TimestampFromProto converts from a timestamppb.Timestamp. Nil converts to
// the zero Timestamp.
func TimestampFromProto(pb *timestamppb.Timestamp) wellknown.Timestamp {
	if pb == nil {
		return wellknown.Timestamp{}
	}
	return wellknown.Timestamp{Seconds: pb.Seconds, Nanos: pb.Nanos}
}

// DurationProto converts to a durationpb.Duration.
func DurationProto(d wellknown.Duration) *durationpb.Duration {
	return &durationpb.Duration{Seconds: d.Seconds, Nanos: d.Nanos}
}

// DurationFromProto converts from a durationpb.Duration. Nil converts to
// the zero Duration.
func DurationFromProto(pb *durationpb.Duration) wellknown.Duration {
	if pb == nil {
		return wellknown.Duration{}
	}
	return wellknown.Duration{Seconds: pb.Seconds, Nanos: pb.Nanos}
}

// ValueProto converts a Value tree to a structpb.Value. The zero Value is an
// error: protobuf's Value union has no unset wire form either.
func ValueProto(v wellknown.Value) (*structpb.Value, error) {
	switch v.Kind() {
	case wellknown.KindNull:
		return structpb.NewNullValue(), nil
	case wellknown.KindNumber:
		n, _ := v.NumberValue()
		return structpb.NewNumberValue(n), nil
	case wellknown.KindString:
		s, _ := v.StringValue()
		return structpb.NewStringValue(s), nil
	case wellknown.KindBool:
		b, _ := v.BoolValue()
		return structpb.NewBoolValue(b), nil
	case wellknown.KindStruct:
		s, _ := v.StructValue()
		ps, err := StructProto(s)
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(ps), nil
	case wellknown.KindList:
		l, _ := v.ListValue()
		pl, err := ListProto(l)
		if err != nil {
			return nil, err
		}
		return structpb.NewListValue(pl), nil
	}
	return nil, &canonjson.UnionError{Reason: "variant must be set"}
}

// ValueFromProto converts a structpb.Value tree. Nil and kind-less values
// convert to the null variant, matching protobuf's treatment of an absent
// Value field.
func ValueFromProto(pb *structpb.Value) wellknown.Value {
	if pb == nil {
		return wellknown.NewNullValue()
	}
	switch k := pb.Kind.(type) {
	case *structpb.Value_NumberValue:
		return wellknown.NewNumberValue(k.NumberValue)
	case *structpb.Value_StringValue:
		return wellknown.NewStringValue(k.StringValue)
	case *structpb.Value_BoolValue:
		return wellknown.NewBoolValue(k.BoolValue)
	case *structpb.Value_StructValue:
		return wellknown.NewStructValue(StructFromProto(k.StructValue))
	case *structpb.Value_ListValue:
		return wellknown.NewListValue(ListFromProto(k.ListValue))
	}
	return wellknown.NewNullValue()
}

// StructProto converts a Struct to a structpb.Struct.
func StructProto(s wellknown.Struct) (*structpb.Struct, error) {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(s))}
	for k, v := range s {
		pv, err := ValueProto(v)
		if err != nil {
			return nil, err
		}
		out.Fields[k] = pv
	}
	return out, nil
}

// StructFromProto converts a structpb.Struct. Nil converts to a nil Struct.
func StructFromProto(pb *structpb.Struct) wellknown.Struct {
	if pb == nil {
		return nil
	}
	out := make(wellknown.Struct, len(pb.Fields))
	for k, v := range pb.Fields {
		out[k] = ValueFromProto(v)
	}
	return out
}

// ListProto converts a List to a structpb.ListValue.
func ListProto(l wellknown.List) (*structpb.ListValue, error) {
	out := &structpb.ListValue{Values: make([]*structpb.Value, len(l))}
	for i, v := range l {
		pv, err := ValueProto(v)
		if err != nil {
			return nil, err
		}
		out.Values[i] = pv
	}
	return out, nil
}

// ListFromProto converts a structpb.ListValue. Nil converts to a nil List.
func ListFromProto(pb *structpb.ListValue) wellknown.List {
	if pb == nil {
		return nil
	}
	out := make(wellknown.List, len(pb.Values))
	for i, v := range pb.Values {
		out[i] = ValueFromProto(v)
	}
	return out
}
