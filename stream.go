package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// StreamDescriptor identifies one data or index stream belonging to a
// column, grounded on the (columnId, kind) pairing the teacher's
// streamName.go used to key its stream maps.
type StreamDescriptor struct {
	Column int
	Kind   orcproto.Stream_Kind
	Length int64
	// Offset is filled in during stripe assembly once stream order is
	// fixed; nil until then.
	Offset *int64
}

func (s StreamDescriptor) ToProto() *orcproto.Stream {
	col := int32(s.Column)
	kind := s.Kind
	length := uint64(s.Length)
	out := &orcproto.Stream{Column: &col, Kind: &kind, Length: &length}
	if s.Offset != nil {
		off := uint64(*s.Offset)
		out.Offset = &off
	}
	return out
}

// StreamDataOutput pairs a stream's descriptor with its already-compressed
// bytes, the unit bufferStripeData collects and reorders before writing.
type StreamDataOutput struct {
	Stream StreamDescriptor
	Data   []byte
}

func (s StreamDataOutput) Size() int64 { return int64(len(s.Data)) }

// isIndexStream reports whether kind belongs to the index region of a
// stripe rather than the data region.
func isIndexStream(kind orcproto.Stream_Kind) bool {
	return kind == orcproto.Stream_ROW_INDEX || kind == orcproto.Stream_BLOOM_FILTER
}

// streamKindOrder fixes the within-column ordering streamLayout uses to
// sort data streams: PRESENT, then DATA, then secondary/length streams,
// then dictionary streams last (dictionary bytes are wanted adjacent to the
// dictionary-count stream that sizes them).
var streamKindOrder = map[orcproto.Stream_Kind]int{
	orcproto.Stream_PRESENT:          0,
	orcproto.Stream_DATA:             1,
	orcproto.Stream_SECONDARY:        2,
	orcproto.Stream_LENGTH:           3,
	orcproto.Stream_DICTIONARY_DATA:  4,
	orcproto.Stream_DICTIONARY_COUNT: 5,
}
