package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// ColumnWriter is the contract every leaf and container column writer
// implements, mirroring the original writer's TreeWriter interface:
// write one value (or nil) at a time, flush a row-group boundary into the
// row index, and flush a stripe boundary into the stripe's streams.
type ColumnWriter interface {
	// WriteValue appends one value to the column. value is nil for a SQL
	// null; containers (struct/list/map) receive their children's values
	// nested inside value per the category's Go representation.
	WriteValue(value interface{}) error

	// FinishRowGroup closes out the current row-group: it must be called
	// after every rowIndexStride rows so row-index entries line up with
	// row-group boundaries. It returns the row-group's statistics (and
	// stream position markers) as a RowIndexEntry, and resets the
	// column's row-group accumulator for the next one.
	FinishRowGroup() (*orcproto.RowIndexEntry, error)

	// FlushStripe finalizes the column's streams for the current stripe,
	// returning the stream descriptors/bytes to be laid out and written,
	// plus the column's ColumnEncoding for the stripe footer. It resets
	// the column writer's per-stripe state (but not its dictionary, for
	// dictionary-capable columns that carry state across stripes).
	FlushStripe() ([]StreamDataOutput, *orcproto.ColumnEncoding, error)

	// Statistics returns the column's accumulated statistics for the rows
	// written since the last FlushStripe call.
	Statistics() ColumnStatistics

	// Close releases any resources (and must leave the column usable for
	// one final FlushStripe of whatever was buffered).
	Close() error

	// RetainedBytes estimates the writer's in-memory footprint,
	// contributing to Writer.RetainedBytes().
	RetainedBytes() int64

	// Column returns the flattened node id this writer is responsible for.
	Column() int

	// Children returns the writer's direct child writers in schema order,
	// or nil for a leaf writer.
	Children() []ColumnWriter
}

// streamBuffer pairs an OutStream with the BufferedWriter it compresses
// into, so a column writer can drain exactly the bytes written since the
// last stripe without re-allocating the OutStream itself; codecs and chunk
// sizing stay fixed for the column writer's lifetime, matching how the
// original writer allocates one OutStream per (column, stream kind) for
// the life of the TreeWriter.
type streamBuffer struct {
	kind   orcproto.Stream_Kind
	buf    *BufferedWriter
	stream *OutStream
}

func newStreamBuffer(column int, kind orcproto.Stream_Kind, codec CompressionCodec, chunkSize int) *streamBuffer {
	buf := NewBufferedWriter()
	return &streamBuffer{
		kind:   kind,
		buf:    buf,
		stream: NewOutStream(kind.String(), chunkSize, codec, buf),
	}
}

func (s *streamBuffer) drain(column int) (*StreamDataOutput, error) {
	if err := s.stream.Flush(); err != nil {
		return nil, err
	}
	if s.buf.Len() == 0 {
		return nil, nil
	}
	data := append([]byte(nil), s.buf.Bytes()...)
	s.buf.Reset()
	return &StreamDataOutput{
		Stream: StreamDescriptor{Column: column, Kind: s.kind, Length: int64(len(data))},
		Data:   data,
	}, nil
}

func (s *streamBuffer) retainedBytes() int64 {
	return int64(s.buf.Cap())
}

// positionMarkers reports this stream's current (compressed, buffered)
// byte counters, used as a row-group's seek position within the stream
// the way the original writer's PositionRecorder snapshots OutStream
// offsets at a row-group boundary.
func (s *streamBuffer) positionMarkers() []uint64 {
	return []uint64{uint64(s.stream.CompressedSize()), uint64(s.stream.BufferedBytes())}
}

// columnWriterBase tracks the null/present bitmap and statistics shared by
// every leaf writer, adapted from the present-stream handling every
// concrete TreeWriter performs before delegating to its type-specific data
// stream.
type columnWriterBase struct {
	id            int
	nullable      bool
	codec         CompressionCodec
	chunkSize     int
	presentBuf    *streamBuffer
	present       *BooleanWriter
	stats         ColumnStatistics
	stripeStats   ColumnStatistics
	rowGroupStats ColumnStatistics
	category      Category
	hasNulls      bool
	rowCount      int64
}

func newColumnWriterBase(id int, category Category, nullable bool, codec CompressionCodec, chunkSize int) columnWriterBase {
	presentBuf := newStreamBuffer(id, orcproto.Stream_PRESENT, codec, chunkSize)
	return columnWriterBase{
		id:            id,
		nullable:      nullable,
		codec:         codec,
		chunkSize:     chunkSize,
		presentBuf:    presentBuf,
		present:       NewBooleanWriter(presentBuf.stream),
		stats:         NewColumnStatistics(category),
		stripeStats:   NewColumnStatistics(category),
		rowGroupStats: NewColumnStatistics(category),
		category:      category,
	}
}

func (b *columnWriterBase) Column() int { return b.id }

func (b *columnWriterBase) newStream(kind orcproto.Stream_Kind) *streamBuffer {
	return newStreamBuffer(b.id, kind, b.codec, b.chunkSize)
}

func (b *columnWriterBase) writePresent(isNull bool) error {
	b.rowCount++
	if isNull {
		b.hasNulls = true
		b.stats.AddNull()
		b.stripeStats.AddNull()
		b.rowGroupStats.AddNull()
	}
	if b.nullable {
		return b.present.WriteBool(!isNull)
	}
	return nil
}

func (b *columnWriterBase) addStat(value interface{}) {
	b.stats.Add(value)
	b.stripeStats.Add(value)
	b.rowGroupStats.Add(value)
}

func (b *columnWriterBase) Statistics() ColumnStatistics { return b.stripeStats }

// finishRowGroupEntry snapshots the row-group statistics accumulated since
// the last call, pairs them with positions (one column's current stream
// offsets), and resets the accumulator for the next row-group.
func (b *columnWriterBase) finishRowGroupEntry(positions []uint64) *orcproto.RowIndexEntry {
	entry := &orcproto.RowIndexEntry{
		Positions:  positions,
		Statistics: b.rowGroupStats.Statistics(),
	}
	b.rowGroupStats.Reset()
	return entry
}

func (b *columnWriterBase) flushPresent(out *[]StreamDataOutput) error {
	if !b.nullable || !b.hasNulls {
		b.presentBuf.buf.Reset()
		return nil
	}
	if err := b.present.Flush(); err != nil {
		return err
	}
	s, err := b.presentBuf.drain(b.id)
	if err != nil {
		return err
	}
	if s != nil {
		*out = append(*out, *s)
	}
	return nil
}

func (b *columnWriterBase) resetStripe() {
	b.stripeStats.Reset()
	b.hasNulls = false
}

func (b *columnWriterBase) retainedBytes() int64 {
	return b.presentBuf.retainedBytes()
}
