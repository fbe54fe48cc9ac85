package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// intColumnWriter is the DIRECT_V2 leaf writer for short/int/long columns,
// adapted from integer.go's IntStreamWriterV2 plus the present-stream
// handling every TreeWriter performs before its data stream.
type intColumnWriter struct {
	columnWriterBase
	data *streamBuffer
	enc  IntegerWriter
}

// NewIntColumnWriter returns a column writer for id backed by codec, using
// chunkSize-sized OutStream buffers.
func NewIntColumnWriter(id int, category Category, nullable bool, codec CompressionCodec, chunkSize int) *intColumnWriter {
	base := newColumnWriterBase(id, category, nullable, codec, chunkSize)
	data := base.newStream(orcproto.Stream_DATA)
	return &intColumnWriter{
		columnWriterBase: base,
		data:             data,
		enc:              NewIntStreamWriterV2(data.stream, true),
	}
}

func (w *intColumnWriter) WriteValue(value interface{}) error {
	if err := w.writePresent(value == nil); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	v, err := toInt64(value)
	if err != nil {
		return err
	}
	w.addStat(v)
	return w.enc.WriteInt(v)
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	default:
		return 0, ErrRowShape
	}
}

func (w *intColumnWriter) Children() []ColumnWriter { return nil }

func (w *intColumnWriter) FinishRowGroup() (*orcproto.RowIndexEntry, error) {
	positions := append(w.presentBuf.positionMarkers(), w.data.positionMarkers()...)
	return w.finishRowGroupEntry(positions), nil
}

func (w *intColumnWriter) FlushStripe() ([]StreamDataOutput, *orcproto.ColumnEncoding, error) {
	var out []StreamDataOutput
	if err := w.flushPresent(&out); err != nil {
		return nil, nil, err
	}
	if err := w.enc.Flush(); err != nil {
		return nil, nil, err
	}
	s, err := w.data.drain(w.id)
	if err != nil {
		return nil, nil, err
	}
	if s != nil {
		out = append(out, *s)
	}
	w.resetStripe()
	kind := orcproto.ColumnEncoding_DIRECT_V2
	return out, &orcproto.ColumnEncoding{Kind: &kind}, nil
}

func (w *intColumnWriter) Close() error { return nil }

func (w *intColumnWriter) RetainedBytes() int64 {
	return w.retainedBytes() + w.data.retainedBytes()
}
