package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// booleanColumnWriter is the leaf writer for boolean columns, adapted from
// boolean.go/booleanwriter.go: one bit per value packed via the shared
// BooleanWriter run-length encoding.
type booleanColumnWriter struct {
	columnWriterBase
	data *streamBuffer
	enc  *BooleanWriter
}

func NewBooleanColumnWriter(id int, nullable bool, codec CompressionCodec, chunkSize int) *booleanColumnWriter {
	base := newColumnWriterBase(id, CategoryBoolean, nullable, codec, chunkSize)
	data := base.newStream(orcproto.Stream_DATA)
	return &booleanColumnWriter{
		columnWriterBase: base,
		data:             data,
		enc:              NewBooleanWriter(data.stream),
	}
}

func (w *booleanColumnWriter) WriteValue(value interface{}) error {
	if err := w.writePresent(value == nil); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	v, ok := value.(bool)
	if !ok {
		return ErrRowShape
	}
	w.addStat(v)
	return w.enc.WriteBool(v)
}

func (w *booleanColumnWriter) Children() []ColumnWriter { return nil }

func (w *booleanColumnWriter) FinishRowGroup() (*orcproto.RowIndexEntry, error) {
	positions := append(w.presentBuf.positionMarkers(), w.data.positionMarkers()...)
	return w.finishRowGroupEntry(positions), nil
}

func (w *booleanColumnWriter) FlushStripe() ([]StreamDataOutput, *orcproto.ColumnEncoding, error) {
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
	kind := orcproto.ColumnEncoding_DIRECT
	return out, &orcproto.ColumnEncoding{Kind: &kind}, nil
}

func (w *booleanColumnWriter) Close() error { return nil }

func (w *booleanColumnWriter) RetainedBytes() int64 {
	return w.retainedBytes() + w.data.retainedBytes()
}
