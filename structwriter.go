package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// structColumnWriter writes the synthetic root struct column (node 0) and
// any nested struct columns, adapted from treewriterfactory.go's
// CategoryStruct case: it has no data stream of its own beyond PRESENT,
// and dispatches each field's value to the matching child writer.
type structColumnWriter struct {
	columnWriterBase
	children []ColumnWriter
}

func NewStructColumnWriter(id int, nullable bool, codec CompressionCodec, chunkSize int, children []ColumnWriter) *structColumnWriter {
	base := newColumnWriterBase(id, CategoryStruct, nullable, codec, chunkSize)
	return &structColumnWriter{columnWriterBase: base, children: children}
}

func (w *structColumnWriter) Children() []ColumnWriter { return w.children }

func (w *structColumnWriter) WriteValue(value interface{}) error {
	isNull := value == nil
	if err := w.writePresent(isNull); err != nil {
		return err
	}
	w.stats.Add(value)
	w.stripeStats.Add(value)
	w.rowGroupStats.Add(value)
	var fields []interface{}
	if !isNull {
		row, ok := value.([]interface{})
		if !ok || len(row) != len(w.children) {
			return ErrRowShape
		}
		fields = row
	}
	for i, child := range w.children {
		var fieldValue interface{}
		if !isNull {
			fieldValue = fields[i]
		}
		if err := child.WriteValue(fieldValue); err != nil {
			return err
		}
	}
	return nil
}

// FinishRowGroup snapshots only this node's own row-group statistics; the
// writer orchestrator walks the whole column tree node by node and calls
// FinishRowGroup on each, so struct nodes must not recurse here (mirroring
// FlushStripe below).
func (w *structColumnWriter) FinishRowGroup() (*orcproto.RowIndexEntry, error) {
	positions := w.presentBuf.positionMarkers()
	return w.finishRowGroupEntry(positions), nil
}

// FlushStripe flushes only this node's own PRESENT stream; the writer
// orchestrator walks the whole column tree node by node and calls
// FlushStripe on each, so struct nodes must not recurse here.
func (w *structColumnWriter) FlushStripe() ([]StreamDataOutput, *orcproto.ColumnEncoding, error) {
	var out []StreamDataOutput
	if err := w.flushPresent(&out); err != nil {
		return nil, nil, err
	}
	w.resetStripe()
	kind := orcproto.ColumnEncoding_DIRECT
	return out, &orcproto.ColumnEncoding{Kind: &kind}, nil
}

func (w *structColumnWriter) Close() error {
	for _, child := range w.children {
		if err := child.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (w *structColumnWriter) RetainedBytes() int64 {
	total := w.retainedBytes()
	for _, child := range w.children {
		total += child.RetainedBytes()
	}
	return total
}
