package orc

import (
	"bytes"
	"testing"
)

func testSchema() *TypeDescription {
	return Struct().
		AddField("name", NewTypeDescription(CategoryString)).
		AddField("age", NewTypeDescription(CategoryInt)).
		AddField("active", NewTypeDescription(CategoryBoolean))
}

func TestWriterRoundTripsRowCountAndStatistics(t *testing.T) {
	sink := NewMemorySink()
	w, err := NewWriter(sink, SetSchema(testSchema()))
	if err != nil {
		t.Fatal(err)
	}

	names := []string{"alice", "bob", "carol", "alice", "bob"}
	var page [][]interface{}
	for i, name := range names {
		page = append(page, []interface{}{name, int64(20 + i), i%2 == 0})
	}
	if err := w.Write(page); err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if w.FileRowCount() != uint64(len(names)) {
		t.Errorf("expected %d rows, got %d", len(names), w.FileRowCount())
	}

	out := sink.Bytes()
	if len(out) < len(postScriptMagic)+1 {
		t.Fatalf("output too short: %d bytes", len(out))
	}
	if !bytes.Equal(out[:len(postScriptMagic)], []byte(postScriptMagic)) {
		t.Errorf("expected file to start with %q magic, got %q", postScriptMagic, out[:len(postScriptMagic)])
	}
	psLen := int(out[len(out)-1])
	if psLen <= 0 || psLen > len(out)-1 {
		t.Errorf("postscript length trailer %d is out of range for a %d-byte file", psLen, len(out))
	}

	stats := w.FileStatistics()
	nodes := Flatten(testSchema())
	if len(stats) != len(nodes) {
		t.Fatalf("expected %d per-column statistics entries, got %d", len(nodes), len(stats))
	}
	nameStats := stats[1].GetStringStatistics()
	if nameStats == nil {
		t.Fatal("expected string statistics on the name column")
	}
	if got := nameStats.GetMinimum(); got != "alice" {
		t.Errorf("expected minimum %q, got %q", "alice", got)
	}
	if got := nameStats.GetMaximum(); got != "carol" {
		t.Errorf("expected maximum %q, got %q", "carol", got)
	}
}

func TestWriterRejectsWrongShapedRow(t *testing.T) {
	sink := NewMemorySink()
	w, err := NewWriter(sink, SetSchema(testSchema()))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write([][]interface{}{{"alice", int64(20)}}); err != ErrRowShape {
		t.Errorf("expected ErrRowShape, got %v", err)
	}
}

func TestWriterFlushesMultipleStripesOnMaxRows(t *testing.T) {
	sink := NewMemorySink()
	policy := FlushPolicy{StripeMinBytes: 1, StripeMaxBytes: 4096, StripeMaxRowCount: 50}
	w, err := NewWriter(sink, SetSchema(testSchema()), SetFlushPolicy(policy))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		row := []interface{}{"a-fairly-long-repeated-string-value", int64(i), true}
		if err := w.Write([][]interface{}{row}); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if w.FileRowCount() != 200 {
		t.Errorf("expected 200 rows, got %d", w.FileRowCount())
	}
}

func TestWriterAfterCloseRejectsWrites(t *testing.T) {
	sink := NewMemorySink()
	w, err := NewWriter(sink, SetSchema(testSchema()))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Write([][]interface{}{{"x", int64(1), true}}); err != ErrClosed {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
