package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// RowSource is the minimal contract a caller-supplied self-check reader
// implements for Writer.Validate to diff against the in-memory mirror,
// standing in for a full ORC reader per spec §1/§9.
type RowSource interface {
	Next() ([]interface{}, bool, error)
}

// ValidationBuilder records what the writer believes it wrote, so
// Writer.Validate can diff it against a RowSource's replay of the same
// file, per spec §9's optional validation mirror design note.
type ValidationBuilder interface {
	AddRow(row []interface{})
	AddStripeStatistics(stripe int, stats []*orcproto.ColumnStatistics)
	RetainedBytes() int64
}

// mirrorValidationBuilder is the one concrete ValidationBuilder this
// module ships: it keeps every row and every stripe's statistics in
// memory, suitable for tests and small files, not for production-scale
// validation runs.
type mirrorValidationBuilder struct {
	rows       [][]interface{}
	stripeStats map[int][]*orcproto.ColumnStatistics
	compression orcproto.CompressionKind
	version     string
}

func NewMirrorValidationBuilder(compression orcproto.CompressionKind, version string) *mirrorValidationBuilder {
	return &mirrorValidationBuilder{
		stripeStats: make(map[int][]*orcproto.ColumnStatistics),
		compression: compression,
		version:     version,
	}
}

func (m *mirrorValidationBuilder) AddRow(row []interface{}) {
	m.rows = append(m.rows, row)
}

func (m *mirrorValidationBuilder) AddStripeStatistics(stripe int, stats []*orcproto.ColumnStatistics) {
	m.stripeStats[stripe] = stats
}

func (m *mirrorValidationBuilder) RetainedBytes() int64 {
	var total int64
	for _, row := range m.rows {
		total += int64(len(row)) * 16
	}
	return total
}

// Validate replays source against the rows recorded in m, returning the
// first *CorruptionError encountered, or nil if every row matched.
func (m *mirrorValidationBuilder) Validate(source RowSource) error {
	for i, want := range m.rows {
		got, ok, err := source.Next()
		if err != nil {
			return err
		}
		if !ok {
			return &CorruptionError{RowIndex: int64(i), Reason: "validation source ended early"}
		}
		if len(got) != len(want) {
			return &CorruptionError{RowIndex: int64(i), Reason: "row arity mismatch"}
		}
		for col := range want {
			if !valuesEqual(want[col], got[col]) {
				return &CorruptionError{RowIndex: int64(i), Column: col, Reason: "value mismatch"}
			}
		}
	}
	if _, ok, err := source.Next(); err == nil && ok {
		return &CorruptionError{RowIndex: int64(len(m.rows)), Reason: "validation source has extra rows"}
	}
	return nil
}

func valuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
