package orc

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when an operation is attempted on a Writer that
	// has already been closed.
	ErrClosed = errors.New("orc: writer is closed")
	// ErrNoSchema is returned by NewWriter when no schema was supplied via
	// SetSchema.
	ErrNoSchema = errors.New("orc: no schema set")
	// ErrRowShape is returned when a row passed to Write does not match the
	// top-level struct schema's field count.
	ErrRowShape = errors.New("orc: row does not match schema shape")
	// ErrNotClosed reports use of a Writer that has not been closed. No
	// function in this package returns it; FileRowCount and FileStatistics
	// panic when called before Close.
	ErrNotClosed = errors.New("orc: writer has not been closed")
)

// CorruptionError reports a mismatch discovered by Writer.Validate between
// the buffered mirror and the rows read back from a RowSource.
type CorruptionError struct {
	StripeIndex int
	RowIndex    int64
	Column      int
	Reason      string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("orc: corruption detected in stripe %d row %d column %d: %s",
		e.StripeIndex, e.RowIndex, e.Column, e.Reason)
}
