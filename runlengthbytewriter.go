package orc

import (
	"io"
)

// MaxLiteralSize is the maximum number of values held in a literal run
// before it must be flushed.
const MaxLiteralSize = 128

// MaxRunLength is the maximum number of values held in a repeat run before
// it must be flushed: MinRepeatSize plus the largest value a 7-bit control
// byte can express (0..127).
const MaxRunLength = MinRepeatSize + 127

// RunLengthByteWriter run length encodes a stream of bytes using the scheme
// described at https://orc.apache.org/docs/run-length.html: a control byte
// of -(literalLength) (1..128) precedes a literal run of raw bytes, and a
// control byte of (repeatLength-MinRepeatSize) (0..127, giving runs of
// 3..130) precedes a single repeated value.
type RunLengthByteWriter struct {
	w             io.ByteWriter
	literals      [MaxLiteralSize]byte
	numLiterals   int
	repeat        bool
	tailRunLength int
}

// NewRunLengthByteWriter returns a *RunLengthByteWriter writing encoded
// output to w.
func NewRunLengthByteWriter(w io.ByteWriter) *RunLengthByteWriter {
	return &RunLengthByteWriter{w: w}
}

func (r *RunLengthByteWriter) writeValues() error {
	if r.numLiterals == 0 {
		return nil
	}
	if r.repeat {
		if err := r.w.WriteByte(byte(r.numLiterals - MinRepeatSize)); err != nil {
			return err
		}
		if err := r.w.WriteByte(r.literals[0]); err != nil {
			return err
		}
	} else {
		if err := r.w.WriteByte(byte(-r.numLiterals)); err != nil {
			return err
		}
		for i := 0; i < r.numLiterals; i++ {
			if err := r.w.WriteByte(r.literals[i]); err != nil {
				return err
			}
		}
	}
	r.numLiterals = 0
	r.repeat = false
	return nil
}

// WriteByte adds a single byte to the stream, buffering it for run-length
// encoding.
func (r *RunLengthByteWriter) WriteByte(value byte) error {
	if r.numLiterals == 0 {
		r.literals[0] = value
		r.numLiterals = 1
		r.tailRunLength = 1
		return nil
	}
	if r.repeat {
		if value == r.literals[0] {
			r.numLiterals++
			if r.numLiterals == MaxRunLength {
				return r.writeValues()
			}
			return nil
		}
		if err := r.writeValues(); err != nil {
			return err
		}
		r.literals[0] = value
		r.numLiterals = 1
		r.tailRunLength = 1
		return nil
	}
	if value == r.literals[r.numLiterals-1] {
		r.tailRunLength++
	} else {
		r.tailRunLength = 1
	}
	if r.tailRunLength == MinRepeatSize {
		if r.numLiterals+1 == MinRepeatSize {
			r.repeat = true
			r.numLiterals++
			return nil
		}
		r.numLiterals -= MinRepeatSize - 1
		saved := r.literals[r.numLiterals]
		if err := r.writeValues(); err != nil {
			return err
		}
		r.literals[0] = saved
		r.repeat = true
		r.numLiterals = MinRepeatSize
		return nil
	}
	r.literals[r.numLiterals] = value
	r.numLiterals++
	if r.numLiterals == MaxLiteralSize {
		return r.writeValues()
	}
	return nil
}

// Flush forces any buffered values to be written out.
func (r *RunLengthByteWriter) Flush() error {
	return r.writeValues()
}

// Close flushes any remaining buffered values.
func (r *RunLengthByteWriter) Close() error {
	return r.Flush()
}
