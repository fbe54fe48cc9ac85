package orc

import "bytes"

// BufferedWriter accumulates the bytes of one stream in memory until the
// stripe is flushed; each stream buffer owns one BufferedWriter.
type BufferedWriter struct {
	bytes.Buffer
	checkpoint uint64
	written    uint64
}

// NewBufferedWriter returns an empty BufferedWriter.
func NewBufferedWriter() *BufferedWriter {
	return &BufferedWriter{}
}

func (b *BufferedWriter) WriteByte(c byte) error {
	b.written++
	return b.Buffer.WriteByte(c)
}

func (b *BufferedWriter) Write(p []byte) (int, error) {
	n, err := b.Buffer.Write(p)
	b.written += uint64(n)
	return n, err
}

// Checkpoint returns the number of bytes written since the last Checkpoint
// call and resets the counter. The writer does not call it.
func (b *BufferedWriter) Checkpoint() uint64 {
	checkpoint := b.checkpoint
	b.checkpoint = b.written
	return b.written - checkpoint
}

// Reset discards any buffered bytes and resets the written counter.
func (b *BufferedWriter) Reset() {
	b.Buffer.Reset()
	b.checkpoint = 0
	b.written = 0
}
