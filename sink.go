package orc

import (
	"bytes"
	"os"
)

// Sink is the append-only, position-tracking output the writer assembles a
// file into: stripes, metadata, footer, and postscript are all written
// through one Sink in order, matching the original writer's single
// OrcOutputSink abstraction.
type Sink interface {
	Write(p []byte) (int, error)
	// Size returns the number of bytes written so far, used to record
	// each stripe's starting offset in the footer.
	Size() int64
	Close() error
}

// FileSink writes directly to an *os.File, grounded on the teacher's
// file-backed reader (file.go/orcfile.go) mirrored for the write path.
type FileSink struct {
	f    *os.File
	size int64
}

// NewFileSink wraps f, an already-open, empty, write-only file.
func NewFileSink(f *os.File) *FileSink {
	return &FileSink{f: f}
}

func (s *FileSink) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	s.size += int64(n)
	return n, err
}

func (s *FileSink) Size() int64 { return s.size }
func (s *FileSink) Close() error { return s.f.Close() }

// MemorySink is a Sink over an in-memory buffer, used by tests and by
// callers who want the finished file bytes without touching disk, grounded
// on the teacher's BufferedWriter *bytes.Buffer pairing.
type MemorySink struct {
	buf bytes.Buffer
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Write(p []byte) (int, error) { return s.buf.Write(p) }
func (s *MemorySink) Size() int64                 { return int64(s.buf.Len()) }
func (s *MemorySink) Close() error                 { return nil }
func (s *MemorySink) Bytes() []byte                { return s.buf.Bytes() }
