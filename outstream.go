package orc

import (
	"fmt"

	"github.com/Sullivan-Patrick/orc/orcproto"
)

// HeaderSize is the width of the chunk header OutStream writes before every
// compressed (or pass-through) chunk: one bit for isOriginal packed into a
// 3-byte little-endian length field, matching every ORC/DWRF reader's
// expected framing.
const HeaderSize = 3

// maxChunkLength is the largest chunk length the 3-byte header can express:
// 23 usable bits (24 total minus the isOriginal flag bit).
const maxChunkLength = 1<<23 - 1

// compressionHeader encodes a chunk's length and isOriginal flag into the
// 3-byte wire header.
func compressionHeader(length int, isOriginal bool) ([]byte, error) {
	if length > maxChunkLength {
		return nil, fmt.Errorf("orc: chunk length %d exceeds maximum %d", length, maxChunkLength)
	}
	header := make([]byte, HeaderSize)
	val := length << 1
	if isOriginal {
		val |= 1
	}
	header[0] = byte(val)
	header[1] = byte(val >> 8)
	header[2] = byte(val >> 16)
	return header, nil
}

// OutStream accumulates uncompressed bytes up to bufferSize, then frames
// and writes a compressed (or pass-through) chunk through the configured
// CompressionCodec. When codec is CompressionKind_NONE, bytes are written
// straight through with no chunk header, matching the uncompressed-file
// case DWRF/ORC both special-case.
type OutStream struct {
	name              string
	w                 ByteSink
	bufferSize        int
	codec             CompressionCodec
	buf               []byte
	uncompressedBytes int64
	compressedBytes   int64
}

// ByteSink is the minimal contract OutStream needs from its underlying
// writer: append-only byte writes with a running size.
type ByteSink interface {
	Write(p []byte) (int, error)
}

// NewOutStream returns an *OutStream named name (used only for diagnostics
// and the stream descriptor it eventually produces), buffering up to
// bufferSize bytes before compressing through codec.
func NewOutStream(name string, bufferSize int, codec CompressionCodec, w ByteSink) *OutStream {
	if bufferSize <= 0 {
		bufferSize = DefaultCompressionChunkSize
	}
	return &OutStream{name: name, w: w, bufferSize: bufferSize, codec: codec}
}

// WriteByte implements io.ByteWriter so OutStream can back the integer,
// boolean, and string leaf writers directly.
func (o *OutStream) WriteByte(c byte) error {
	o.buf = append(o.buf, c)
	if len(o.buf) >= o.bufferSize {
		return o.spill()
	}
	return nil
}

// Write implements io.Writer.
func (o *OutStream) Write(p []byte) (int, error) {
	for _, c := range p {
		if err := o.WriteByte(c); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (o *OutStream) spill() error {
	if len(o.buf) == 0 {
		return nil
	}
	if o.codec.Kind() == orcproto.CompressionKind_NONE {
		n, err := o.w.Write(o.buf)
		o.uncompressedBytes += int64(n)
		o.compressedBytes += int64(n)
		o.buf = o.buf[:0]
		return err
	}
	compressed, isOriginal, err := o.codec.Compress(nil, o.buf)
	if err != nil {
		return err
	}
	header, err := compressionHeader(len(compressed), isOriginal)
	if err != nil {
		return err
	}
	if _, err := o.w.Write(header); err != nil {
		return err
	}
	n, err := o.w.Write(compressed)
	o.uncompressedBytes += int64(len(o.buf))
	o.compressedBytes += int64(len(header) + n)
	o.buf = o.buf[:0]
	return err
}

// Flush forces any buffered bytes out as a final (possibly short) chunk.
func (o *OutStream) Flush() error {
	return o.spill()
}

// BufferedBytes returns the number of bytes currently held unflushed.
func (o *OutStream) BufferedBytes() int64 {
	return int64(len(o.buf))
}

// CompressedSize returns the total number of bytes written downstream so
// far, including chunk headers.
func (o *OutStream) CompressedSize() int64 {
	return o.compressedBytes
}
