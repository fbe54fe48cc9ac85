package orc

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io/ioutil"

	"github.com/Sullivan-Patrick/orc/orcproto"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// DefaultCompressionChunkSize is the default size of the uncompressed
// buffer OutStream accumulates before handing it to a CompressionCodec.
const DefaultCompressionChunkSize = 256 * 1024

// CompressionCodec compresses one chunk at a time. Compress returns
// isOriginal true when the compressed form was not smaller than src, in
// which case out is src itself and OutStream must flag the chunk
// uncompressed in its header, matching the header bit teacher's
// CompressionZlibDecoder/CompressionSnappyDecoder already expect to read.
type CompressionCodec interface {
	Kind() orcproto.CompressionKind
	Compress(dst, src []byte) (out []byte, isOriginal bool, err error)
}

// NewCompressionCodec returns the concrete CompressionCodec for kind.
func NewCompressionCodec(kind orcproto.CompressionKind) (CompressionCodec, error) {
	switch kind {
	case orcproto.CompressionKind_NONE:
		return noneCodec{}, nil
	case orcproto.CompressionKind_ZLIB:
		return zlibCodec{}, nil
	case orcproto.CompressionKind_SNAPPY:
		return snappyCodec{}, nil
	case orcproto.CompressionKind_ZSTD:
		return zstdCodec{}, nil
	case orcproto.CompressionKind_LZ4:
		return lz4Codec{}, nil
	default:
		return nil, fmt.Errorf("orc: unsupported compression kind %s", kind)
	}
}

type noneCodec struct{}

func (noneCodec) Kind() orcproto.CompressionKind { return orcproto.CompressionKind_NONE }
func (noneCodec) Compress(dst, src []byte) ([]byte, bool, error) {
	return append(dst, src...), true, nil
}

type zlibCodec struct{}

func (zlibCodec) Kind() orcproto.CompressionKind { return orcproto.CompressionKind_ZLIB }
func (zlibCodec) Compress(dst, src []byte) ([]byte, bool, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, false, err
	}
	if _, err := w.Write(src); err != nil {
		return nil, false, err
	}
	if err := w.Close(); err != nil {
		return nil, false, err
	}
	if buf.Len() >= len(src) {
		return append(dst, src...), true, nil
	}
	return append(dst, buf.Bytes()...), false, nil
}

type snappyCodec struct{}

func (snappyCodec) Kind() orcproto.CompressionKind { return orcproto.CompressionKind_SNAPPY }
func (snappyCodec) Compress(dst, src []byte) ([]byte, bool, error) {
	compressed := snappy.Encode(nil, src)
	if len(compressed) >= len(src) {
		return append(dst, src...), true, nil
	}
	return append(dst, compressed...), false, nil
}

type zstdCodec struct{}

func (zstdCodec) Kind() orcproto.CompressionKind { return orcproto.CompressionKind_ZSTD }
func (zstdCodec) Compress(dst, src []byte) ([]byte, bool, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, false, err
	}
	compressed := enc.EncodeAll(src, nil)
	if err := enc.Close(); err != nil {
		return nil, false, err
	}
	if len(compressed) >= len(src) {
		return append(dst, src...), true, nil
	}
	return append(dst, compressed...), false, nil
}

type lz4Codec struct{}

func (lz4Codec) Kind() orcproto.CompressionKind { return orcproto.CompressionKind_LZ4 }
func (lz4Codec) Compress(dst, src []byte) ([]byte, bool, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, false, err
	}
	if err := w.Close(); err != nil {
		return nil, false, err
	}
	if buf.Len() >= len(src) {
		return append(dst, src...), true, nil
	}
	return append(dst, buf.Bytes()...), false, nil
}

// decompressAll exists for the validation mirror's own round-trip checks:
// it reads back exactly what the corresponding Compress call produced.
func decompressAll(kind orcproto.CompressionKind, data []byte, isOriginal bool) ([]byte, error) {
	if isOriginal || kind == orcproto.CompressionKind_NONE {
		return data, nil
	}
	switch kind {
	case orcproto.CompressionKind_ZLIB:
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return ioutil.ReadAll(r)
	case orcproto.CompressionKind_SNAPPY:
		return snappy.Decode(nil, data)
	case orcproto.CompressionKind_ZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case orcproto.CompressionKind_LZ4:
		r := lz4.NewReader(bytes.NewReader(data))
		return ioutil.ReadAll(r)
	default:
		return nil, fmt.Errorf("orc: unsupported compression kind %s", kind)
	}
}
