package orc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/Sullivan-Patrick/orc/orcproto"
)

var (
	_ CompressionCodec = noneCodec{}
	_ CompressionCodec = zlibCodec{}
	_ CompressionCodec = snappyCodec{}
	_ CompressionCodec = zstdCodec{}
	_ CompressionCodec = lz4Codec{}
)

func TestCompressionHeader(t *testing.T) {
	testcases := []struct {
		chunkSize  int
		isOriginal bool
		expected   []byte
		isError    bool
	}{
		{9000000, false, []byte{}, true},
		{100000, false, []byte{0x40, 0x0d, 0x03}, false},
		{5, true, []byte{0x0b, 0x00, 0x00}, false},
	}

	for _, v := range testcases {
		header, err := compressionHeader(v.chunkSize, v.isOriginal)
		if err != nil && !v.isError {
			t.Error(err)
			continue
		}
		if err == nil && v.isError {
			t.Errorf("On input: Length %d and isOriginal %t -> Expected an error, but got none.", v.chunkSize, v.isOriginal)
		}
		if bytes.Compare(header, v.expected) != 0 {
			t.Errorf("On input: Length %d and isOriginal %t -> Expected header %x got %x", v.chunkSize, v.isOriginal, v.expected, header)
		}
	}
}

func TestCompressionCodecRoundTrip(t *testing.T) {
	kinds := []orcproto.CompressionKind{
		orcproto.CompressionKind_NONE,
		orcproto.CompressionKind_ZLIB,
		orcproto.CompressionKind_SNAPPY,
		orcproto.CompressionKind_ZSTD,
		orcproto.CompressionKind_LZ4,
	}

	src := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)

	for _, kind := range kinds {
		codec, err := NewCompressionCodec(kind)
		if err != nil {
			t.Fatal(err)
		}
		out, isOriginal, err := codec.Compress(nil, src)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		got, err := decompressAll(kind, out, isOriginal)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if !bytes.Equal(got, src) {
			t.Errorf("%s: round trip mismatch", kind)
		}
	}
}

func TestCompressionCodecFallsBackToOriginalOnIncompressibleInput(t *testing.T) {
	codec := zlibCodec{}
	random := make([]byte, 64)
	rand.Read(random)
	out, _, err := codec.Compress(nil, random)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) > len(random) {
		t.Errorf("expected fallback to original, got larger output %d > %d", len(out), len(random))
	}
}
