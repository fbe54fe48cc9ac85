package orc

import (
	"sync"

	"github.com/Sullivan-Patrick/orc/orcproto"
)

// CompressionBufferPool hands out reusable byte slices sized for one
// OutStream compression chunk, named after the Java
// LastUsedCompressionBufferPool the original writer threads through every
// TreeWriter's OutStream construction.
type CompressionBufferPool interface {
	Take(kind orcproto.CompressionKind, chunkSize int) []byte
	Give(kind orcproto.CompressionKind, buf []byte)
	// RetainedBytes returns the total capacity of buffers currently
	// checked out of the pool, contributing to Writer.RetainedBytes().
	RetainedBytes() int64
}

type poolKey struct {
	kind      orcproto.CompressionKind
	chunkSize int
}

// LastUsedCompressionBufferPool keeps one sync.Pool per (kind, chunkSize)
// pair, reusing the most recently released buffer first, matching the
// "last used" eviction bias the Java type's name promises.
type LastUsedCompressionBufferPool struct {
	mu       sync.Mutex
	pools    map[poolKey]*sync.Pool
	outBytes int64
}

func NewLastUsedCompressionBufferPool() *LastUsedCompressionBufferPool {
	return &LastUsedCompressionBufferPool{pools: make(map[poolKey]*sync.Pool)}
}

func (p *LastUsedCompressionBufferPool) poolFor(kind orcproto.CompressionKind, chunkSize int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := poolKey{kind, chunkSize}
	pool, ok := p.pools[key]
	if !ok {
		pool = &sync.Pool{New: func() interface{} {
			return make([]byte, 0, chunkSize)
		}}
		p.pools[key] = pool
	}
	return pool
}

func (p *LastUsedCompressionBufferPool) Take(kind orcproto.CompressionKind, chunkSize int) []byte {
	buf := p.poolFor(kind, chunkSize).Get().([]byte)
	p.mu.Lock()
	p.outBytes += int64(cap(buf))
	p.mu.Unlock()
	return buf[:0]
}

func (p *LastUsedCompressionBufferPool) Give(kind orcproto.CompressionKind, buf []byte) {
	p.mu.Lock()
	p.outBytes -= int64(cap(buf))
	p.mu.Unlock()
	p.poolFor(kind, cap(buf)).Put(buf)
}

func (p *LastUsedCompressionBufferPool) RetainedBytes() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outBytes
}
