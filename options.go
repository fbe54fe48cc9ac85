package orc

import (
	"github.com/Sullivan-Patrick/orc/orcproto"
	"github.com/google/uuid"
)

// WriterStats is an optional callback the writer reports size deltas and
// stripe completions to, present in the original writer's constructor but
// left as an accessor-only bullet in spec §4.1; see SPEC_FULL.md §14.
type WriterStats interface {
	UpdateSizeInBytes(delta int64)
	RecordStripeWritten(rows int64, rawBytes int64, dictionaryBytes int64)
}

type noopWriterStats struct{}

func (noopWriterStats) UpdateSizeInBytes(int64)                 {}
func (noopWriterStats) RecordStripeWritten(int64, int64, int64) {}

// FileFormat selects which container format Close emits, per spec's file
// magic rule: "ORC" for ORC encoding, the DWRF analogue otherwise. Both
// the leading file magic and the postscript's own Magic field follow
// this selection.
type FileFormat int

const (
	FormatORC FileFormat = iota
	FormatDWRF
)

// magic returns the file-magic bytes for f.
func (f FileFormat) magic() string {
	if f == FormatDWRF {
		return "DWRF"
	}
	return "ORC"
}

func (f FileFormat) String() string {
	if f == FormatDWRF {
		return "DWRF"
	}
	return "ORC"
}

// WriterOptions configures a Writer, generalized from the teacher's
// commented-out WriterConfigFunc/Writer field sketch in writer.go.
type WriterOptions struct {
	Schema               *TypeDescription
	Compression          orcproto.CompressionKind
	CompressionChunkSize int
	FlushPolicy          FlushPolicy
	RowIndexStride       int
	BufferPool           CompressionBufferPool
	Stats                WriterStats
	StripeCacheMode      orcproto.StripeCacheMode
	Encryption           *EncryptionInfo
	Validation           ValidationBuilder
	WriterID             string
	// Format is nil until SetFileFormat is called; NewWriter then resolves
	// it to FormatDWRF if StripeCacheMode enables the (DWRF-only) stripe
	// cache, or FormatORC otherwise. A nil Format here means "not yet
	// resolved", not "ORC" — resolution happens once, in NewWriter.
	Format *FileFormat

	DictionaryKeySizeThreshold     float64
	MaxDictionaryBytes             int64
	DictionaryAlmostFullBytes      int64
	DictionaryUsefulnessCheckBytes int64
	DictionarySoftMemoryBytes      int64
	DictionaryRowCountThreshold    int64
	DictionaryReevaluateEveryRows  int64
}

// Option configures a Writer at construction time.
type Option func(*WriterOptions)

func defaultOptions() *WriterOptions {
	return &WriterOptions{
		Compression:                orcproto.CompressionKind_ZLIB,
		CompressionChunkSize:       DefaultCompressionChunkSize,
		FlushPolicy:                DefaultFlushPolicy(),
		RowIndexStride:             10000,
		BufferPool:                 NewLastUsedCompressionBufferPool(),
		Stats:                      noopWriterStats{},
		StripeCacheMode:            orcproto.StripeCacheMode_NONE,
		WriterID:                   uuid.New().String(),
		DictionaryKeySizeThreshold: 0.8,
		MaxDictionaryBytes:         16 * 1024 * 1024,
		DictionaryAlmostFullBytes:      14 * 1024 * 1024,
		DictionaryUsefulnessCheckBytes: 4 * 1024,
		DictionarySoftMemoryBytes:      4 * 1024 * 1024,
		DictionaryRowCountThreshold:    5000,
		DictionaryReevaluateEveryRows:  2000,
	}
}

// SetSchema sets the row schema, a struct TypeDescription whose fields are
// the file's top-level columns. Required.
func SetSchema(schema *TypeDescription) Option {
	return func(o *WriterOptions) { o.Schema = schema }
}

// SetCompression selects the codec used for every stream and metadata
// section.
func SetCompression(kind orcproto.CompressionKind) Option {
	return func(o *WriterOptions) { o.Compression = kind }
}

// SetCompressionChunkSize overrides the default OutStream chunk size.
func SetCompressionChunkSize(n int) Option {
	return func(o *WriterOptions) { o.CompressionChunkSize = n }
}

// SetFlushPolicy overrides the default stripe flush thresholds.
func SetFlushPolicy(p FlushPolicy) Option {
	return func(o *WriterOptions) { o.FlushPolicy = p }
}

// SetRowIndexStride overrides the default row-group size.
func SetRowIndexStride(n int) Option {
	return func(o *WriterOptions) { o.RowIndexStride = n }
}

// SetStats installs a WriterStats callback.
func SetStats(stats WriterStats) Option {
	return func(o *WriterOptions) { o.Stats = stats }
}

// SetStripeCacheMode enables the DWRF stripe cache.
func SetStripeCacheMode(mode orcproto.StripeCacheMode) Option {
	return func(o *WriterOptions) { o.StripeCacheMode = mode }
}

// SetFileFormat forces the file's container format (and therefore its
// magic bytes) rather than letting NewWriter derive it from whether the
// DWRF-only stripe cache is enabled.
func SetFileFormat(format FileFormat) Option {
	return func(o *WriterOptions) { o.Format = &format }
}

// SetEncryption enables per-column encryption groups.
func SetEncryption(info *EncryptionInfo) Option {
	return func(o *WriterOptions) { o.Encryption = info }
}

// SetValidation installs a ValidationBuilder mirror.
func SetValidation(v ValidationBuilder) Option {
	return func(o *WriterOptions) { o.Validation = v }
}

// SetDictionaryThresholds overrides the dictionary compression optimizer's
// ratio and hard memory cap.
func SetDictionaryThresholds(keySizeThreshold float64, maxDictionaryBytes int64) Option {
	return func(o *WriterOptions) {
		o.DictionaryKeySizeThreshold = keySizeThreshold
		o.MaxDictionaryBytes = maxDictionaryBytes
	}
}

// SetDictionaryAlmostFull overrides the proactive "almost full" memory band
// DictionaryCompressionOptimizer.isFull checks, which should sit below
// MaxDictionaryBytes so a stripe flush is triggered before the hard cap.
func SetDictionaryAlmostFull(bytes int64) Option {
	return func(o *WriterOptions) { o.DictionaryAlmostFullBytes = bytes }
}

// SetDictionaryUsefulnessCheckSize overrides the minimum per-column
// dictionary byte size the optimizer requires before estimating a
// compression ratio for that column.
func SetDictionaryUsefulnessCheckSize(bytes int64) Option {
	return func(o *WriterOptions) { o.DictionaryUsefulnessCheckBytes = bytes }
}

// SetDictionaryEvaluationPolicy overrides the optimizer's fast-path soft
// memory limit, row-count threshold, and re-evaluation frequency: below
// softMemoryBytes and rowCountThreshold, optimize does nothing; above
// that floor, it re-evaluates at most once every reevaluateEveryRows rows.
func SetDictionaryEvaluationPolicy(softMemoryBytes, rowCountThreshold, reevaluateEveryRows int64) Option {
	return func(o *WriterOptions) {
		o.DictionarySoftMemoryBytes = softMemoryBytes
		o.DictionaryRowCountThreshold = rowCountThreshold
		o.DictionaryReevaluateEveryRows = reevaluateEveryRows
	}
}
