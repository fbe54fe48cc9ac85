package orc

import (
	"fmt"
	"sort"

	"github.com/Sullivan-Patrick/orc/orcproto"
)

// writerFormatVersion is recorded in the footer's orcwriter.version user
// metadata item, the way the original writer stamps its own build version.
const writerFormatVersion = "1.0"

// writerState tracks where the writer sits in the stripe/row-group
// lifecycle, mirroring the open/stripe/row-group states the original
// writer's WriterImpl moves through between addRowBatch calls.
type writerState int

const (
	stateOpen writerState = iota
	stateStripeOpen
	stateRowGroupOpen
	stateStripeFlushing
	stateClosed
)

// Writer assembles rows written through Write/WriteBatch into a single ORC
// or DWRF file on sink, buffering one stripe at a time and deciding when to
// flush via flushPolicy, adapted from the original writer's WriterImpl.
type Writer struct {
	opts        *WriterOptions
	sink        Sink
	schema      *TypeDescription
	nodes       []*TypeDescription
	root        ColumnWriter
	codec       CompressionCodec
	optimizer   *DictionaryCompressionOptimizer
	flushPolicy FlushPolicy
	stripeCache *DwrfStripeCacheWriter
	validation  ValidationBuilder
	format      FileFormat

	state            writerState
	fileRowCount     int64
	stripeRowCount   int64
	rowGroupRowCount int64

	stripes         []*orcproto.StripeInformation
	stripeStatsList []*orcproto.StripeStatistics
	fileStats       map[int]*orcproto.ColumnStatistics

	// rowGroupEntries accumulates each column's RowIndexEntry across the
	// row-groups closed so far in the current stripe, keyed by flattened
	// node id; flushStripe drains it into one ROW_INDEX stream per column
	// and resets it for the next stripe.
	rowGroupEntries map[int][]*orcproto.RowIndexEntry

	closed            bool
	fileRowCountFinal uint64
	fileStatsFinal    []*orcproto.ColumnStatistics
}

// NewWriter returns a Writer appending to sink, configured by options. At
// minimum SetSchema must be supplied; every other option falls back to
// defaultOptions.
func NewWriter(sink Sink, options ...Option) (*Writer, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}
	if opts.Schema == nil {
		return nil, ErrNoSchema
	}
	nodes := Flatten(opts.Schema)
	codec, err := NewCompressionCodec(opts.Compression)
	if err != nil {
		return nil, err
	}
	root, err := createColumnWriter(opts.Schema, codec, opts.CompressionChunkSize)
	if err != nil {
		return nil, err
	}

	var dictCols []dictionaryColumn
	walkColumnWriters(root, func(cw ColumnWriter) {
		if dc, ok := cw.(dictionaryColumn); ok {
			dictCols = append(dictCols, dc)
		}
	})

	var stripeCache *DwrfStripeCacheWriter
	if opts.StripeCacheMode != orcproto.StripeCacheMode_NONE {
		stripeCache = NewDwrfStripeCacheWriter(opts.StripeCacheMode)
	}

	format := FormatORC
	if opts.Format != nil {
		format = *opts.Format
	} else if opts.StripeCacheMode != orcproto.StripeCacheMode_NONE {
		format = FormatDWRF
	}

	if _, err := sink.Write([]byte(format.magic())); err != nil {
		return nil, err
	}

	optimizer := NewDictionaryCompressionOptimizer(dictCols, opts.DictionaryKeySizeThreshold, opts.MaxDictionaryBytes, DictionaryOptimizerTuning{
		AlmostFullBytes:      opts.DictionaryAlmostFullBytes,
		UsefulnessCheckBytes: opts.DictionaryUsefulnessCheckBytes,
		SoftMemoryBytes:      opts.DictionarySoftMemoryBytes,
		RowCountThreshold:    opts.DictionaryRowCountThreshold,
		ReevaluateEveryRows:  opts.DictionaryReevaluateEveryRows,
	})

	return &Writer{
		opts:            opts,
		sink:            sink,
		schema:          opts.Schema,
		nodes:           nodes,
		root:            root,
		codec:           codec,
		optimizer:       optimizer,
		flushPolicy:     opts.FlushPolicy,
		stripeCache:     stripeCache,
		validation:      opts.Validation,
		format:          format,
		state:           stateOpen,
		fileStats:       make(map[int]*orcproto.ColumnStatistics),
		rowGroupEntries: make(map[int][]*orcproto.RowIndexEntry),
	}, nil
}

// Write appends page, a batch of rows sharing the schema's column count, to
// the current stripe. It validates every row up front, then slices page
// into chunks sized by the flush policy and the row-group/stripe row
// budgets remaining, forwarding each chunk to the column tree before
// re-checking whether a row-group or stripe boundary has been reached.
func (w *Writer) Write(page [][]interface{}) error {
	if w.state == stateClosed {
		return ErrClosed
	}
	for _, row := range page {
		if err := validateRowShape(w.schema, row); err != nil {
			return err
		}
	}
	for len(page) > 0 {
		chunkRows := w.flushPolicy.MaxChunkRowCount(page)
		rowGroupRemain := int64(w.opts.RowIndexStride) - w.rowGroupRowCount
		if int64(chunkRows) > rowGroupRemain {
			chunkRows = int(rowGroupRemain)
		}
		stripeRemain := w.flushPolicy.StripeMaxRowCount - w.stripeRowCount
		if int64(chunkRows) > stripeRemain {
			chunkRows = int(stripeRemain)
		}
		if chunkRows <= 0 {
			// The row group or the stripe itself is already at its cap;
			// close it out before taking any more rows instead of forcing
			// one row through, which would push stripeRowCount past
			// StripeMaxRowCount.
			if rowGroupRemain <= 0 && w.rowGroupRowCount > 0 {
				if err := w.finishRowGroup(); err != nil {
					return err
				}
			}
			if stripeRemain <= 0 {
				if err := w.flushStripe(); err != nil {
					return err
				}
			}
			continue
		}
		if chunkRows > len(page) {
			chunkRows = len(page)
		}
		chunk := page[:chunkRows]
		page = page[chunkRows:]

		for _, row := range chunk {
			if err := w.root.WriteValue(row); err != nil {
				return err
			}
			if w.validation != nil {
				w.validation.AddRow(row)
			}
		}
		w.state = stateStripeOpen
		n := int64(len(chunk))
		w.fileRowCount += n
		w.stripeRowCount += n
		w.rowGroupRowCount += n

		if w.rowGroupRowCount >= int64(w.opts.RowIndexStride) {
			if err := w.finishRowGroup(); err != nil {
				return err
			}
		}
		w.optimizer.optimize(w.bufferedBytes(), w.stripeRowCount)
		if should, _ := w.flushPolicy.ShouldFlush(w.bufferedBytes(), w.stripeRowCount, w.optimizer.isFull(w.bufferedBytes())); should {
			if err := w.flushStripe(); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteBatch is an alias for Write, named to match the original writer's
// addRowBatch entry point; both take the same page contract.
func (w *Writer) WriteBatch(page [][]interface{}) error {
	return w.Write(page)
}

// collectRowGroupEntries visits cw and its descendants depth-first,
// appending each column's just-closed RowIndexEntry to w.rowGroupEntries.
func (w *Writer) collectRowGroupEntries(cw ColumnWriter) error {
	entry, err := cw.FinishRowGroup()
	if err != nil {
		return err
	}
	id := cw.Column()
	w.rowGroupEntries[id] = append(w.rowGroupEntries[id], entry)
	for _, child := range cw.Children() {
		if err := w.collectRowGroupEntries(child); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) finishRowGroup() error {
	w.state = stateRowGroupOpen
	if err := w.collectRowGroupEntries(w.root); err != nil {
		return err
	}
	w.rowGroupRowCount = 0
	w.state = stateStripeOpen
	return nil
}

// buildIndexStreams marshals and compresses every column's accumulated
// RowIndexEntry list into that column's ROW_INDEX stream, ready to be laid
// out alongside the stripe's data streams.
func (w *Writer) buildIndexStreams() ([]StreamDataOutput, error) {
	var out []StreamDataOutput
	for id := 0; id < len(w.nodes); id++ {
		entries := w.rowGroupEntries[id]
		if len(entries) == 0 {
			continue
		}
		raw, err := marshalRowIndex(entries)
		if err != nil {
			return nil, err
		}
		sb := newStreamBuffer(id, orcproto.Stream_ROW_INDEX, w.codec, w.opts.CompressionChunkSize)
		if _, err := sb.stream.Write(raw); err != nil {
			return nil, err
		}
		s, err := sb.drain(id)
		if err != nil {
			return nil, err
		}
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

// bufferedBytes approximates the current stripe's in-memory size as the
// column tree's retained bytes, standing in for the original writer's
// writeBlock-returned raw size delta, which this writer's per-value
// ColumnWriter contract does not produce.
func (w *Writer) bufferedBytes() int64 {
	return w.root.RetainedBytes()
}

// flushStripeColumn visits cw and its descendants depth-first, snapshotting
// each node's stripe statistics (stamped with the column's storage size
// once its streams are known) before FlushStripe resets them, and
// collecting every node's streams and encoding into one flat set the
// caller routes into regions and encryption groups afterward.
func (w *Writer) flushStripeColumn(
	cw ColumnWriter,
	allStreams *[]StreamDataOutput,
	encodings map[int]*orcproto.ColumnEncoding,
	stripeStats map[int]*orcproto.ColumnStatistics,
) error {
	id := cw.Column()
	snapshot := cw.Statistics().Statistics()
	streams, encoding, err := cw.FlushStripe()
	if err != nil {
		return err
	}
	var storageBytes uint64
	for _, s := range streams {
		storageBytes += uint64(s.Size())
	}
	snapshot.StorageSize = &storageBytes

	stripeStats[id] = snapshot
	if w.fileStats[id] == nil {
		w.fileStats[id] = cloneColumnStatistics(snapshot)
	} else {
		mergeStatisticsProto(w.fileStats[id], snapshot)
	}
	encodings[id] = encoding
	*allStreams = append(*allStreams, streams...)

	for _, child := range cw.Children() {
		if err := w.flushStripeColumn(child, allStreams, encodings, stripeStats); err != nil {
			return err
		}
	}
	return nil
}

// flushStripe closes out the current stripe: it runs the dictionary
// optimizer's terminal decision, assembles every column's streams into the
// stripe footer (splitting out encrypted groups), writes the stripe to
// sink, and records its StripeInformation and StripeStatistics entries.
func (w *Writer) flushStripe() error {
	if w.stripeRowCount == 0 {
		return nil
	}
	w.state = stateStripeFlushing
	if w.rowGroupRowCount > 0 {
		if err := w.finishRowGroup(); err != nil {
			return err
		}
	}
	w.optimizer.finalOptimize(w.bufferedBytes())

	var dataStreams []StreamDataOutput
	encodings := make(map[int]*orcproto.ColumnEncoding)
	stripeStats := make(map[int]*orcproto.ColumnStatistics)

	if err := w.flushStripeColumn(w.root, &dataStreams, encodings, stripeStats); err != nil {
		return err
	}

	indexStreams, err := w.buildIndexStreams()
	if err != nil {
		return err
	}
	w.rowGroupEntries = make(map[int][]*orcproto.RowIndexEntry)

	groupOf := func(column int) (int, bool) {
		if w.opts.Encryption == nil {
			return 0, false
		}
		return w.opts.Encryption.GroupFor(column)
	}

	combined, indexCount := buildStripeRegions(indexStreams, dataStreams, groupOf)
	assignRegionOffsets(combined)
	plainStreams, groupStreams := splitStripeRegions(combined)

	var indexLength, dataLength int64
	for i, t := range combined {
		if i < indexCount {
			indexLength += t.Size()
		} else {
			dataLength += t.Size()
		}
	}

	orderedEncodings := make([]*orcproto.ColumnEncoding, len(w.nodes))
	for id, enc := range encodings {
		if _, encrypted := groupOf(id); encrypted {
			// The real encoding kind is recorded inside the encrypted
			// group's own StripeEncryptionGroup; the plaintext footer
			// only needs a placeholder so readers see a dense column list.
			kind := orcproto.ColumnEncoding_DIRECT
			orderedEncodings[id] = &orcproto.ColumnEncoding{Kind: &kind}
			continue
		}
		orderedEncodings[id] = enc
	}

	var encryptedGroups [][]byte
	var localKeys [][]byte
	if w.opts.Encryption != nil && len(groupStreams) > 0 {
		groups := make([]int, 0, len(groupStreams))
		for g := range groupStreams {
			groups = append(groups, g)
		}
		sort.Ints(groups)
		for _, g := range groups {
			groupEncodings := make([]*orcproto.ColumnEncoding, 0, len(groupStreams[g]))
			seen := make(map[int]bool)
			for _, s := range groupStreams[g] {
				if seen[s.Stream.Column] {
					continue
				}
				seen[s.Stream.Column] = true
				groupEncodings = append(groupEncodings, encodings[s.Stream.Column])
			}
			raw, err := marshalStripeEncryptionGroup(groupStreams[g], groupEncodings)
			if err != nil {
				return err
			}
			sealed, err := w.opts.Encryption.Encrypt(g, raw)
			if err != nil {
				return err
			}
			encryptedGroups = append(encryptedGroups, sealed)
			localKeys = append(localKeys, w.opts.Encryption.EncryptedKey(g))
		}
	}

	footerBytes, err := marshalStripeFooter(plainStreams, orderedEncodings, encryptedGroups)
	if err != nil {
		return err
	}

	startOffset := w.sink.Size()
	for _, t := range combined {
		if _, err := w.sink.Write(t.Data); err != nil {
			return err
		}
	}
	if _, err := w.sink.Write(footerBytes); err != nil {
		return err
	}

	if w.stripeCache != nil {
		plainIndex, _ := splitStripeRegions(combined[:indexCount])
		w.stripeCache.addIndexStreams(plainIndex)
	}

	offset := uint64(startOffset)
	indexLen := uint64(indexLength)
	dataLen := uint64(dataLength)
	footerLen := uint64(len(footerBytes))
	rows := uint64(w.stripeRowCount)
	rawSize := uint64(w.bufferedBytes())
	w.stripes = append(w.stripes, &orcproto.StripeInformation{
		Offset:             &offset,
		IndexLength:        &indexLen,
		DataLength:         &dataLen,
		FooterLength:       &footerLen,
		NumberOfRows:       &rows,
		RawDataSize:        &rawSize,
		EncryptedLocalKeys: localKeys,
	})

	denseStats := make([]*orcproto.ColumnStatistics, len(w.nodes))
	for id, s := range stripeStats {
		denseStats[id] = s
	}
	for id := range denseStats {
		if denseStats[id] == nil {
			denseStats[id] = &orcproto.ColumnStatistics{}
		}
	}
	w.stripeStatsList = append(w.stripeStatsList, &orcproto.StripeStatistics{ColStats: denseStats})

	if w.stripeCache != nil {
		w.stripeCache.addStripeFooter(footerBytes)
	}
	if w.validation != nil {
		w.validation.AddStripeStatistics(len(w.stripes)-1, denseStats)
	}
	w.opts.Stats.RecordStripeWritten(w.stripeRowCount, w.bufferedBytes(), w.optimizer.dictionaryMemoryBytes())

	w.stripeRowCount = 0
	w.state = stateStripeOpen
	return nil
}

// Close flushes any remaining buffered stripe, writes the stripe cache
// (if configured), the metadata section, the footer, and the postscript,
// then closes sink. Close must be called exactly once.
func (w *Writer) Close() error {
	if w.state == stateClosed {
		return ErrClosed
	}
	if w.stripeRowCount > 0 {
		if err := w.flushStripe(); err != nil {
			return err
		}
	}
	if err := w.root.Close(); err != nil {
		return err
	}

	var cacheBytes []byte
	var stripeCacheLength uint32
	if w.stripeCache != nil {
		data, err := marshalStripeCache(w.stripeCache.getDwrfStripeCacheData())
		if err != nil {
			return err
		}
		cacheBytes = data
		stripeCacheLength = uint32(len(cacheBytes))
		if _, err := w.sink.Write(cacheBytes); err != nil {
			return err
		}
	}

	metadataBytes, err := marshalMetadata(w.stripeStatsList)
	if err != nil {
		return err
	}
	if _, err := w.sink.Write(metadataBytes); err != nil {
		return err
	}

	var fileStatsList []*orcproto.ColumnStatistics
	var rootFileStats map[int]*orcproto.ColumnStatistics
	if w.opts.Encryption != nil {
		fileStatsList, rootFileStats = splitEncryptedFileStatistics(w.schema, w.fileStats, w.opts.Encryption, len(w.nodes))
	} else {
		fileStatsList = make([]*orcproto.ColumnStatistics, len(w.nodes))
		for id, s := range w.fileStats {
			fileStatsList[id] = s
		}
	}
	for id := range fileStatsList {
		if fileStatsList[id] == nil {
			fileStatsList[id] = &orcproto.ColumnStatistics{}
		}
	}

	types := make([]*orcproto.OrcType, len(w.nodes))
	for i, n := range w.nodes {
		types[i] = n.ToOrcType()
	}

	versionName := "orcwriter.version"
	idName := "orcwriter.id"
	userMeta := []*orcproto.UserMetadataItem{
		{Name: &versionName, Value: []byte(writerFormatVersion)},
		{Name: &idName, Value: []byte(w.opts.WriterID)},
	}

	var encryption *orcproto.DwrfEncryption
	if w.opts.Encryption != nil {
		encryptedFileStats := make(map[int][]byte, len(rootFileStats))
		for root, stats := range rootFileStats {
			raw, err := marshalColumnStatistics(stats)
			if err != nil {
				return err
			}
			group, _ := w.opts.Encryption.GroupFor(root)
			sealed, err := w.opts.Encryption.Encrypt(group, raw)
			if err != nil {
				return err
			}
			encryptedFileStats[root] = sealed
		}
		encryption = w.opts.Encryption.ToProto(encryptedFileStats)
	}

	var stripeCacheOffsets []uint32
	if w.stripeCache != nil {
		stripeCacheOffsets = w.stripeCache.getOffsets()
	}

	footerBytes, err := marshalFooter(footerParams{
		numberOfRows:       uint64(w.fileRowCount),
		rowIndexStride:     uint32(w.opts.RowIndexStride),
		rawSize:            uint64(w.root.RetainedBytes()),
		stripes:            w.stripes,
		types:              types,
		statistics:         fileStatsList,
		userMetadata:       userMeta,
		encryption:         encryption,
		stripeCacheOffsets: stripeCacheOffsets,
	})
	if err != nil {
		return err
	}
	if _, err := w.sink.Write(footerBytes); err != nil {
		return err
	}

	psBytes, err := marshalPostScript(w.format.magic(), uint64(len(footerBytes)), w.opts.Compression, uint64(w.opts.CompressionChunkSize), uint64(len(metadataBytes)), stripeCacheLength, w.opts.StripeCacheMode)
	if err != nil {
		return err
	}
	if len(psBytes) > 255 {
		return fmt.Errorf("orc: postscript length %d exceeds the 1-byte file trailer", len(psBytes))
	}
	if _, err := w.sink.Write(psBytes); err != nil {
		return err
	}
	if _, err := w.sink.Write([]byte{byte(len(psBytes))}); err != nil {
		return err
	}

	w.fileRowCountFinal = uint64(w.fileRowCount)
	w.fileStatsFinal = fileStatsList
	w.state = stateClosed
	w.closed = true
	return w.sink.Close()
}

// Validate replays source against the rows and stripe statistics recorded
// by the configured ValidationBuilder, returning a *CorruptionError on the
// first mismatch. It requires a builder that supports replay (currently
// only the one returned by NewMirrorValidationBuilder).
func (w *Writer) Validate(source RowSource) error {
	mirror, ok := w.validation.(*mirrorValidationBuilder)
	if !ok || mirror == nil {
		return fmt.Errorf("orc: configured validation builder does not support replay validation")
	}
	return mirror.Validate(source)
}

// RetainedBytes estimates the writer's current in-memory footprint: the
// column tree's buffered streams, the compression buffer pool's checked-out
// buffers, and the validation mirror's recorded rows, if any.
func (w *Writer) RetainedBytes() int64 {
	total := w.root.RetainedBytes() + w.opts.BufferPool.RetainedBytes()
	if w.validation != nil {
		total += w.validation.RetainedBytes()
	}
	return total
}

// FileRowCount returns the total number of rows written, valid only after
// Close.
func (w *Writer) FileRowCount() uint64 {
	if !w.closed {
		panic("orc: FileRowCount called before Close")
	}
	return w.fileRowCountFinal
}

// FileStatistics returns the file-level per-column statistics, indexed by
// flattened node id, valid only after Close.
func (w *Writer) FileStatistics() []*orcproto.ColumnStatistics {
	if !w.closed {
		panic("orc: FileStatistics called before Close")
	}
	return w.fileStatsFinal
}
