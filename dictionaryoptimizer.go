package orc

// dictionaryColumn is the capability a column writer exposes to the
// dictionary compression optimizer: an estimate of how well dictionary
// encoding is paying off, and the ability to fall back to DIRECT encoding
// when it isn't.
type dictionaryColumn interface {
	ColumnWriter
	// estimateRatio returns distinct-values / total-values seen so far;
	// values close to 1 mean the dictionary isn't saving space.
	estimateRatio() float64
	// dictionaryMemoryBytes returns the dictionary's retained size.
	dictionaryMemoryBytes() int64
	// convertToDirect abandons dictionary encoding for the rest of this
	// stripe, falling back to writing values directly; the next stripe
	// starts dictionary-encoded again.
	convertToDirect()
}

// DictionaryCompressionOptimizer decides, once per buffered chunk and once
// more at stripe-close time, whether each dictionary-capable column
// writer should keep building a dictionary or convert to DIRECT encoding,
// per spec §4.4. Grounded on the original writer's
// DictionaryCompressionOptimizer, which skips its own per-column work
// below a soft aggregate-memory-and-row-count floor, re-evaluates only
// every few chunks once above it, and treats "nearly full" (a band below
// the hard cap) as the signal to flush a stripe proactively rather than
// waiting for the cap to be hit mid-row-group.
type DictionaryCompressionOptimizer struct {
	columns []dictionaryColumn

	dictionaryKeySizeThreshold float64
	maxDictionaryBytes         int64

	// almostFullBytes is the band below maxDictionaryBytes at which isFull
	// starts reporting true, giving the writer room to flush the stripe
	// before a later chunk forces the dictionary past the hard cap.
	almostFullBytes int64

	// usefulnessCheckBytes is the minimum per-column dictionary byte size
	// before the optimizer bothers estimating that column's ratio; a
	// dictionary this small hasn't seen enough distinct values yet for the
	// ratio to be a meaningful signal either way.
	usefulnessCheckBytes int64

	// softMemoryBytes and rowCountThreshold gate optimize's fast path:
	// while aggregate dictionary memory is under softMemoryBytes AND the
	// stripe's row count is under rowCountThreshold, optimize does nothing.
	softMemoryBytes   int64
	rowCountThreshold int64

	// reevaluateEveryRows throttles how often, once past the fast path,
	// optimize actually walks the column list: it only re-evaluates once
	// the stripe has advanced at least this many rows since the last
	// evaluation, so frequent small chunk writes don't each pay the
	// per-column ratio estimate.
	reevaluateEveryRows int64
	lastEvaluatedRows   int64
	evaluatedOnce       bool
}

// DictionaryOptimizerTuning collects the knobs beyond the ratio/hard-cap
// pair NewDictionaryCompressionOptimizer already took, so the constructor
// doesn't grow an unreadable list of bare int64 parameters.
type DictionaryOptimizerTuning struct {
	AlmostFullBytes      int64
	UsefulnessCheckBytes int64
	SoftMemoryBytes      int64
	RowCountThreshold    int64
	ReevaluateEveryRows  int64
}

// NewDictionaryCompressionOptimizer returns an optimizer over columns,
// switching a column to DIRECT once its dictionary no longer shrinks
// distinct-value count below keySizeThreshold (fraction of rows that are
// distinct) or its dictionary exceeds maxDictionaryBytes.
func NewDictionaryCompressionOptimizer(columns []dictionaryColumn, keySizeThreshold float64, maxDictionaryBytes int64, tuning DictionaryOptimizerTuning) *DictionaryCompressionOptimizer {
	return &DictionaryCompressionOptimizer{
		columns:                    columns,
		dictionaryKeySizeThreshold: keySizeThreshold,
		maxDictionaryBytes:         maxDictionaryBytes,
		almostFullBytes:            tuning.AlmostFullBytes,
		usefulnessCheckBytes:       tuning.UsefulnessCheckBytes,
		softMemoryBytes:            tuning.SoftMemoryBytes,
		rowCountThreshold:          tuning.RowCountThreshold,
		reevaluateEveryRows:        tuning.ReevaluateEveryRows,
	}
}

// optimize runs the non-terminal per-chunk check: a column whose
// dictionary has clearly stopped paying off is converted early so later
// rows in the same stripe do not keep growing a useless dictionary. Small
// stripes that haven't built up meaningful dictionary memory or row count
// yet skip the walk entirely, and once past that floor, the walk itself
// only repeats every reevaluateEveryRows rows.
func (d *DictionaryCompressionOptimizer) optimize(bufferedBytes int64, stripeRowCount int64) {
	if d.dictionaryMemoryBytes() < d.softMemoryBytes && stripeRowCount < d.rowCountThreshold {
		return
	}
	if d.evaluatedOnce && stripeRowCount-d.lastEvaluatedRows < d.reevaluateEveryRows {
		return
	}
	d.lastEvaluatedRows = stripeRowCount
	d.evaluatedOnce = true
	d.evaluate()
}

// finalOptimize runs the terminal decision at stripe-close time: any
// column still above the ratio/memory threshold is converted to DIRECT
// before FlushStripe is called, so the stripe footer's ColumnEncoding
// reflects the final choice. Unlike optimize, it never skips the walk.
func (d *DictionaryCompressionOptimizer) finalOptimize(bufferedBytes int64) {
	d.evaluate()
}

// evaluate is the shared per-column walk optimize and finalOptimize both
// run, skipping columns whose dictionaries are too small to judge yet.
func (d *DictionaryCompressionOptimizer) evaluate() {
	for _, c := range d.columns {
		if c.dictionaryMemoryBytes() < d.usefulnessCheckBytes {
			continue
		}
		if d.isOverBudget(c) {
			c.convertToDirect()
		}
	}
}

func (d *DictionaryCompressionOptimizer) isOverBudget(c dictionaryColumn) bool {
	if c.estimateRatio() > d.dictionaryKeySizeThreshold {
		return true
	}
	if c.dictionaryMemoryBytes() > d.maxDictionaryBytes {
		return true
	}
	return false
}

// isFull reports whether aggregate dictionary memory has entered the
// almost-full band below maxDictionaryBytes, the signal the flush policy
// treats as FlushReasonDictionaryFull; it intentionally fires before the
// hard cap so the writer gets a chance to flush the stripe proactively
// rather than converting every dictionary to DIRECT under memory pressure.
func (d *DictionaryCompressionOptimizer) isFull(bufferedBytes int64) bool {
	return d.dictionaryMemoryBytes() >= d.almostFullBytes
}

// dictionaryMemoryBytes sums every managed column's dictionary memory,
// exposed for the RecordStripeWritten stats callback.
func (d *DictionaryCompressionOptimizer) dictionaryMemoryBytes() int64 {
	var total int64
	for _, c := range d.columns {
		total += c.dictionaryMemoryBytes()
	}
	return total
}
