package orc

// FlushReason names why the writer decided to close the current stripe.
type FlushReason int

const (
	FlushReasonNone FlushReason = iota
	FlushReasonMaxRows
	FlushReasonMaxBytes
	FlushReasonDictionaryFull
	FlushReasonClosed
)

func (r FlushReason) String() string {
	switch r {
	case FlushReasonMaxRows:
		return "MAX_ROWS"
	case FlushReasonMaxBytes:
		return "MAX_BYTES"
	case FlushReasonDictionaryFull:
		return "DICTIONARY_FULL"
	case FlushReasonClosed:
		return "CLOSED"
	default:
		return "NONE"
	}
}

// FlushPolicy decides when the writer must close the current stripe and
// start a new one, per the flush thresholds spec names: a maximum byte
// count and row count at which a flush is forced, and a minimum byte count
// below which a DICTIONARY_FULL flush is held back.
type FlushPolicy struct {
	StripeMinBytes    int64
	StripeMaxBytes    int64
	StripeMaxRowCount int64
}

// DefaultFlushPolicy matches common ORC writer defaults: 64MB max stripe
// size, no explicit row cap, and a 32MB minimum before a DICTIONARY_FULL
// flush.
func DefaultFlushPolicy() FlushPolicy {
	return FlushPolicy{
		StripeMinBytes:    32 * 1024 * 1024,
		StripeMaxBytes:    64 * 1024 * 1024,
		StripeMaxRowCount: 1 << 62,
	}
}

// ShouldFlush decides whether the stripe currently holding bufferedBytes
// bytes and rowCount rows, with dictionaryFull indicating the dictionary
// compression optimizer's aggregate dictionary memory has reached its
// almost-full threshold, must be flushed before the next chunk is buffered.
// StripeMinBytes only holds back a DICTIONARY_FULL flush, the same way
// Presto's DefaultOrcFlushPolicy avoids cutting a stripe early just
// because a dictionary got proactively full; MAX_ROWS and MAX_BYTES are
// hard caps and fire regardless of StripeMinBytes, since nothing else
// enforces the stripeRowCount <= StripeMaxRowCount invariant.
func (p FlushPolicy) ShouldFlush(bufferedBytes, rowCount int64, dictionaryFull bool) (bool, FlushReason) {
	if rowCount >= p.StripeMaxRowCount {
		return true, FlushReasonMaxRows
	}
	if bufferedBytes >= p.StripeMaxBytes {
		return true, FlushReasonMaxBytes
	}
	if dictionaryFull && bufferedBytes >= p.StripeMinBytes {
		return true, FlushReasonDictionaryFull
	}
	return false, FlushReasonNone
}

// maxChunkRows is the hard cap MaxChunkRowCount applies to any one page,
// independent of row-group/stripe remaining-row bookkeeping.
const maxChunkRows = 10000

// MaxChunkRowCount caps how many rows of page are buffered before the
// writer re-checks ShouldFlush, so a single huge page write cannot
// overshoot StripeMaxBytes by an unbounded amount; the writer further
// shrinks this against the row-group and stripe row counts remaining.
func (p FlushPolicy) MaxChunkRowCount(page [][]interface{}) int {
	if len(page) > maxChunkRows {
		return maxChunkRows
	}
	return len(page)
}
