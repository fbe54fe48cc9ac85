package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// DwrfStripeCacheWriter accumulates a copy of selected stripes' index
// streams and/or footers into one contiguous blob placed after the last
// stripe and before the metadata section, letting a DWRF reader avoid a second seek per stripe
// for small files, per spec §4.6.
type DwrfStripeCacheWriter struct {
	mode    orcproto.StripeCacheMode
	data    []byte
	offsets []uint32
}

// NewDwrfStripeCacheWriter returns a writer caching mode's selected
// sections, starting with a zero offset recorded for stripe 0.
func NewDwrfStripeCacheWriter(mode orcproto.StripeCacheMode) *DwrfStripeCacheWriter {
	return &DwrfStripeCacheWriter{mode: mode, offsets: []uint32{0}}
}

func (c *DwrfStripeCacheWriter) cachesIndex() bool {
	return c.mode == orcproto.StripeCacheMode_INDEX || c.mode == orcproto.StripeCacheMode_BOTH
}

func (c *DwrfStripeCacheWriter) cachesFooter() bool {
	return c.mode == orcproto.StripeCacheMode_FOOTER || c.mode == orcproto.StripeCacheMode_BOTH
}

// addIndexStreams appends one stripe's row-index stream bytes (already
// compressed) to the cache, if the cache mode includes index data.
func (c *DwrfStripeCacheWriter) addIndexStreams(streams []StreamDataOutput) {
	if !c.cachesIndex() {
		return
	}
	for _, s := range streams {
		if isIndexStream(s.Stream.Kind) {
			c.data = append(c.data, s.Data...)
		}
	}
}

// addStripeFooter appends one stripe's already-serialized footer bytes to
// the cache, if the cache mode includes footers, and records the new
// stripe boundary offset.
func (c *DwrfStripeCacheWriter) addStripeFooter(footer []byte) {
	if c.cachesFooter() {
		c.data = append(c.data, footer...)
	}
	c.offsets = append(c.offsets, uint32(len(c.data)))
}

// getDwrfStripeCacheData returns the assembled cache ready to serialize
// into the postscript's stripe-cache section.
func (c *DwrfStripeCacheWriter) getDwrfStripeCacheData() *orcproto.DwrfStripeCacheData {
	mode := c.mode
	return &orcproto.DwrfStripeCacheData{
		Data:    c.data,
		Offsets: c.getOffsets(),
		Mode:    &mode,
	}
}

// getOffsets returns the cumulative byte offset of each stripe's entry
// within the cache, one more entry than stripes written (a trailing
// sentinel at the current length).
func (c *DwrfStripeCacheWriter) getOffsets() []uint32 {
	return c.offsets
}
