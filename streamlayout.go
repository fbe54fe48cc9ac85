package orc

import "sort"

// streamLayout orders a stripe's data streams for the data region: grouped
// by column in ascending node-id order (so a reader can seek directly to
// any column's streams), and within a column by streamKindOrder then by
// size, matching spec §4.3 step 3.
func streamLayout(streams []StreamDataOutput) []StreamDataOutput {
	out := make([]StreamDataOutput, len(streams))
	copy(out, streams)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Stream.Column != b.Stream.Column {
			return a.Stream.Column < b.Stream.Column
		}
		ra, oka := streamKindOrder[a.Stream.Kind]
		rb, okb := streamKindOrder[b.Stream.Kind]
		if !oka {
			ra = len(streamKindOrder)
		}
		if !okb {
			rb = len(streamKindOrder)
		}
		if ra != rb {
			return ra < rb
		}
		return a.Size() < b.Size()
	})
	return out
}
