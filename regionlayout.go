package orc

import "sort"

// taggedStream pairs a stream with the encryption region it belongs to:
// group is the encryption group id owning the stream's column, or
// plainRegion if the column is unencrypted. It is the unit
// buildStripeRegions assembles and assignRegionOffsets walks over.
type taggedStream struct {
	StreamDataOutput
	group int
}

// plainRegion tags a stream that belongs to no encryption group.
const plainRegion = -1

// buildStripeRegions lays out one stripe's index and data streams into a
// single physical sequence: the whole index region first (every column's
// ROW_INDEX stream, plain streams before grouped ones, each partition in
// column order), then the whole data region (same partitioning, each
// partition ordered by streamLayout), matching spec §4.3 step 2's index-
// region-then-data-region stripe structure. indexCount reports how many
// leading entries of the returned slice belong to the index region, so the
// caller can sum StripeInformation.IndexLength/DataLength separately.
func buildStripeRegions(indexStreams, dataStreams []StreamDataOutput, groupOf func(column int) (int, bool)) (combined []taggedStream, indexCount int) {
	tag := func(streams []StreamDataOutput) (plain, grouped []taggedStream) {
		for _, s := range streams {
			group := plainRegion
			if g, ok := groupOf(s.Stream.Column); ok {
				group = g
			}
			t := taggedStream{StreamDataOutput: s, group: group}
			if group == plainRegion {
				plain = append(plain, t)
			} else {
				grouped = append(grouped, t)
			}
		}
		return plain, grouped
	}

	groupOrder := func(streams []taggedStream) []taggedStream {
		sort.SliceStable(streams, func(i, j int) bool { return streams[i].group < streams[j].group })
		return streams
	}

	indexPlain, indexGrouped := tag(indexStreams)
	dataPlain, dataGrouped := tag(dataStreams)

	dataPlainLaidOut := streamLayout(untag(dataPlain))
	dataGroupedByGroup := splitByGroup(dataGrouped)

	region := append([]taggedStream{}, indexPlain...)
	region = append(region, groupOrder(indexGrouped)...)
	indexCount = len(region)

	region = append(region, retag(dataPlainLaidOut, plainRegion)...)
	groups := sortedGroups(dataGroupedByGroup)
	for _, g := range groups {
		laidOut := streamLayout(untag(dataGroupedByGroup[g]))
		region = append(region, retag(laidOut, g)...)
	}
	return region, indexCount
}

func untag(ts []taggedStream) []StreamDataOutput {
	out := make([]StreamDataOutput, len(ts))
	for i, t := range ts {
		out[i] = t.StreamDataOutput
	}
	return out
}

func retag(streams []StreamDataOutput, group int) []taggedStream {
	out := make([]taggedStream, len(streams))
	for i, s := range streams {
		out[i] = taggedStream{StreamDataOutput: s, group: group}
	}
	return out
}

func splitByGroup(ts []taggedStream) map[int][]taggedStream {
	out := make(map[int][]taggedStream)
	for _, t := range ts {
		out[t.group] = append(out[t.group], t)
	}
	return out
}

func sortedGroups(byGroup map[int][]taggedStream) []int {
	groups := make([]int, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Ints(groups)
	return groups
}

// assignRegionOffsets sets StreamDescriptor.Offset on the first stream of
// every run of consecutive same-region entries in combined, matching the
// invariant that a stream's offset is present iff it begins a new
// encryption-region boundary; every other stream's position is implied by
// summing the lengths of the streams before it in the same region. offset
// is a running byte count over the whole combined sequence (index region
// followed by data region), since a reader reconstructs a region's stream
// bytes as one contiguous run starting from that boundary offset.
func assignRegionOffsets(combined []taggedStream) {
	var offset int64
	prevGroup := plainRegion
	first := true
	for i := range combined {
		if first || combined[i].group != prevGroup {
			o := offset
			combined[i].Stream.Offset = &o
			prevGroup = combined[i].group
			first = false
		}
		offset += combined[i].Size()
	}
}

// splitStripeRegions separates combined back into the plain stream list
// (for the stripe's main footer) and one stream list per encryption group
// (for that group's StripeEncryptionGroup), each preserving combined's
// order (index entries before data entries within the partition).
func splitStripeRegions(combined []taggedStream) (plain []StreamDataOutput, byGroup map[int][]StreamDataOutput) {
	byGroup = make(map[int][]StreamDataOutput)
	for _, t := range combined {
		if t.group == plainRegion {
			plain = append(plain, t.StreamDataOutput)
		} else {
			byGroup[t.group] = append(byGroup[t.group], t.StreamDataOutput)
		}
	}
	return plain, byGroup
}
