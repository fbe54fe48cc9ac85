package orc

import "github.com/Sullivan-Patrick/orc/orcproto"

// cloneColumnStatistics returns an independent copy of in, so accumulating
// a group's encrypted file-statistics bucket never aliases the same
// *orcproto.ColumnStatistics object the plain footer statistics list holds.
func cloneColumnStatistics(in *orcproto.ColumnStatistics) *orcproto.ColumnStatistics {
	return mergeStatisticsProto(&orcproto.ColumnStatistics{}, in)
}

// strippedStatistics returns the reduced {count, rawSize, storageSize}
// entry spec step 3 mandates for every node inside an encryption group,
// discarding the type-specific min/max/sum fields that would otherwise
// leak plaintext bounds through the unencrypted footer statistics list.
func strippedStatistics(full *orcproto.ColumnStatistics) *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{
		NumberOfValues: full.NumberOfValues,
		RawSize:        full.RawSize,
	}
	if full.HasNull != nil {
		hn := *full.HasNull
		out.HasNull = &hn
	}
	if full.StorageSize != nil {
		ss := *full.StorageSize
		out.StorageSize = &ss
	}
	return out
}

// splitEncryptedFileStatistics walks the flattened type tree depth-first
// from root, the way the original writer's statistics packaging splits
// encrypted from plain nodes before sealing the footer. Nodes outside any
// encryption group keep their full accumulated statistics in the returned
// dense list (indexed by node id). Nodes inside a group are reduced to
// strippedStatistics in that same list, and their full statistics are
// merged into a bucket keyed by enc.RootFor(id) -- the subtree-root node
// id that node was registered under via AddGroup -- so a group spanning
// several disjoint subtrees produces one bucket per subtree root, matching
// the repeated EncryptionGroup.Statistics field's cardinality. The root
// for each node comes directly from EncryptionInfo's own bookkeeping
// rather than being re-derived from recursion state, since GroupFor alone
// cannot tell a subtree root apart from one of its encrypted descendants.
func splitEncryptedFileStatistics(schema *TypeDescription, fileStats map[int]*orcproto.ColumnStatistics, enc *EncryptionInfo, nodeCount int) ([]*orcproto.ColumnStatistics, map[int]*orcproto.ColumnStatistics) {
	out := make([]*orcproto.ColumnStatistics, nodeCount)
	rootStats := make(map[int]*orcproto.ColumnStatistics)

	var walk func(node *TypeDescription)
	walk = func(node *TypeDescription) {
		id := node.ID()
		full := fileStats[id]
		if full == nil {
			full = &orcproto.ColumnStatistics{}
		}
		if enc != nil {
			if _, ok := enc.GroupFor(id); ok {
				root, _ := enc.RootFor(id)
				out[id] = strippedStatistics(full)
				if existing, ok := rootStats[root]; ok {
					mergeStatisticsProto(existing, full)
				} else {
					rootStats[root] = cloneColumnStatistics(full)
				}
				for _, child := range node.Children() {
					walk(child)
				}
				return
			}
		}
		out[id] = full
		for _, child := range node.Children() {
			walk(child)
		}
	}
	walk(schema)
	return out, rootStats
}
