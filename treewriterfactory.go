package orc

import "fmt"

// createColumnWriter builds the ColumnWriter tree for schema, one writer
// per flattened node, adapted from treewriterfactory.go's createTreeWriter
// dispatch-by-category switch. node 0 (the synthetic root struct) is
// always non-nullable, matching the original writer's root-is-never-null
// invariant.
func createColumnWriter(node *TypeDescription, codec CompressionCodec, chunkSize int) (ColumnWriter, error) {
	nullable := node.ID() != 0
	switch node.Category() {
	case CategoryBoolean:
		return NewBooleanColumnWriter(node.ID(), nullable, codec, chunkSize), nil
	case CategoryShort, CategoryInt, CategoryLong:
		return NewIntColumnWriter(node.ID(), node.Category(), nullable, codec, chunkSize), nil
	case CategoryString, CategoryVarchar, CategoryChar:
		return NewStringColumnWriter(node.ID(), node.Category(), nullable, codec, chunkSize), nil
	case CategoryStruct:
		children := make([]ColumnWriter, 0, len(node.Children()))
		for _, child := range node.Children() {
			childWriter, err := createColumnWriter(child, codec, chunkSize)
			if err != nil {
				return nil, err
			}
			children = append(children, childWriter)
		}
		return NewStructColumnWriter(node.ID(), nullable, codec, chunkSize, children), nil
	default:
		return nil, fmt.Errorf("orc: unsupported column category: %s", node.Category())
	}
}

// walkColumnWriters visits w and every descendant depth-first in the same
// order Flatten assigns node ids, matching createNodeIdToColumnMap's
// traversal so per-node stripe footer entries line up with the type list.
func walkColumnWriters(w ColumnWriter, visit func(ColumnWriter)) {
	visit(w)
	for _, child := range w.Children() {
		walkColumnWriters(child, visit)
	}
}
