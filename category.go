package orc

import (
	"fmt"

	"github.com/Sullivan-Patrick/orc/orcproto"
)

// Category is the kind of a TypeDescription node, mirroring the Java
// TypeDescription.Category enum this writer's node numbering is grounded on.
type Category int

const (
	CategoryBoolean Category = iota
	CategoryByte
	CategoryShort
	CategoryInt
	CategoryLong
	CategoryFloat
	CategoryDouble
	CategoryString
	CategoryVarchar
	CategoryChar
	CategoryBinary
	CategoryTimestamp
	CategoryDate
	CategoryDecimal
	CategoryList
	CategoryMap
	CategoryStruct
	CategoryUnion
)

var categoryNames = [...]string{
	"boolean", "byte", "short", "int", "long", "float", "double",
	"string", "varchar", "char", "binary", "timestamp", "date",
	"decimal", "array", "map", "struct", "uniontype",
}

func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

func (c Category) isPrimitive() bool {
	return c != CategoryList && c != CategoryMap && c != CategoryStruct && c != CategoryUnion
}

var categoryToKind = map[Category]orcproto.Type_Kind{
	CategoryBoolean:   orcproto.Type_BOOLEAN,
	CategoryByte:      orcproto.Type_BYTE,
	CategoryShort:     orcproto.Type_SHORT,
	CategoryInt:       orcproto.Type_INT,
	CategoryLong:      orcproto.Type_LONG,
	CategoryFloat:     orcproto.Type_FLOAT,
	CategoryDouble:    orcproto.Type_DOUBLE,
	CategoryString:    orcproto.Type_STRING,
	CategoryVarchar:   orcproto.Type_VARCHAR,
	CategoryChar:      orcproto.Type_CHAR,
	CategoryBinary:    orcproto.Type_BINARY,
	CategoryTimestamp: orcproto.Type_TIMESTAMP,
	CategoryDate:      orcproto.Type_DATE,
	CategoryDecimal:   orcproto.Type_DECIMAL,
	CategoryList:      orcproto.Type_LIST,
	CategoryMap:       orcproto.Type_MAP,
	CategoryStruct:    orcproto.Type_STRUCT,
	CategoryUnion:     orcproto.Type_UNION,
}

// TypeDescription is a node in the schema's type tree. Nodes are assigned a
// dense depth-first id by Flatten, matching createNodeIdToColumnMap in the
// original writer: node 0 is always the synthetic root struct.
type TypeDescription struct {
	category  Category
	id        int
	maxID     int
	fieldName string
	children  []*TypeDescription
	precision int
	scale     int
	maxLength int
}

// NewTypeDescription returns a leaf or container node of the given category.
// Container categories (struct/list/map/union) start with no children;
// use AddField/AddChild to populate them before calling Flatten.
func NewTypeDescription(category Category) *TypeDescription {
	return &TypeDescription{category: category, id: -1}
}

// AddField appends a named child to a struct node and returns the receiver
// for chaining.
func (t *TypeDescription) AddField(name string, child *TypeDescription) *TypeDescription {
	child.fieldName = name
	t.children = append(t.children, child)
	return t
}

// AddChild appends an unnamed child (list element type, map key/value type,
// or union branch) and returns the receiver for chaining.
func (t *TypeDescription) AddChild(child *TypeDescription) *TypeDescription {
	t.children = append(t.children, child)
	return t
}

// SetPrecisionScale sets the precision/scale of a decimal node.
func (t *TypeDescription) SetPrecisionScale(precision, scale int) *TypeDescription {
	t.precision = precision
	t.scale = scale
	return t
}

// SetMaxLength sets the maximum length of a varchar/char node.
func (t *TypeDescription) SetMaxLength(n int) *TypeDescription {
	t.maxLength = n
	return t
}

// ID returns the node's dense depth-first id, valid only after Flatten.
func (t *TypeDescription) ID() int { return t.id }

// Category returns the node's category.
func (t *TypeDescription) Category() Category { return t.category }

// Children returns the node's children in declaration order.
func (t *TypeDescription) Children() []*TypeDescription { return t.children }

// Flatten assigns dense depth-first ids to every node in the tree rooted at
// t and returns the nodes indexed by id, the way createNodeIdToColumnMap
// walks the OrcType list in the original writer.
func Flatten(root *TypeDescription) []*TypeDescription {
	var nodes []*TypeDescription
	var walk func(n *TypeDescription)
	walk = func(n *TypeDescription) {
		n.id = len(nodes)
		nodes = append(nodes, n)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	for _, n := range nodes {
		n.maxID = len(nodes) - 1
	}
	return nodes
}

// ToOrcType converts a flattened node to its wire representation.
func (t *TypeDescription) ToOrcType() *orcproto.OrcType {
	kind := categoryToKind[t.category]
	ot := &orcproto.OrcType{Kind: &kind}
	for _, c := range t.children {
		id := uint32(c.id)
		ot.FieldTypeIndexes = append(ot.FieldTypeIndexes, id)
		if c.fieldName != "" {
			ot.FieldNames = append(ot.FieldNames, c.fieldName)
		}
	}
	if t.category == CategoryDecimal {
		p := uint32(t.precision)
		s := uint32(t.scale)
		ot.Precision = &p
		ot.Scale = &s
	}
	if t.category == CategoryVarchar || t.category == CategoryChar {
		l := uint32(t.maxLength)
		ot.MaximumLength = &l
	}
	return ot
}

// Struct is a convenience constructor for a struct node with no fields yet.
func Struct() *TypeDescription { return NewTypeDescription(CategoryStruct) }

// validateRowShape checks a row's arity against a struct schema's direct
// field count, returning ErrRowShape on mismatch.
func validateRowShape(schema *TypeDescription, row []interface{}) error {
	if schema.category != CategoryStruct {
		return fmt.Errorf("orc: schema root must be struct, got %s", schema.category)
	}
	if len(row) != len(schema.children) {
		return ErrRowShape
	}
	return nil
}
