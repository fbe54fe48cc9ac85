// Package orcproto defines the wire messages written by the metadata
// writer: stripe footers, the file metadata section, the file footer,
// the postscript, and the DWRF stripe-cache descriptor. The types follow
// the field layout of Apache ORC's and DWRF's own proto schemas closely
// enough to exercise a real protobuf runtime, without claiming binary
// compatibility with either.
package orcproto

// Stream_Kind identifies the role a stream plays for its owning column.
type Stream_Kind int32

const (
	Stream_PRESENT          Stream_Kind = 0
	Stream_DATA             Stream_Kind = 1
	Stream_LENGTH           Stream_Kind = 2
	Stream_DICTIONARY_DATA  Stream_Kind = 3
	Stream_DICTIONARY_COUNT Stream_Kind = 4
	Stream_SECONDARY        Stream_Kind = 5
	Stream_ROW_INDEX        Stream_Kind = 6
	Stream_BLOOM_FILTER     Stream_Kind = 7
)

var streamKindNames = map[Stream_Kind]string{
	Stream_PRESENT:          "PRESENT",
	Stream_DATA:             "DATA",
	Stream_LENGTH:           "LENGTH",
	Stream_DICTIONARY_DATA:  "DICTIONARY_DATA",
	Stream_DICTIONARY_COUNT: "DICTIONARY_COUNT",
	Stream_SECONDARY:        "SECONDARY",
	Stream_ROW_INDEX:        "ROW_INDEX",
	Stream_BLOOM_FILTER:     "BLOOM_FILTER",
}

func (k Stream_Kind) String() string {
	if s, ok := streamKindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ColumnEncoding_Kind identifies how a column's values are encoded.
type ColumnEncoding_Kind int32

const (
	ColumnEncoding_DIRECT        ColumnEncoding_Kind = 0
	ColumnEncoding_DICTIONARY    ColumnEncoding_Kind = 1
	ColumnEncoding_DIRECT_V2     ColumnEncoding_Kind = 2
	ColumnEncoding_DICTIONARY_V2 ColumnEncoding_Kind = 3
)

func (k ColumnEncoding_Kind) String() string {
	switch k {
	case ColumnEncoding_DIRECT:
		return "DIRECT"
	case ColumnEncoding_DICTIONARY:
		return "DICTIONARY"
	case ColumnEncoding_DIRECT_V2:
		return "DIRECT_V2"
	case ColumnEncoding_DICTIONARY_V2:
		return "DICTIONARY_V2"
	default:
		return "UNKNOWN"
	}
}

// Type_Kind is the category of a node in the flattened type tree.
type Type_Kind int32

const (
	Type_BOOLEAN   Type_Kind = 0
	Type_BYTE      Type_Kind = 1
	Type_SHORT     Type_Kind = 2
	Type_INT       Type_Kind = 3
	Type_LONG      Type_Kind = 4
	Type_FLOAT     Type_Kind = 5
	Type_DOUBLE    Type_Kind = 6
	Type_STRING    Type_Kind = 7
	Type_VARCHAR   Type_Kind = 8
	Type_CHAR      Type_Kind = 9
	Type_BINARY    Type_Kind = 10
	Type_TIMESTAMP Type_Kind = 11
	Type_DATE      Type_Kind = 12
	Type_DECIMAL   Type_Kind = 13
	Type_LIST      Type_Kind = 14
	Type_MAP       Type_Kind = 15
	Type_STRUCT    Type_Kind = 16
	Type_UNION     Type_Kind = 17
)

func (k Type_Kind) String() string {
	names := [...]string{
		"BOOLEAN", "BYTE", "SHORT", "INT", "LONG", "FLOAT", "DOUBLE",
		"STRING", "VARCHAR", "CHAR", "BINARY", "TIMESTAMP", "DATE",
		"DECIMAL", "LIST", "MAP", "STRUCT", "UNION",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "UNKNOWN"
}

// CompressionKind is the codec used to frame every stream and metadata
// section in the file.
type CompressionKind int32

const (
	CompressionKind_NONE   CompressionKind = 0
	CompressionKind_ZLIB   CompressionKind = 1
	CompressionKind_SNAPPY CompressionKind = 2
	CompressionKind_ZSTD   CompressionKind = 3
	CompressionKind_LZ4    CompressionKind = 4
)

func (k CompressionKind) String() string {
	switch k {
	case CompressionKind_NONE:
		return "NONE"
	case CompressionKind_ZLIB:
		return "ZLIB"
	case CompressionKind_SNAPPY:
		return "SNAPPY"
	case CompressionKind_ZSTD:
		return "ZSTD"
	case CompressionKind_LZ4:
		return "LZ4"
	default:
		return "UNKNOWN"
	}
}

// StripeCacheMode controls what the DWRF stripe cache holds.
type StripeCacheMode int32

const (
	StripeCacheMode_NONE   StripeCacheMode = 0
	StripeCacheMode_INDEX  StripeCacheMode = 1
	StripeCacheMode_FOOTER StripeCacheMode = 2
	StripeCacheMode_BOTH   StripeCacheMode = 3
)

func (m StripeCacheMode) String() string {
	switch m {
	case StripeCacheMode_NONE:
		return "NONE"
	case StripeCacheMode_INDEX:
		return "INDEX"
	case StripeCacheMode_FOOTER:
		return "FOOTER"
	case StripeCacheMode_BOTH:
		return "BOTH"
	default:
		return "UNKNOWN"
	}
}

type IntegerStatistics struct {
	Minimum              *int64   `protobuf:"zigzag64,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum              *int64   `protobuf:"zigzag64,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum                  *int64   `protobuf:"zigzag64,3,opt,name=sum" json:"sum,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *IntegerStatistics) Reset()         { *m = IntegerStatistics{} }
func (m *IntegerStatistics) String() string { return protoString(m) }
func (*IntegerStatistics) ProtoMessage()    {}

func (m *IntegerStatistics) GetMinimum() int64 {
	if m != nil && m.Minimum != nil {
		return *m.Minimum
	}
	return 0
}

func (m *IntegerStatistics) GetMaximum() int64 {
	if m != nil && m.Maximum != nil {
		return *m.Maximum
	}
	return 0
}

func (m *IntegerStatistics) GetSum() int64 {
	if m != nil && m.Sum != nil {
		return *m.Sum
	}
	return 0
}

type DoubleStatistics struct {
	Minimum              *float64 `protobuf:"fixed64,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum              *float64 `protobuf:"fixed64,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum                  *float64 `protobuf:"fixed64,3,opt,name=sum" json:"sum,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DoubleStatistics) Reset()         { *m = DoubleStatistics{} }
func (m *DoubleStatistics) String() string { return protoString(m) }
func (*DoubleStatistics) ProtoMessage()    {}

func (m *DoubleStatistics) GetMinimum() float64 {
	if m != nil && m.Minimum != nil {
		return *m.Minimum
	}
	return 0
}

func (m *DoubleStatistics) GetMaximum() float64 {
	if m != nil && m.Maximum != nil {
		return *m.Maximum
	}
	return 0
}

func (m *DoubleStatistics) GetSum() float64 {
	if m != nil && m.Sum != nil {
		return *m.Sum
	}
	return 0
}

type StringStatistics struct {
	Minimum              *string  `protobuf:"bytes,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum              *string  `protobuf:"bytes,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum                  *int64   `protobuf:"varint,3,opt,name=sum" json:"sum,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *StringStatistics) Reset()         { *m = StringStatistics{} }
func (m *StringStatistics) String() string { return protoString(m) }
func (*StringStatistics) ProtoMessage()    {}

func (m *StringStatistics) GetMinimum() string {
	if m != nil && m.Minimum != nil {
		return *m.Minimum
	}
	return ""
}

func (m *StringStatistics) GetMaximum() string {
	if m != nil && m.Maximum != nil {
		return *m.Maximum
	}
	return ""
}

func (m *StringStatistics) GetSum() int64 {
	if m != nil && m.Sum != nil {
		return *m.Sum
	}
	return 0
}

type BucketStatistics struct {
	Count                []uint64 `protobuf:"varint,1,rep,packed,name=count" json:"count,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *BucketStatistics) Reset()         { *m = BucketStatistics{} }
func (m *BucketStatistics) String() string { return protoString(m) }
func (*BucketStatistics) ProtoMessage()    {}

type DecimalStatistics struct {
	Minimum              *string  `protobuf:"bytes,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum              *string  `protobuf:"bytes,2,opt,name=maximum" json:"maximum,omitempty"`
	Sum                  *string  `protobuf:"bytes,3,opt,name=sum" json:"sum,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DecimalStatistics) Reset()         { *m = DecimalStatistics{} }
func (m *DecimalStatistics) String() string { return protoString(m) }
func (*DecimalStatistics) ProtoMessage()    {}

type DateStatistics struct {
	Minimum              *int32   `protobuf:"zigzag32,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum              *int32   `protobuf:"zigzag32,2,opt,name=maximum" json:"maximum,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DateStatistics) Reset()         { *m = DateStatistics{} }
func (m *DateStatistics) String() string { return protoString(m) }
func (*DateStatistics) ProtoMessage()    {}

type BinaryStatistics struct {
	Sum                  *int64   `protobuf:"varint,1,opt,name=sum" json:"sum,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *BinaryStatistics) Reset()         { *m = BinaryStatistics{} }
func (m *BinaryStatistics) String() string { return protoString(m) }
func (*BinaryStatistics) ProtoMessage()    {}

type TimestampStatistics struct {
	Minimum              *int64   `protobuf:"varint,1,opt,name=minimum" json:"minimum,omitempty"`
	Maximum              *int64   `protobuf:"varint,2,opt,name=maximum" json:"maximum,omitempty"`
	MinimumUtc           *int64   `protobuf:"varint,3,opt,name=minimumUtc" json:"minimumUtc,omitempty"`
	MaximumUtc           *int64   `protobuf:"varint,4,opt,name=maximumUtc" json:"maximumUtc,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *TimestampStatistics) Reset()         { *m = TimestampStatistics{} }
func (m *TimestampStatistics) String() string { return protoString(m) }
func (*TimestampStatistics) ProtoMessage()    {}

// MapStatisticsEntry records the size contributed by one flattened map key,
// used when ColumnWriterOptions.MapStatisticsEnabled is set.
type MapStatisticsEntry struct {
	Key                  *int64   `protobuf:"varint,1,opt,name=key" json:"key,omitempty"`
	Count                *int64   `protobuf:"varint,2,opt,name=count" json:"count,omitempty"`
	Size                 *int64   `protobuf:"varint,3,opt,name=size" json:"size,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MapStatisticsEntry) Reset()         { *m = MapStatisticsEntry{} }
func (m *MapStatisticsEntry) String() string { return protoString(m) }
func (*MapStatisticsEntry) ProtoMessage()    {}

type ColumnStatistics struct {
	NumberOfValues       *uint64               `protobuf:"varint,1,opt,name=numberOfValues" json:"numberOfValues,omitempty"`
	IntStatistics        *IntegerStatistics    `protobuf:"bytes,2,opt,name=intStatistics" json:"intStatistics,omitempty"`
	DoubleStatistics     *DoubleStatistics     `protobuf:"bytes,3,opt,name=doubleStatistics" json:"doubleStatistics,omitempty"`
	StringStatistics     *StringStatistics     `protobuf:"bytes,4,opt,name=stringStatistics" json:"stringStatistics,omitempty"`
	BucketStatistics     *BucketStatistics     `protobuf:"bytes,5,opt,name=bucketStatistics" json:"bucketStatistics,omitempty"`
	DecimalStatistics    *DecimalStatistics    `protobuf:"bytes,6,opt,name=decimalStatistics" json:"decimalStatistics,omitempty"`
	DateStatistics       *DateStatistics       `protobuf:"bytes,7,opt,name=dateStatistics" json:"dateStatistics,omitempty"`
	BinaryStatistics     *BinaryStatistics     `protobuf:"bytes,8,opt,name=binaryStatistics" json:"binaryStatistics,omitempty"`
	TimestampStatistics  *TimestampStatistics  `protobuf:"bytes,9,opt,name=timestampStatistics" json:"timestampStatistics,omitempty"`
	HasNull              *bool                 `protobuf:"varint,10,opt,name=hasNull" json:"hasNull,omitempty"`
	RawSize              *uint64               `protobuf:"varint,11,opt,name=rawSize" json:"rawSize,omitempty"`
	StorageSize          *uint64               `protobuf:"varint,12,opt,name=storageSize" json:"storageSize,omitempty"`
	MapStatistics        []*MapStatisticsEntry `protobuf:"bytes,13,rep,name=mapStatistics" json:"mapStatistics,omitempty"`
	XXX_NoUnkeyedLiteral struct{}              `json:"-"`
	XXX_unrecognized     []byte                `json:"-"`
	XXX_sizecache        int32                 `json:"-"`
}

func (m *ColumnStatistics) Reset()         { *m = ColumnStatistics{} }
func (m *ColumnStatistics) String() string { return protoString(m) }
func (*ColumnStatistics) ProtoMessage()    {}

func (m *ColumnStatistics) GetNumberOfValues() uint64 {
	if m != nil && m.NumberOfValues != nil {
		return *m.NumberOfValues
	}
	return 0
}

func (m *ColumnStatistics) GetHasNull() bool {
	return m != nil && m.HasNull != nil && *m.HasNull
}

func (m *ColumnStatistics) GetRawSize() uint64 {
	if m != nil && m.RawSize != nil {
		return *m.RawSize
	}
	return 0
}

func (m *ColumnStatistics) GetStorageSize() uint64 {
	if m != nil && m.StorageSize != nil {
		return *m.StorageSize
	}
	return 0
}

func (m *ColumnStatistics) GetStringStatistics() *StringStatistics {
	if m != nil {
		return m.StringStatistics
	}
	return nil
}

func (m *ColumnStatistics) HasRawSize() bool     { return m != nil && m.RawSize != nil }
func (m *ColumnStatistics) HasStorageSize() bool { return m != nil && m.StorageSize != nil }

type Stream struct {
	Column               *int32      `protobuf:"varint,1,opt,name=column" json:"column,omitempty"`
	Kind                 *Stream_Kind `protobuf:"varint,2,opt,name=kind,enum=orcproto.Stream_Kind" json:"kind,omitempty"`
	Length               *uint64     `protobuf:"varint,3,opt,name=length" json:"length,omitempty"`
	Offset               *uint64     `protobuf:"varint,4,opt,name=offset" json:"offset,omitempty"`
	XXX_NoUnkeyedLiteral struct{}    `json:"-"`
	XXX_unrecognized     []byte      `json:"-"`
	XXX_sizecache        int32       `json:"-"`
}

func (m *Stream) Reset()         { *m = Stream{} }
func (m *Stream) String() string { return protoString(m) }
func (*Stream) ProtoMessage()    {}

func (m *Stream) GetColumn() int32 {
	if m != nil && m.Column != nil {
		return *m.Column
	}
	return 0
}

func (m *Stream) GetKind() Stream_Kind {
	if m != nil && m.Kind != nil {
		return *m.Kind
	}
	return Stream_PRESENT
}

func (m *Stream) GetLength() uint64 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

func (m *Stream) HasOffset() bool { return m != nil && m.Offset != nil }

func (m *Stream) GetOffset() uint64 {
	if m != nil && m.Offset != nil {
		return *m.Offset
	}
	return 0
}

type ColumnEncoding struct {
	Kind                 *ColumnEncoding_Kind `protobuf:"varint,1,opt,name=kind,enum=orcproto.ColumnEncoding_Kind" json:"kind,omitempty"`
	DictionarySize       *uint32              `protobuf:"varint,2,opt,name=dictionarySize" json:"dictionarySize,omitempty"`
	XXX_NoUnkeyedLiteral struct{}             `json:"-"`
	XXX_unrecognized     []byte               `json:"-"`
	XXX_sizecache        int32                `json:"-"`
}

func (m *ColumnEncoding) Reset()         { *m = ColumnEncoding{} }
func (m *ColumnEncoding) String() string { return protoString(m) }
func (*ColumnEncoding) ProtoMessage()    {}

func (m *ColumnEncoding) GetKind() ColumnEncoding_Kind {
	if m != nil && m.Kind != nil {
		return *m.Kind
	}
	return ColumnEncoding_DIRECT
}

func (m *ColumnEncoding) GetDictionarySize() uint32 {
	if m != nil && m.DictionarySize != nil {
		return *m.DictionarySize
	}
	return 0
}

type OrcType struct {
	Kind                 *Type_Kind `protobuf:"varint,1,opt,name=kind,enum=orcproto.Type_Kind" json:"kind,omitempty"`
	FieldNames           []string   `protobuf:"bytes,2,rep,name=fieldNames" json:"fieldNames,omitempty"`
	FieldTypeIndexes     []uint32   `protobuf:"varint,3,rep,packed,name=fieldTypeIndexes" json:"fieldTypeIndexes,omitempty"`
	Precision            *uint32    `protobuf:"varint,4,opt,name=precision" json:"precision,omitempty"`
	Scale                *uint32    `protobuf:"varint,5,opt,name=scale" json:"scale,omitempty"`
	MaximumLength        *uint32    `protobuf:"varint,6,opt,name=maximumLength" json:"maximumLength,omitempty"`
	XXX_NoUnkeyedLiteral struct{}   `json:"-"`
	XXX_unrecognized     []byte     `json:"-"`
	XXX_sizecache        int32      `json:"-"`
}

func (m *OrcType) Reset()         { *m = OrcType{} }
func (m *OrcType) String() string { return protoString(m) }
func (*OrcType) ProtoMessage()    {}

func (m *OrcType) GetKind() Type_Kind {
	if m != nil && m.Kind != nil {
		return *m.Kind
	}
	return Type_STRUCT
}

func (m *OrcType) GetFieldTypeIndexes() []uint32 {
	if m != nil {
		return m.FieldTypeIndexes
	}
	return nil
}

type StripeInformation struct {
	Offset               *uint64  `protobuf:"varint,1,opt,name=offset" json:"offset,omitempty"`
	IndexLength          *uint64  `protobuf:"varint,2,opt,name=indexLength" json:"indexLength,omitempty"`
	DataLength           *uint64  `protobuf:"varint,3,opt,name=dataLength" json:"dataLength,omitempty"`
	FooterLength         *uint64  `protobuf:"varint,4,opt,name=footerLength" json:"footerLength,omitempty"`
	NumberOfRows         *uint64  `protobuf:"varint,5,opt,name=numberOfRows" json:"numberOfRows,omitempty"`
	RawDataSize          *uint64  `protobuf:"varint,6,opt,name=rawDataSize" json:"rawDataSize,omitempty"`
	EncryptedLocalKeys   [][]byte `protobuf:"bytes,7,rep,name=encryptedLocalKeys" json:"encryptedLocalKeys,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *StripeInformation) Reset()         { *m = StripeInformation{} }
func (m *StripeInformation) String() string { return protoString(m) }
func (*StripeInformation) ProtoMessage()    {}

func (m *StripeInformation) GetNumberOfRows() uint64 {
	if m != nil && m.NumberOfRows != nil {
		return *m.NumberOfRows
	}
	return 0
}

type StripeFooter struct {
	Streams              []*Stream         `protobuf:"bytes,1,rep,name=streams" json:"streams,omitempty"`
	Columns              []*ColumnEncoding `protobuf:"bytes,2,rep,name=columns" json:"columns,omitempty"`
	EncryptedGroups      [][]byte          `protobuf:"bytes,3,rep,name=encryptedGroups" json:"encryptedGroups,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *StripeFooter) Reset()         { *m = StripeFooter{} }
func (m *StripeFooter) String() string { return protoString(m) }
func (*StripeFooter) ProtoMessage()    {}

type StripeEncryptionGroup struct {
	Streams              []*Stream         `protobuf:"bytes,1,rep,name=streams" json:"streams,omitempty"`
	Encodings            []*ColumnEncoding `protobuf:"bytes,2,rep,name=encodings" json:"encodings,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *StripeEncryptionGroup) Reset()         { *m = StripeEncryptionGroup{} }
func (m *StripeEncryptionGroup) String() string { return protoString(m) }
func (*StripeEncryptionGroup) ProtoMessage()    {}

type StripeStatistics struct {
	ColStats             []*ColumnStatistics `protobuf:"bytes,1,rep,name=colStats" json:"colStats,omitempty"`
	XXX_NoUnkeyedLiteral struct{}            `json:"-"`
	XXX_unrecognized     []byte              `json:"-"`
	XXX_sizecache        int32               `json:"-"`
}

func (m *StripeStatistics) Reset()         { *m = StripeStatistics{} }
func (m *StripeStatistics) String() string { return protoString(m) }
func (*StripeStatistics) ProtoMessage()    {}

func (m *StripeStatistics) GetColStats() []*ColumnStatistics {
	if m != nil {
		return m.ColStats
	}
	return nil
}

type RowIndexEntry struct {
	Positions            []uint64          `protobuf:"varint,1,rep,packed,name=positions" json:"positions,omitempty"`
	Statistics            *ColumnStatistics `protobuf:"bytes,2,opt,name=statistics" json:"statistics,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *RowIndexEntry) Reset()         { *m = RowIndexEntry{} }
func (m *RowIndexEntry) String() string { return protoString(m) }
func (*RowIndexEntry) ProtoMessage()    {}

func (m *RowIndexEntry) GetStatistics() *ColumnStatistics {
	if m != nil {
		return m.Statistics
	}
	return nil
}

type RowIndex struct {
	Entry                []*RowIndexEntry `protobuf:"bytes,1,rep,name=entry" json:"entry,omitempty"`
	XXX_NoUnkeyedLiteral struct{}         `json:"-"`
	XXX_unrecognized     []byte           `json:"-"`
	XXX_sizecache        int32            `json:"-"`
}

func (m *RowIndex) Reset()         { *m = RowIndex{} }
func (m *RowIndex) String() string { return protoString(m) }
func (*RowIndex) ProtoMessage()    {}

func (m *RowIndex) GetEntry() []*RowIndexEntry {
	if m != nil {
		return m.Entry
	}
	return nil
}

type Metadata struct {
	StripeStats          []*StripeStatistics `protobuf:"bytes,1,rep,name=stripeStats" json:"stripeStats,omitempty"`
	XXX_NoUnkeyedLiteral struct{}            `json:"-"`
	XXX_unrecognized     []byte              `json:"-"`
	XXX_sizecache        int32               `json:"-"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return protoString(m) }
func (*Metadata) ProtoMessage()    {}

type UserMetadataItem struct {
	Name                 *string  `protobuf:"bytes,1,opt,name=name" json:"name,omitempty"`
	Value                []byte   `protobuf:"bytes,2,opt,name=value" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *UserMetadataItem) Reset()         { *m = UserMetadataItem{} }
func (m *UserMetadataItem) String() string { return protoString(m) }
func (*UserMetadataItem) ProtoMessage()    {}

type EncryptionGroup struct {
	Nodes                []uint32 `protobuf:"varint,1,rep,packed,name=nodes" json:"nodes,omitempty"`
	KeyMetadata          []byte   `protobuf:"bytes,2,opt,name=keyMetadata" json:"keyMetadata,omitempty"`
	Statistics           [][]byte `protobuf:"bytes,3,rep,name=statistics" json:"statistics,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *EncryptionGroup) Reset()         { *m = EncryptionGroup{} }
func (m *EncryptionGroup) String() string { return protoString(m) }
func (*EncryptionGroup) ProtoMessage()    {}

type DwrfEncryption struct {
	KeyProvider          *string            `protobuf:"bytes,1,opt,name=keyProvider" json:"keyProvider,omitempty"`
	Groups               []*EncryptionGroup `protobuf:"bytes,2,rep,name=groups" json:"groups,omitempty"`
	XXX_NoUnkeyedLiteral struct{}           `json:"-"`
	XXX_unrecognized     []byte             `json:"-"`
	XXX_sizecache        int32              `json:"-"`
}

func (m *DwrfEncryption) Reset()         { *m = DwrfEncryption{} }
func (m *DwrfEncryption) String() string { return protoString(m) }
func (*DwrfEncryption) ProtoMessage()    {}

type FileStatistics struct {
	Statistics           []*ColumnStatistics `protobuf:"bytes,1,rep,name=statistics" json:"statistics,omitempty"`
	XXX_NoUnkeyedLiteral struct{}            `json:"-"`
	XXX_unrecognized     []byte              `json:"-"`
	XXX_sizecache        int32               `json:"-"`
}

func (m *FileStatistics) Reset()         { *m = FileStatistics{} }
func (m *FileStatistics) String() string { return protoString(m) }
func (*FileStatistics) ProtoMessage()    {}

type Footer struct {
	NumberOfRows         *uint64           `protobuf:"varint,1,opt,name=numberOfRows" json:"numberOfRows,omitempty"`
	RowIndexStride       *uint32           `protobuf:"varint,2,opt,name=rowIndexStride" json:"rowIndexStride,omitempty"`
	RawSize              *uint64           `protobuf:"varint,3,opt,name=rawSize" json:"rawSize,omitempty"`
	Stripes              []*StripeInformation `protobuf:"bytes,4,rep,name=stripes" json:"stripes,omitempty"`
	Types                []*OrcType        `protobuf:"bytes,5,rep,name=types" json:"types,omitempty"`
	Statistics           []*ColumnStatistics `protobuf:"bytes,6,rep,name=statistics" json:"statistics,omitempty"`
	Metadata             []*UserMetadataItem `protobuf:"bytes,7,rep,name=metadata" json:"metadata,omitempty"`
	Encryption           *DwrfEncryption   `protobuf:"bytes,8,opt,name=encryption" json:"encryption,omitempty"`
	StripeCacheOffsets   []uint32          `protobuf:"varint,9,rep,packed,name=stripeCacheOffsets" json:"stripeCacheOffsets,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *Footer) Reset()         { *m = Footer{} }
func (m *Footer) String() string { return protoString(m) }
func (*Footer) ProtoMessage()    {}

type PostScript struct {
	FooterLength         *uint64          `protobuf:"varint,1,opt,name=footerLength" json:"footerLength,omitempty"`
	Compression          *CompressionKind `protobuf:"varint,2,opt,name=compression,enum=orcproto.CompressionKind" json:"compression,omitempty"`
	CompressionBlockSize *uint64          `protobuf:"varint,3,opt,name=compressionBlockSize" json:"compressionBlockSize,omitempty"`
	MetadataLength       *uint64          `protobuf:"varint,4,opt,name=metadataLength" json:"metadataLength,omitempty"`
	Magic                *string          `protobuf:"bytes,5,opt,name=magic" json:"magic,omitempty"`
	StripeCacheLength    *uint32          `protobuf:"varint,6,opt,name=stripeCacheLength" json:"stripeCacheLength,omitempty"`
	StripeCacheMode      *StripeCacheMode `protobuf:"varint,7,opt,name=stripeCacheMode,enum=orcproto.StripeCacheMode" json:"stripeCacheMode,omitempty"`
	XXX_NoUnkeyedLiteral struct{}         `json:"-"`
	XXX_unrecognized     []byte           `json:"-"`
	XXX_sizecache        int32            `json:"-"`
}

func (m *PostScript) Reset()         { *m = PostScript{} }
func (m *PostScript) String() string { return protoString(m) }
func (*PostScript) ProtoMessage()    {}

func (m *PostScript) GetFooterLength() uint64 {
	if m != nil && m.FooterLength != nil {
		return *m.FooterLength
	}
	return 0
}

type DwrfStripeCacheData struct {
	Data                 []byte           `protobuf:"bytes,1,opt,name=data" json:"data,omitempty"`
	Offsets              []uint32         `protobuf:"varint,2,rep,packed,name=offsets" json:"offsets,omitempty"`
	Mode                 *StripeCacheMode `protobuf:"varint,3,opt,name=mode,enum=orcproto.StripeCacheMode" json:"mode,omitempty"`
	XXX_NoUnkeyedLiteral struct{}         `json:"-"`
	XXX_unrecognized     []byte           `json:"-"`
	XXX_sizecache        int32            `json:"-"`
}

func (m *DwrfStripeCacheData) Reset()         { *m = DwrfStripeCacheData{} }
func (m *DwrfStripeCacheData) String() string { return protoString(m) }
func (*DwrfStripeCacheData) ProtoMessage()    {}
