package orc

import (
	"github.com/Sullivan-Patrick/orc/orcproto"
	"github.com/golang/protobuf/proto"
)

// marshalStripeFooter serializes a stripe's stream descriptors and column
// encodings, mirroring the original writer's writeStripeFooter step.
func marshalStripeFooter(streams []StreamDataOutput, encodings []*orcproto.ColumnEncoding, encryptedGroups [][]byte) ([]byte, error) {
	footer := &orcproto.StripeFooter{Columns: encodings, EncryptedGroups: encryptedGroups}
	for _, s := range streams {
		footer.Streams = append(footer.Streams, s.Stream.ToProto())
	}
	return proto.Marshal(footer)
}

// marshalStripeEncryptionGroup serializes the streams and encodings of one
// encrypted column group, written alongside (but separately sealed from)
// the regular stripe footer.
func marshalStripeEncryptionGroup(streams []StreamDataOutput, encodings []*orcproto.ColumnEncoding) ([]byte, error) {
	group := &orcproto.StripeEncryptionGroup{Encodings: encodings}
	for _, s := range streams {
		group.Streams = append(group.Streams, s.Stream.ToProto())
	}
	return proto.Marshal(group)
}

// marshalRowIndex serializes one column's accumulated row-group entries
// into the bytes carried by its ROW_INDEX stream, mirroring writeRowIndex.
func marshalRowIndex(entries []*orcproto.RowIndexEntry) ([]byte, error) {
	return proto.Marshal(&orcproto.RowIndex{Entry: entries})
}

// marshalColumnStatistics serializes one column's statistics on their own,
// used to seal an encryption group's file-level statistics blob separately
// from the footer's plain Statistics list.
func marshalColumnStatistics(stats *orcproto.ColumnStatistics) ([]byte, error) {
	return proto.Marshal(stats)
}

// marshalMetadata serializes the per-stripe statistics section that sits
// between the data and the file footer, mirroring writeMetadata.
func marshalMetadata(stripeStats []*orcproto.StripeStatistics) ([]byte, error) {
	return proto.Marshal(&orcproto.Metadata{StripeStats: stripeStats})
}

// marshalStripeCache serializes the DWRF stripe cache section written
// between the last stripe and the metadata section.
func marshalStripeCache(data *orcproto.DwrfStripeCacheData) ([]byte, error) {
	return proto.Marshal(data)
}

// footerParams carries everything marshalFooter needs to assemble the file
// footer, split out so Writer.close stays readable.
type footerParams struct {
	numberOfRows       uint64
	rowIndexStride     uint32
	rawSize            uint64
	stripes            []*orcproto.StripeInformation
	types              []*orcproto.OrcType
	statistics         []*orcproto.ColumnStatistics
	userMetadata       []*orcproto.UserMetadataItem
	encryption         *orcproto.DwrfEncryption
	stripeCacheOffsets []uint32
}

func marshalFooter(p footerParams) ([]byte, error) {
	rows, stride, rawSize := p.numberOfRows, p.rowIndexStride, p.rawSize
	footer := &orcproto.Footer{
		NumberOfRows:       &rows,
		RowIndexStride:     &stride,
		RawSize:            &rawSize,
		Stripes:            p.stripes,
		Types:              p.types,
		Statistics:         p.statistics,
		Metadata:           p.userMetadata,
		Encryption:         p.encryption,
		StripeCacheOffsets: p.stripeCacheOffsets,
	}
	return proto.Marshal(footer)
}

// postScriptMagic is the default file-magic bytes, matching FormatORC;
// kept as a named constant for the common case, even though the actual
// bytes written are selected per-Writer by FileFormat.magic().
const postScriptMagic = "ORC"

func marshalPostScript(magicBytes string, footerLength uint64, compression orcproto.CompressionKind, chunkSize uint64, metadataLength uint64, stripeCacheLength uint32, stripeCacheMode orcproto.StripeCacheMode) ([]byte, error) {
	magic := magicBytes
	ps := &orcproto.PostScript{
		FooterLength:         &footerLength,
		Compression:          &compression,
		CompressionBlockSize: &chunkSize,
		MetadataLength:       &metadataLength,
		Magic:                &magic,
	}
	if stripeCacheLength > 0 {
		ps.StripeCacheLength = &stripeCacheLength
		ps.StripeCacheMode = &stripeCacheMode
	}
	return proto.Marshal(ps)
}
