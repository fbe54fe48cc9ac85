package orcproto

import "github.com/golang/protobuf/proto"

// protoString backs every message's String() method with the same
// reflection-based compact text formatter golang/protobuf uses for
// generated types.
func protoString(m proto.Message) string {
	return proto.CompactTextString(m)
}
