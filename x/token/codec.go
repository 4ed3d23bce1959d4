package token

import (
	"github.com/gogo/protobuf/proto"
)

// The messages of codec.proto, maintained by hand rather than generated.
// Field numbers and names in the struct tags must match codec.proto; proto
// encodes through these tags.

type Amount struct {
	Value []byte `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Amount) Reset()         { *m = Amount{} }
func (m *Amount) String() string { return proto.CompactTextString(m) }
func (*Amount) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Amount)(nil), "token.Amount")
}
