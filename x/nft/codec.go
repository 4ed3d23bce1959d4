package nft

import (
	"github.com/gogo/protobuf/proto"
)

// The messages of codec.proto, maintained by hand rather than generated.
// Field numbers and names in the struct tags must match codec.proto; proto
// encodes through these tags.

type Token struct {
	Owner    []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Approved []byte `protobuf:"bytes,2,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

type Count struct {
	Value uint64 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Count) Reset()         { *m = Count{} }
func (m *Count) String() string { return proto.CompactTextString(m) }
func (*Count) ProtoMessage()    {}

type Operator struct {
	Approved bool `protobuf:"varint,1,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (m *Operator) Reset()         { *m = Operator{} }
func (m *Operator) String() string { return proto.CompactTextString(m) }
func (*Operator) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Token)(nil), "nft.Token")
	proto.RegisterType((*Count)(nil), "nft.Count")
	proto.RegisterType((*Operator)(nil), "nft.Operator")
}
