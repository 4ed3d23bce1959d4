package multisig

import (
	"github.com/gogo/protobuf/proto"
)

// The messages of codec.proto, maintained by hand rather than generated.
// Field numbers and names in the struct tags must match codec.proto; proto
// encodes through these tags.

type PendingAction struct {
	Kind        string   `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Nonce       uint64   `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	SignalledAt int64    `protobuf:"varint,3,opt,name=signalled_at,json=signalledAt,proto3" json:"signalled_at,omitempty"`
	Signers     [][]byte `protobuf:"bytes,4,rep,name=signers,proto3" json:"signers,omitempty"`
}

func (m *PendingAction) Reset()         { *m = PendingAction{} }
func (m *PendingAction) String() string { return proto.CompactTextString(m) }
func (*PendingAction) ProtoMessage()    {}

type Governance struct {
	Signers           [][]byte `protobuf:"bytes,1,rep,name=signers,proto3" json:"signers,omitempty"`
	MinAuthorizations uint64   `protobuf:"varint,2,opt,name=min_authorizations,json=minAuthorizations,proto3" json:"min_authorizations,omitempty"`
}

func (m *Governance) Reset()         { *m = Governance{} }
func (m *Governance) String() string { return proto.CompactTextString(m) }
func (*Governance) ProtoMessage()    {}

type Configuration struct {
	TimelockSeconds int64  `protobuf:"varint,1,opt,name=timelock_seconds,json=timelockSeconds,proto3" json:"timelock_seconds,omitempty"`
	MaxSigners      uint32 `protobuf:"varint,2,opt,name=max_signers,json=maxSigners,proto3" json:"max_signers,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func init() {
	proto.RegisterType((*PendingAction)(nil), "multisig.PendingAction")
	proto.RegisterType((*Governance)(nil), "multisig.Governance")
	proto.RegisterType((*Configuration)(nil), "multisig.Configuration")
}
