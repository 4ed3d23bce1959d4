package multisig

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/zkelabs/quorum"
)

// EventType names a lifecycle transition.
type EventType string

const (
	EventSignal EventType = "signal"
	EventSign   EventType = "sign"
	EventClear  EventType = "clear"
)

const (
	tagEvent  = "event"
	tagAction = "action"
	tagHash   = "hash"
	tagNonce  = "nonce"
	tagSigner = "signer"
)

// Event is emitted for every lifecycle transition. It carries all the
// parameters needed to recompute the fingerprint.
type Event struct {
	Type   EventType
	Action Action
	Hash   ActionHash
	Nonce  uint64
	// Signer is set for sign events only.
	Signer quorum.Address
}

// Tags renders the event as key value pairs: the transition, the action
// kind, the fingerprint, the nonce, the signer if any, followed by one tag
// per action parameter.
func (e Event) Tags() []common.KVPair {
	tags := []common.KVPair{
		{Key: []byte(tagEvent), Value: []byte(e.Type)},
		{Key: []byte(tagAction), Value: []byte(e.Action.Kind())},
		{Key: []byte(tagHash), Value: []byte(e.Hash.String())},
		{Key: []byte(tagNonce), Value: []byte(strconv.FormatUint(e.Nonce, 10))},
	}
	if e.Signer != nil {
		tags = append(tags, addrTag(tagSigner, e.Signer))
	}
	return append(tags, e.Action.params()...)
}

// Listener is notified of the events of every successful call.
type Listener func(Event)
