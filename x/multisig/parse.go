package multisig

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/coin"
	"github.com/zkelabs/quorum/errors"
)

// Params are action parameters in their text form, keyed by the snake case
// parameter name. Lists are comma separated, numbers are decimal or 0x
// prefixed hex, addresses use any form accepted by quorum.ParseAddress.
type Params map[string]string

// ParseAction builds an action of given kind from its text parameters. All
// parameters of the kind are required and unknown parameters are rejected.
func ParseAction(kind string, params Params) (Action, error) {
	p := paramReader{params: params, used: make(map[string]bool)}
	var a Action
	switch Kind(kind) {
	case KindApprove:
		a = &ApproveAction{Token: p.address("token"), Spender: p.address("spender"), Amount: p.uint("amount")}
	case KindApproveNFTs:
		a = &ApproveNFTsAction{Collection: p.address("collection"), Spender: p.address("spender"), TokenIDs: p.uints("token_ids")}
	case KindApproveAllNFT:
		a = &ApproveAllNFTAction{Collection: p.address("collection"), Operator: p.address("operator"), Approved: p.boolean("approved")}
	case KindTransferNFTs:
		a = &TransferNFTsAction{Collection: p.address("collection"), Recipients: p.addresses("recipients"), TokenIDs: p.uints("token_ids")}
	case KindTransfer:
		a = &TransferAction{Token: p.address("token"), Recipient: p.address("recipient"), Amount: p.uint("amount")}
	case KindTransferFrom:
		a = &TransferFromAction{Token: p.address("token"), Sender: p.address("sender"), Recipient: p.address("recipient"), Amount: p.uint("amount")}
	case KindTransferETH:
		a = &TransferETHAction{Recipient: p.address("recipient"), Amount: p.uint("amount")}
	case KindTransaction:
		a = &TransactionAction{Target: p.address("target"), Value: p.uint("value"), Data: p.bytes("data")}
	case KindSetMinAuthorizations:
		a = &SetMinAuthorizationsAction{MinAuthorizations: p.uint64("min_authorizations")}
	case KindSetSigner:
		a = &SetSignerAction{Signer: p.address("signer"), IsSigner: p.boolean("is_signer")}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown action kind %q", kind)
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := p.unused(); err != nil {
		return nil, err
	}
	return a, nil
}

// paramReader keeps the first error so that a parse reads like a struct
// literal.
type paramReader struct {
	params Params
	used   map[string]bool
	err    error
}

func (p *paramReader) get(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.params[name]
	if !ok {
		p.err = errors.Wrapf(errors.ErrEmpty, "parameter %q required", name)
		return "", false
	}
	p.used[name] = true
	return v, true
}

func (p *paramReader) fail(name string, err error) {
	p.err = errors.Wrapf(err, "parameter %q", name)
}

func (p *paramReader) address(name string) quorum.Address {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	a, err := quorum.ParseAddress(strings.TrimSpace(v))
	if err != nil {
		p.fail(name, err)
		return nil
	}
	return a
}

func (p *paramReader) addresses(name string) []quorum.Address {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	var res []quorum.Address
	for _, s := range splitList(v) {
		a, err := quorum.ParseAddress(s)
		if err != nil {
			p.fail(name, err)
			return nil
		}
		res = append(res, a)
	}
	return res
}

func (p *paramReader) uint(name string) *uint256.Int {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	n, err := coin.Parse(v)
	if err != nil {
		p.fail(name, err)
		return nil
	}
	return n
}

func (p *paramReader) uints(name string) []*uint256.Int {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	var res []*uint256.Int
	for _, s := range splitList(v) {
		n, err := coin.Parse(s)
		if err != nil {
			p.fail(name, err)
			return nil
		}
		res = append(res, n)
	}
	return res
}

func (p *paramReader) uint64(name string) uint64 {
	v, ok := p.get(name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		p.fail(name, errors.Wrap(errors.ErrInput, err.Error()))
		return 0
	}
	return n
}

func (p *paramReader) boolean(name string) bool {
	v, ok := p.get(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		p.fail(name, errors.Wrap(errors.ErrInput, err.Error()))
		return false
	}
	return b
}

func (p *paramReader) bytes(name string) []byte {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	s := strings.TrimPrefix(strings.TrimSpace(v), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		p.fail(name, errors.Wrap(errors.ErrInput, err.Error()))
		return nil
	}
	return b
}

func (p *paramReader) unused() error {
	var extra []string
	for name := range p.params {
		if !p.used[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return errors.Wrapf(errors.ErrInput, "unknown parameters: %s", strings.Join(extra, ", "))
}

// splitList splits a comma separated list. An empty string is an empty list.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
