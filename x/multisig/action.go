package multisig

import (
	"strconv"

	"github.com/holiman/uint256"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
)

// Kind names an action type. Its value is the tag that prefixes the
// fingerprint encoding.
type Kind string

const (
	KindApprove              Kind = "approve"
	KindApproveNFTs          Kind = "approveNFTs"
	KindApproveAllNFT        Kind = "approveAllNFT"
	KindTransferNFTs         Kind = "transferNFTs"
	KindTransfer             Kind = "transfer"
	KindTransferFrom         Kind = "transferFrom"
	KindTransferETH          Kind = "transferETH"
	KindTransaction          Kind = "transaction"
	KindSetMinAuthorizations Kind = "setMinAuthorizations"
	KindSetSigner            Kind = "setSigner"
)

// Kinds returns all supported action kinds.
func Kinds() []Kind {
	return []Kind{
		KindApprove,
		KindApproveNFTs,
		KindApproveAllNFT,
		KindTransferNFTs,
		KindTransfer,
		KindTransferFrom,
		KindTransferETH,
		KindTransaction,
		KindSetMinAuthorizations,
		KindSetSigner,
	}
}

// Action is an operation that requires the authorization of the signers
// quorum. The set of implementations is closed and declared in this file.
type Action interface {
	// Kind returns the tag of this action.
	Kind() Kind

	// Validate checks the parameters. It does not access the state.
	Validate() error

	// pack writes the parameters in their fingerprint encoding.
	pack(p *packer)

	// params returns the parameters as event tags, in encoding order.
	params() []common.KVPair
}

var (
	_ Action = (*ApproveAction)(nil)
	_ Action = (*ApproveNFTsAction)(nil)
	_ Action = (*ApproveAllNFTAction)(nil)
	_ Action = (*TransferNFTsAction)(nil)
	_ Action = (*TransferAction)(nil)
	_ Action = (*TransferFromAction)(nil)
	_ Action = (*TransferETHAction)(nil)
	_ Action = (*TransactionAction)(nil)
	_ Action = (*SetMinAuthorizationsAction)(nil)
	_ Action = (*SetSignerAction)(nil)
)

// ApproveAction sets the allowance of spender over the multisig balance of
// a fungible token.
type ApproveAction struct {
	Token   quorum.Address
	Spender quorum.Address
	Amount  *uint256.Int
}

func (ApproveAction) Kind() Kind { return KindApprove }

func (a *ApproveAction) Validate() error {
	return validate(
		addr("token", a.Token),
		addr("spender", a.Spender),
		amount("amount", a.Amount),
	)
}

func (a *ApproveAction) pack(p *packer) {
	p.address(a.Token)
	p.address(a.Spender)
	p.uint(a.Amount)
}

func (a *ApproveAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("token", a.Token),
		addrTag("spender", a.Spender),
		uintTag("amount", a.Amount),
	}
}

// ApproveNFTsAction approves spender for each of the listed tokens of a
// collection.
type ApproveNFTsAction struct {
	Collection quorum.Address
	Spender    quorum.Address
	TokenIDs   []*uint256.Int
}

func (ApproveNFTsAction) Kind() Kind { return KindApproveNFTs }

func (a *ApproveNFTsAction) Validate() error {
	return validate(
		addr("collection", a.Collection),
		addr("spender", a.Spender),
		amounts("token_ids", a.TokenIDs),
	)
}

func (a *ApproveNFTsAction) pack(p *packer) {
	p.address(a.Collection)
	p.address(a.Spender)
	p.uints(a.TokenIDs)
}

func (a *ApproveNFTsAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("collection", a.Collection),
		addrTag("spender", a.Spender),
		uintsTag("token_ids", a.TokenIDs),
	}
}

// ApproveAllNFTAction grants or revokes the operator role over all
// multisig owned tokens of a collection.
type ApproveAllNFTAction struct {
	Collection quorum.Address
	Operator   quorum.Address
	Approved   bool
}

func (ApproveAllNFTAction) Kind() Kind { return KindApproveAllNFT }

func (a *ApproveAllNFTAction) Validate() error {
	return validate(
		addr("collection", a.Collection),
		addr("operator", a.Operator),
	)
}

func (a *ApproveAllNFTAction) pack(p *packer) {
	p.address(a.Collection)
	p.address(a.Operator)
	p.boolean(a.Approved)
}

func (a *ApproveAllNFTAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("collection", a.Collection),
		addrTag("operator", a.Operator),
		boolTag("approved", a.Approved),
	}
}

// TransferNFTsAction sends TokenIDs[i] to Recipients[i].
type TransferNFTsAction struct {
	Collection quorum.Address
	Recipients []quorum.Address
	TokenIDs   []*uint256.Int
}

func (TransferNFTsAction) Kind() Kind { return KindTransferNFTs }

func (a *TransferNFTsAction) Validate() error {
	if len(a.Recipients) != len(a.TokenIDs) {
		return errors.Wrapf(ErrLengthMismatch, "%d recipients, %d tokens", len(a.Recipients), len(a.TokenIDs))
	}
	return validate(
		addr("collection", a.Collection),
		addrs("recipients", a.Recipients),
		amounts("token_ids", a.TokenIDs),
	)
}

func (a *TransferNFTsAction) pack(p *packer) {
	p.address(a.Collection)
	p.addresses(a.Recipients)
	p.uints(a.TokenIDs)
}

func (a *TransferNFTsAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("collection", a.Collection),
		addrsTag("recipients", a.Recipients),
		uintsTag("token_ids", a.TokenIDs),
	}
}

// TransferAction sends fungible tokens held by the multisig.
type TransferAction struct {
	Token     quorum.Address
	Recipient quorum.Address
	Amount    *uint256.Int
}

func (TransferAction) Kind() Kind { return KindTransfer }

func (a *TransferAction) Validate() error {
	return validate(
		addr("token", a.Token),
		addr("recipient", a.Recipient),
		amount("amount", a.Amount),
	)
}

func (a *TransferAction) pack(p *packer) {
	p.address(a.Token)
	p.address(a.Recipient)
	p.uint(a.Amount)
}

func (a *TransferAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("token", a.Token),
		addrTag("recipient", a.Recipient),
		uintTag("amount", a.Amount),
	}
}

// TransferFromAction spends an allowance granted to the multisig.
type TransferFromAction struct {
	Token     quorum.Address
	Sender    quorum.Address
	Recipient quorum.Address
	Amount    *uint256.Int
}

func (TransferFromAction) Kind() Kind { return KindTransferFrom }

func (a *TransferFromAction) Validate() error {
	return validate(
		addr("token", a.Token),
		addr("sender", a.Sender),
		addr("recipient", a.Recipient),
		amount("amount", a.Amount),
	)
}

func (a *TransferFromAction) pack(p *packer) {
	p.address(a.Token)
	p.address(a.Sender)
	p.address(a.Recipient)
	p.uint(a.Amount)
}

func (a *TransferFromAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("token", a.Token),
		addrTag("sender", a.Sender),
		addrTag("recipient", a.Recipient),
		uintTag("amount", a.Amount),
	}
}

// TransferETHAction sends native currency held by the multisig.
type TransferETHAction struct {
	Recipient quorum.Address
	Amount    *uint256.Int
}

func (TransferETHAction) Kind() Kind { return KindTransferETH }

func (a *TransferETHAction) Validate() error {
	return validate(
		addr("recipient", a.Recipient),
		amount("amount", a.Amount),
	)
}

func (a *TransferETHAction) pack(p *packer) {
	p.address(a.Recipient)
	p.uint(a.Amount)
}

func (a *TransferETHAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("recipient", a.Recipient),
		uintTag("amount", a.Amount),
	}
}

// TransactionAction calls target with value attached and data as payload.
type TransactionAction struct {
	Target quorum.Address
	Value  *uint256.Int
	Data   []byte
}

func (TransactionAction) Kind() Kind { return KindTransaction }

func (a *TransactionAction) Validate() error {
	return validate(
		addr("target", a.Target),
		amount("value", a.Value),
	)
}

func (a *TransactionAction) pack(p *packer) {
	p.address(a.Target)
	p.uint(a.Value)
	p.raw(a.Data)
}

func (a *TransactionAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("target", a.Target),
		uintTag("value", a.Value),
		{Key: []byte("data"), Value: []byte(hexString(a.Data))},
	}
}

// SetMinAuthorizationsAction changes the quorum threshold.
type SetMinAuthorizationsAction struct {
	MinAuthorizations uint64
}

func (SetMinAuthorizationsAction) Kind() Kind { return KindSetMinAuthorizations }

func (a *SetMinAuthorizationsAction) Validate() error {
	if a.MinAuthorizations == 0 {
		return errors.Wrap(ErrInvalidThreshold, "must not be zero")
	}
	return nil
}

func (a *SetMinAuthorizationsAction) pack(p *packer) {
	p.uint(uint256.NewInt(a.MinAuthorizations))
}

func (a *SetMinAuthorizationsAction) params() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("min_authorizations"), Value: []byte(strconv.FormatUint(a.MinAuthorizations, 10))},
	}
}

// SetSignerAction adds a signer when IsSigner is true and removes it
// otherwise.
type SetSignerAction struct {
	Signer   quorum.Address
	IsSigner bool
}

func (SetSignerAction) Kind() Kind { return KindSetSigner }

func (a *SetSignerAction) Validate() error {
	return addr("signer", a.Signer)
}

func (a *SetSignerAction) pack(p *packer) {
	p.address(a.Signer)
	p.boolean(a.IsSigner)
}

func (a *SetSignerAction) params() []common.KVPair {
	return []common.KVPair{
		addrTag("signer", a.Signer),
		boolTag("is_signer", a.IsSigner),
	}
}

// validate returns the first non nil error.
func validate(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func addr(name string, a quorum.Address) error {
	if err := a.Validate(); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}

func addrs(name string, list []quorum.Address) error {
	for i, a := range list {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "%s #%d", name, i)
		}
	}
	return nil
}

func amount(name string, v *uint256.Int) error {
	if v == nil {
		return errors.Wrapf(errors.ErrEmpty, "%s required", name)
	}
	return nil
}

func amounts(name string, list []*uint256.Int) error {
	for i, v := range list {
		if v == nil {
			return errors.Wrapf(errors.ErrEmpty, "%s #%d required", name, i)
		}
	}
	return nil
}
