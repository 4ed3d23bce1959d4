package multisig

import (
	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
)

// TokenLedger is the fungible token collaborator. The x/token Ledger
// implements it.
type TokenLedger interface {
	Approve(db quorum.KVStore, token, owner, spender quorum.Address, amount *uint256.Int) error
	Transfer(db quorum.KVStore, token, from, to quorum.Address, amount *uint256.Int) error
	TransferFrom(db quorum.KVStore, token, spender, from, to quorum.Address, amount *uint256.Int) error
}

// NFTRegistry is the non fungible token collaborator. The x/nft Registry
// implements it. caller is the principal performing the operation.
type NFTRegistry interface {
	Approve(db quorum.KVStore, collection, caller, to quorum.Address, id *uint256.Int) error
	SetApprovalForAll(db quorum.KVStore, collection, owner, operator quorum.Address, approved bool) error
	TransferFrom(db quorum.KVStore, collection, caller, from, to quorum.Address, id *uint256.Int) error
}

// NativeBank moves the native currency.
type NativeBank interface {
	Send(db quorum.KVStore, from, to quorum.Address, amount *uint256.Int) error
}

// CallExecutor performs an arbitrary call on behalf of caller.
type CallExecutor interface {
	Call(ctx quorum.Context, db quorum.KVStore, caller, target quorum.Address, value *uint256.Int, data []byte) error
}

// Invoker applies the effect of authorized asset actions. Every operation
// is performed by the multisig address. Collaborator errors are returned
// unmodified.
type Invoker struct {
	self   quorum.Address
	tokens TokenLedger
	nfts   NFTRegistry
	bank   NativeBank
	calls  CallExecutor
}

// NewInvoker returns an invoker acting as self. A nil collaborator disables
// the action kinds that need it.
func NewInvoker(self quorum.Address, tokens TokenLedger, nfts NFTRegistry, bank NativeBank, calls CallExecutor) *Invoker {
	return &Invoker{
		self:   self,
		tokens: tokens,
		nfts:   nfts,
		bank:   bank,
		calls:  calls,
	}
}

// Address returns the principal the invoker acts as.
func (inv *Invoker) Address() quorum.Address {
	return inv.self
}

// Invoke performs the effect of given action.
func (inv *Invoker) Invoke(ctx quorum.Context, db quorum.KVStore, action Action) error {
	switch a := action.(type) {
	case *ApproveAction:
		if inv.tokens == nil {
			return unsupported(a)
		}
		return inv.tokens.Approve(db, a.Token, inv.self, a.Spender, a.Amount)
	case *ApproveNFTsAction:
		if inv.nfts == nil {
			return unsupported(a)
		}
		for _, id := range a.TokenIDs {
			if err := inv.nfts.Approve(db, a.Collection, inv.self, a.Spender, id); err != nil {
				return err
			}
		}
		return nil
	case *ApproveAllNFTAction:
		if inv.nfts == nil {
			return unsupported(a)
		}
		return inv.nfts.SetApprovalForAll(db, a.Collection, inv.self, a.Operator, a.Approved)
	case *TransferNFTsAction:
		if inv.nfts == nil {
			return unsupported(a)
		}
		for i, id := range a.TokenIDs {
			if err := inv.nfts.TransferFrom(db, a.Collection, inv.self, inv.self, a.Recipients[i], id); err != nil {
				return err
			}
		}
		return nil
	case *TransferAction:
		if inv.tokens == nil {
			return unsupported(a)
		}
		return inv.tokens.Transfer(db, a.Token, inv.self, a.Recipient, a.Amount)
	case *TransferFromAction:
		if inv.tokens == nil {
			return unsupported(a)
		}
		return inv.tokens.TransferFrom(db, a.Token, inv.self, a.Sender, a.Recipient, a.Amount)
	case *TransferETHAction:
		if inv.bank == nil {
			return unsupported(a)
		}
		return inv.bank.Send(db, inv.self, a.Recipient, a.Amount)
	case *TransactionAction:
		if inv.calls == nil {
			return unsupported(a)
		}
		return inv.calls.Call(ctx, db, inv.self, a.Target, a.Value, a.Data)
	default:
		return errors.Wrapf(errors.ErrType, "%T is not an asset action", action)
	}
}

// ReceiveNFTs pulls the listed tokens from their owner into the multisig.
// The multisig must be approved to move them.
func (inv *Invoker) ReceiveNFTs(db quorum.KVStore, collection, from quorum.Address, ids []*uint256.Int) error {
	if inv.nfts == nil {
		return errors.Wrap(errors.ErrHuman, "no nft registry")
	}
	for _, id := range ids {
		if err := inv.nfts.TransferFrom(db, collection, inv.self, from, inv.self, id); err != nil {
			return err
		}
	}
	return nil
}

func unsupported(a Action) error {
	return errors.Wrapf(errors.ErrHuman, "no collaborator for %s actions", a.Kind())
}
