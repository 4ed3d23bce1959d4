package multisig

import (
	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
)

// Named entry points, one signal, sign and execute triple per action kind.
// They only build the action and call the generic Signal, Sign and Execute.

func (m *Multisig) SignalApprove(ctx quorum.Context, token, spender quorum.Address, amount *uint256.Int) (*Result, error) {
	return m.Signal(ctx, &ApproveAction{Token: token, Spender: spender, Amount: amount})
}

func (m *Multisig) SignApprove(ctx quorum.Context, token, spender quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &ApproveAction{Token: token, Spender: spender, Amount: amount}, nonce)
}

func (m *Multisig) Approve(ctx quorum.Context, token, spender quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &ApproveAction{Token: token, Spender: spender, Amount: amount}, nonce)
}

func (m *Multisig) SignalApproveNFTs(ctx quorum.Context, collection, spender quorum.Address, ids []*uint256.Int) (*Result, error) {
	return m.Signal(ctx, &ApproveNFTsAction{Collection: collection, Spender: spender, TokenIDs: ids})
}

func (m *Multisig) SignApproveNFTs(ctx quorum.Context, collection, spender quorum.Address, ids []*uint256.Int, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &ApproveNFTsAction{Collection: collection, Spender: spender, TokenIDs: ids}, nonce)
}

func (m *Multisig) ApproveNFTs(ctx quorum.Context, collection, spender quorum.Address, ids []*uint256.Int, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &ApproveNFTsAction{Collection: collection, Spender: spender, TokenIDs: ids}, nonce)
}

func (m *Multisig) SignalApproveAllNFT(ctx quorum.Context, collection, operator quorum.Address, approved bool) (*Result, error) {
	return m.Signal(ctx, &ApproveAllNFTAction{Collection: collection, Operator: operator, Approved: approved})
}

func (m *Multisig) SignApproveAllNFT(ctx quorum.Context, collection, operator quorum.Address, approved bool, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &ApproveAllNFTAction{Collection: collection, Operator: operator, Approved: approved}, nonce)
}

func (m *Multisig) ApproveAllNFT(ctx quorum.Context, collection, operator quorum.Address, approved bool, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &ApproveAllNFTAction{Collection: collection, Operator: operator, Approved: approved}, nonce)
}

func (m *Multisig) SignalTransferNFTs(ctx quorum.Context, collection quorum.Address, recipients []quorum.Address, ids []*uint256.Int) (*Result, error) {
	return m.Signal(ctx, &TransferNFTsAction{Collection: collection, Recipients: recipients, TokenIDs: ids})
}

func (m *Multisig) SignTransferNFTs(ctx quorum.Context, collection quorum.Address, recipients []quorum.Address, ids []*uint256.Int, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &TransferNFTsAction{Collection: collection, Recipients: recipients, TokenIDs: ids}, nonce)
}

func (m *Multisig) TransferNFTs(ctx quorum.Context, collection quorum.Address, recipients []quorum.Address, ids []*uint256.Int, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &TransferNFTsAction{Collection: collection, Recipients: recipients, TokenIDs: ids}, nonce)
}

func (m *Multisig) SignalTransfer(ctx quorum.Context, token, recipient quorum.Address, amount *uint256.Int) (*Result, error) {
	return m.Signal(ctx, &TransferAction{Token: token, Recipient: recipient, Amount: amount})
}

func (m *Multisig) SignTransfer(ctx quorum.Context, token, recipient quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &TransferAction{Token: token, Recipient: recipient, Amount: amount}, nonce)
}

func (m *Multisig) Transfer(ctx quorum.Context, token, recipient quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &TransferAction{Token: token, Recipient: recipient, Amount: amount}, nonce)
}

func (m *Multisig) SignalTransferFrom(ctx quorum.Context, token, sender, recipient quorum.Address, amount *uint256.Int) (*Result, error) {
	return m.Signal(ctx, &TransferFromAction{Token: token, Sender: sender, Recipient: recipient, Amount: amount})
}

func (m *Multisig) SignTransferFrom(ctx quorum.Context, token, sender, recipient quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &TransferFromAction{Token: token, Sender: sender, Recipient: recipient, Amount: amount}, nonce)
}

func (m *Multisig) TransferFrom(ctx quorum.Context, token, sender, recipient quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &TransferFromAction{Token: token, Sender: sender, Recipient: recipient, Amount: amount}, nonce)
}

func (m *Multisig) SignalTransferETH(ctx quorum.Context, recipient quorum.Address, amount *uint256.Int) (*Result, error) {
	return m.Signal(ctx, &TransferETHAction{Recipient: recipient, Amount: amount})
}

func (m *Multisig) SignTransferETH(ctx quorum.Context, recipient quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &TransferETHAction{Recipient: recipient, Amount: amount}, nonce)
}

func (m *Multisig) TransferETH(ctx quorum.Context, recipient quorum.Address, amount *uint256.Int, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &TransferETHAction{Recipient: recipient, Amount: amount}, nonce)
}

func (m *Multisig) SignalTransaction(ctx quorum.Context, target quorum.Address, value *uint256.Int, data []byte) (*Result, error) {
	return m.Signal(ctx, &TransactionAction{Target: target, Value: value, Data: data})
}

func (m *Multisig) SignTransaction(ctx quorum.Context, target quorum.Address, value *uint256.Int, data []byte, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &TransactionAction{Target: target, Value: value, Data: data}, nonce)
}

func (m *Multisig) ExecuteTransaction(ctx quorum.Context, target quorum.Address, value *uint256.Int, data []byte, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &TransactionAction{Target: target, Value: value, Data: data}, nonce)
}

func (m *Multisig) SignalSetMinAuthorizations(ctx quorum.Context, n uint64) (*Result, error) {
	return m.Signal(ctx, &SetMinAuthorizationsAction{MinAuthorizations: n})
}

func (m *Multisig) SignSetMinAuthorizations(ctx quorum.Context, n uint64, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &SetMinAuthorizationsAction{MinAuthorizations: n}, nonce)
}

func (m *Multisig) SetMinAuthorizations(ctx quorum.Context, n uint64, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &SetMinAuthorizationsAction{MinAuthorizations: n}, nonce)
}

func (m *Multisig) SignalSetSigner(ctx quorum.Context, signer quorum.Address, isSigner bool) (*Result, error) {
	return m.Signal(ctx, &SetSignerAction{Signer: signer, IsSigner: isSigner})
}

func (m *Multisig) SignSetSigner(ctx quorum.Context, signer quorum.Address, isSigner bool, nonce uint64) (*Result, error) {
	return m.Sign(ctx, &SetSignerAction{Signer: signer, IsSigner: isSigner}, nonce)
}

func (m *Multisig) SetSigner(ctx quorum.Context, signer quorum.Address, isSigner bool, nonce uint64) (*Result, error) {
	return m.Execute(ctx, &SetSignerAction{Signer: signer, IsSigner: isSigner}, nonce)
}
