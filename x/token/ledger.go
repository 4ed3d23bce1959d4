package token

import (
	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/orm"
)

// NativeToken identifies the native currency in the ledger.
var NativeToken = quorum.ZeroAddress()

func (m *Amount) Validate() error {
	if len(m.Value) != 32 {
		return errors.Wrapf(errors.ErrModel, "amount of %d bytes", len(m.Value))
	}
	return nil
}

func newAmount(v *uint256.Int) *Amount {
	b := v.Bytes32()
	return &Amount{Value: b[:]}
}

// Ledger stores balances and allowances of all tokens.
type Ledger struct {
	balances   orm.Bucket
	allowances orm.Bucket
}

// NewLedger returns a ledger using the balances and allowances buckets.
func NewLedger() *Ledger {
	return &Ledger{
		balances:   orm.NewBucket("balances", &Amount{}),
		allowances: orm.NewBucket("allowances", &Amount{}),
	}
}

// BalanceOf returns the amount of token held by owner.
func (l *Ledger) BalanceOf(db quorum.ReadOnlyKVStore, token, owner quorum.Address) (*uint256.Int, error) {
	return l.get(db, l.balances, balanceKey(token, owner))
}

// Allowance returns the amount of owner's token that spender can transfer.
func (l *Ledger) Allowance(db quorum.ReadOnlyKVStore, token, owner, spender quorum.Address) (*uint256.Int, error) {
	return l.get(db, l.allowances, allowanceKey(token, owner, spender))
}

// Mint creates new tokens and credits them to the recipient.
func (l *Ledger) Mint(db quorum.KVStore, token, to quorum.Address, amount *uint256.Int) error {
	if err := validate(token, to, amount); err != nil {
		return err
	}
	return l.credit(db, token, to, amount)
}

// Approve sets the allowance of spender over owner's token, replacing any
// previous value.
func (l *Ledger) Approve(db quorum.KVStore, token, owner, spender quorum.Address, amount *uint256.Int) error {
	if err := validate(token, owner, amount); err != nil {
		return err
	}
	if err := spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	return l.allowances.Put(db, allowanceKey(token, owner, spender), newAmount(amount))
}

// Transfer moves tokens owned by from.
func (l *Ledger) Transfer(db quorum.KVStore, token, from, to quorum.Address, amount *uint256.Int) error {
	if err := validate(token, from, amount); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := l.debit(db, token, from, amount); err != nil {
		return err
	}
	return l.credit(db, token, to, amount)
}

// TransferFrom moves tokens owned by from on behalf of spender, consuming
// the allowance.
func (l *Ledger) TransferFrom(db quorum.KVStore, token, spender, from, to quorum.Address, amount *uint256.Int) error {
	if err := validate(token, from, amount); err != nil {
		return err
	}
	balance, err := l.BalanceOf(db, token, from)
	if err != nil {
		return err
	}
	if balance.Lt(amount) {
		return errors.Wrap(errors.ErrAmount, "transfer amount exceeds balance")
	}
	key := allowanceKey(token, from, spender)
	allowance, err := l.get(db, l.allowances, key)
	if err != nil {
		return err
	}
	if allowance.Lt(amount) {
		return errors.Wrap(errors.ErrAmount, "transfer amount exceeds allowance")
	}
	if err := l.Transfer(db, token, from, to, amount); err != nil {
		return err
	}
	return l.allowances.Put(db, key, newAmount(new(uint256.Int).Sub(allowance, amount)))
}

func (l *Ledger) debit(db quorum.KVStore, token, owner quorum.Address, amount *uint256.Int) error {
	key := balanceKey(token, owner)
	balance, err := l.get(db, l.balances, key)
	if err != nil {
		return err
	}
	if balance.Lt(amount) {
		return errors.Wrap(errors.ErrAmount, "transfer amount exceeds balance")
	}
	return l.balances.Put(db, key, newAmount(new(uint256.Int).Sub(balance, amount)))
}

func (l *Ledger) credit(db quorum.KVStore, token, owner quorum.Address, amount *uint256.Int) error {
	key := balanceKey(token, owner)
	balance, err := l.get(db, l.balances, key)
	if err != nil {
		return err
	}
	total, overflow := new(uint256.Int).AddOverflow(balance, amount)
	if overflow {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	return l.balances.Put(db, key, newAmount(total))
}

func (l *Ledger) get(db quorum.ReadOnlyKVStore, b orm.Bucket, key []byte) (*uint256.Int, error) {
	var a Amount
	switch err := b.One(db, key, &a); {
	case err == nil:
		return new(uint256.Int).SetBytes(a.Value), nil
	case errors.ErrNotFound.Is(err):
		return new(uint256.Int), nil
	default:
		return nil, err
	}
}

func validate(token, owner quorum.Address, amount *uint256.Int) error {
	if err := token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if amount == nil {
		return errors.Wrap(errors.ErrAmount, "amount required")
	}
	return nil
}

func balanceKey(token, owner quorum.Address) []byte {
	key := make([]byte, 0, len(token)+len(owner))
	key = append(key, token...)
	return append(key, owner...)
}

func allowanceKey(token, owner, spender quorum.Address) []byte {
	key := make([]byte, 0, len(token)+len(owner)+len(spender))
	key = append(key, token...)
	key = append(key, owner...)
	return append(key, spender...)
}

// Bank moves the native currency held in a ledger.
type Bank struct {
	ledger *Ledger
}

// NewBank returns a bank over the NativeToken entries of the ledger.
func NewBank(l *Ledger) *Bank {
	return &Bank{ledger: l}
}

// Send transfers native currency.
func (b *Bank) Send(db quorum.KVStore, from, to quorum.Address, amount *uint256.Int) error {
	return b.ledger.Transfer(db, NativeToken, from, to, amount)
}

// Balance returns the native currency held by owner.
func (b *Bank) Balance(db quorum.ReadOnlyKVStore, owner quorum.Address) (*uint256.Int, error) {
	return b.ledger.BalanceOf(db, NativeToken, owner)
}
