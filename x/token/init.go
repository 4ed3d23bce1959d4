package token

import (
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/coin"
	"github.com/zkelabs/quorum/errors"
)

// GenesisBalance is a single entry of the "token" genesis section. Amount
// is a decimal or 0x prefixed hex number.
type GenesisBalance struct {
	Token  quorum.Address `json:"token"`
	Owner  quorum.Address `json:"owner"`
	Amount string         `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

// FromGenesis mints the initial balances.
func (*Initializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	var balances []GenesisBalance
	if err := opts.ReadOptions("token", &balances); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	ledger := NewLedger()
	for i, b := range balances {
		amount, err := coin.Parse(b.Amount)
		if err != nil {
			return errors.Wrapf(err, "balance #%d", i)
		}
		token := b.Token
		if token == nil {
			token = NativeToken
		}
		if err := ledger.Mint(kv, token, b.Owner, amount); err != nil {
			return errors.Wrapf(err, "balance #%d", i)
		}
	}
	return nil
}
