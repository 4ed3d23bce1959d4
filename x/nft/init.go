package nft

import (
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/coin"
	"github.com/zkelabs/quorum/errors"
)

// GenesisToken is a single entry of the "nft" genesis section.
type GenesisToken struct {
	Collection quorum.Address `json:"collection"`
	Owner      quorum.Address `json:"owner"`
	ID         string         `json:"id"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

// FromGenesis mints the initial tokens.
func (*Initializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions("nft", &tokens); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	registry := NewRegistry()
	for i, t := range tokens {
		id, err := coin.Parse(t.ID)
		if err != nil {
			return errors.Wrapf(err, "token #%d", i)
		}
		if err := registry.Mint(kv, t.Collection, t.Owner, id); err != nil {
			return errors.Wrapf(err, "token #%d", i)
		}
	}
	return nil
}
