package multisig

import (
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/gconf"
)

// Genesis is the content of the "multisig" genesis section.
type Genesis struct {
	Signers           []quorum.Address `json:"signers"`
	MinAuthorizations uint64           `json:"min_authorizations"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

// FromGenesis saves the optional extension configuration and seeds the
// signer registry.
func (*Initializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, configPkg, &conf); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init configuration")
	}

	var g Genesis
	if err := opts.ReadOptions("multisig", &g); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := NewSignerRegistry().Seed(kv, g.Signers, g.MinAuthorizations); err != nil {
		return errors.Wrap(err, "seed signers")
	}
	return nil
}
