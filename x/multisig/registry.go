package multisig

import (
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/orm"
)

// SignerRegistry owns the signer set and the quorum threshold.
//
// Mutating methods are not exported. After genesis seeding, the only way to
// change governance is to execute a setSigner or setMinAuthorizations
// action.
type SignerRegistry struct {
	bucket orm.Bucket
}

// NewSignerRegistry returns a registry backed by the governance bucket.
func NewSignerRegistry() *SignerRegistry {
	return &SignerRegistry{bucket: NewGovernanceBucket()}
}

// Seed stores the initial signer set. It can be called only once.
func (r *SignerRegistry) Seed(db quorum.KVStore, signers []quorum.Address, minAuthorizations uint64) error {
	switch ok, err := r.bucket.Has(db, governanceKey); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrState, "signers already seeded")
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	if conf.MaxSigners > 0 && len(signers) > int(conf.MaxSigners) {
		return errors.Wrapf(ErrInvalidSignerState, "%d signers exceed the limit of %d", len(signers), conf.MaxSigners)
	}
	g := Governance{MinAuthorizations: minAuthorizations}
	for _, s := range signers {
		g.Signers = append(g.Signers, s.Clone())
	}
	return r.bucket.Put(db, governanceKey, &g)
}

func (r *SignerRegistry) load(db quorum.ReadOnlyKVStore) (*Governance, error) {
	var g Governance
	if err := r.bucket.One(db, governanceKey, &g); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(errors.ErrState, "signers not seeded")
		}
		return nil, errors.Wrap(err, "load governance")
	}
	return &g, nil
}

// IsSigner returns true if given address belongs to the signer set.
func (r *SignerRegistry) IsSigner(db quorum.ReadOnlyKVStore, a quorum.Address) (bool, error) {
	g, err := r.load(db)
	if err != nil {
		return false, err
	}
	return g.indexOf(a) >= 0, nil
}

// SignerCount returns the size of the signer set.
func (r *SignerRegistry) SignerCount(db quorum.ReadOnlyKVStore) (int, error) {
	g, err := r.load(db)
	if err != nil {
		return 0, err
	}
	return len(g.Signers), nil
}

// Signer returns the signer stored at given position.
func (r *SignerRegistry) Signer(db quorum.ReadOnlyKVStore, index int) (quorum.Address, error) {
	g, err := r.load(db)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(g.Signers) {
		return nil, errors.Wrapf(errors.ErrNotFound, "signer #%d", index)
	}
	return quorum.Address(g.Signers[index]).Clone(), nil
}

// Signers returns the whole signer set, in storage order.
func (r *SignerRegistry) Signers(db quorum.ReadOnlyKVStore) ([]quorum.Address, error) {
	g, err := r.load(db)
	if err != nil {
		return nil, err
	}
	res := make([]quorum.Address, len(g.Signers))
	for i, s := range g.Signers {
		res[i] = quorum.Address(s).Clone()
	}
	return res, nil
}

// MinAuthorizations returns the quorum threshold.
func (r *SignerRegistry) MinAuthorizations(db quorum.ReadOnlyKVStore) (uint64, error) {
	g, err := r.load(db)
	if err != nil {
		return 0, err
	}
	return g.MinAuthorizations, nil
}

// CheckThreshold returns ErrInvalidThreshold if n cannot be set as the
// quorum threshold of the current signer set.
func (r *SignerRegistry) CheckThreshold(db quorum.ReadOnlyKVStore, n uint64) error {
	g, err := r.load(db)
	if err != nil {
		return err
	}
	return checkThreshold(g, n)
}

func checkThreshold(g *Governance, n uint64) error {
	if n == 0 || n > uint64(len(g.Signers)) {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d signers", n, len(g.Signers))
	}
	return nil
}

// CheckSetSigner returns an error if the membership of given address cannot
// be changed to isSigner.
func (r *SignerRegistry) CheckSetSigner(db quorum.ReadOnlyKVStore, a quorum.Address, isSigner bool) error {
	g, err := r.load(db)
	if err != nil {
		return err
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	return checkSetSigner(g, conf, a, isSigner)
}

func checkSetSigner(g *Governance, conf *Configuration, a quorum.Address, isSigner bool) error {
	present := g.indexOf(a) >= 0
	if present == isSigner {
		return errors.Wrapf(ErrInvalidSignerState, "%s is signer: %v", a, present)
	}
	if isSigner {
		if conf.MaxSigners > 0 && len(g.Signers) >= int(conf.MaxSigners) {
			return errors.Wrapf(ErrInvalidSignerState, "signer limit of %d reached", conf.MaxSigners)
		}
		return nil
	}
	if uint64(len(g.Signers)-1) < g.MinAuthorizations {
		return errors.Wrapf(ErrInvalidThreshold, "%d signers left for %d authorizations", len(g.Signers)-1, g.MinAuthorizations)
	}
	return nil
}

func (r *SignerRegistry) setThreshold(db quorum.KVStore, n uint64) error {
	g, err := r.load(db)
	if err != nil {
		return err
	}
	if err := checkThreshold(g, n); err != nil {
		return err
	}
	g.MinAuthorizations = n
	return r.bucket.Put(db, governanceKey, g)
}

func (r *SignerRegistry) setSigner(db quorum.KVStore, a quorum.Address, isSigner bool) error {
	g, err := r.load(db)
	if err != nil {
		return err
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	if err := checkSetSigner(g, conf, a, isSigner); err != nil {
		return err
	}
	if isSigner {
		g.Signers = append(g.Signers, a.Clone())
	} else {
		i := g.indexOf(a)
		last := len(g.Signers) - 1
		g.Signers[i] = g.Signers[last]
		g.Signers = g.Signers[:last]
	}
	return r.bucket.Put(db, governanceKey, g)
}
