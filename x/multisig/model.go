package multisig

import (
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/gconf"
	"github.com/zkelabs/quorum/orm"
)

const (
	pendingBucketName    = "pending"
	governanceBucketName = "governance"

	// configPkg is the key of the extension configuration.
	configPkg = "multisig"
)

var governanceKey = []byte("main")

// NewPendingBucket returns the bucket of pending actions, keyed by
// fingerprint.
func NewPendingBucket() orm.Bucket {
	return orm.NewBucket(pendingBucketName, &PendingAction{})
}

// NewGovernanceBucket returns the bucket holding the governance singleton.
func NewGovernanceBucket() orm.Bucket {
	return orm.NewBucket(governanceBucketName, &Governance{})
}

// NewNonceSequence returns the global action nonce, shared by all kinds.
func NewNonceSequence() orm.Sequence {
	return orm.NewSequence(pendingBucketName, "nonce")
}

func (m *PendingAction) Validate() error {
	if m.Kind == "" {
		return errors.Wrap(errors.ErrModel, "kind required")
	}
	if m.Nonce == 0 {
		return errors.Wrap(errors.ErrModel, "nonce required")
	}
	if m.SignalledAt < 0 {
		return errors.Wrap(errors.ErrModel, "signalled before epoch")
	}
	seen := make(map[string]struct{}, len(m.Signers))
	for i, s := range m.Signers {
		if err := quorum.Address(s).Validate(); err != nil {
			return errors.Wrapf(err, "signer #%d", i)
		}
		if _, ok := seen[string(s)]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "signer #%d", i)
		}
		seen[string(s)] = struct{}{}
	}
	return nil
}

// HasSigned returns true if given address signed this action.
func (m *PendingAction) HasSigned(a quorum.Address) bool {
	for _, s := range m.Signers {
		if a.Equals(s) {
			return true
		}
	}
	return false
}

func (m *Governance) Validate() error {
	if len(m.Signers) == 0 {
		return errors.Wrap(ErrInvalidSignerState, "signers required")
	}
	seen := make(map[string]struct{}, len(m.Signers))
	for i, s := range m.Signers {
		if err := quorum.Address(s).Validate(); err != nil {
			return errors.Wrapf(ErrInvalidSignerState, "signer #%d: %s", i, err)
		}
		if _, ok := seen[string(s)]; ok {
			return errors.Wrapf(ErrInvalidSignerState, "duplicate signer #%d", i)
		}
		seen[string(s)] = struct{}{}
	}
	if m.MinAuthorizations == 0 || m.MinAuthorizations > uint64(len(m.Signers)) {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d signers", m.MinAuthorizations, len(m.Signers))
	}
	return nil
}

// indexOf returns the position of the signer or -1.
func (m *Governance) indexOf(a quorum.Address) int {
	for i, s := range m.Signers {
		if a.Equals(s) {
			return i
		}
	}
	return -1
}

func (c *Configuration) Validate() error {
	if c.TimelockSeconds < 0 {
		return errors.Wrap(errors.ErrInput, "timelock must not be negative")
	}
	return nil
}

// LoadConfiguration returns the stored configuration or the zero
// configuration when none was saved.
func LoadConfiguration(db quorum.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, configPkg, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}
