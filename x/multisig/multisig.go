package multisig

import (
	"reflect"
	"sync"

	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/x"
)

// Condition returns the condition of the multisig with given id. Its address
// is the principal owning the multisig assets.
func Condition(id []byte) quorum.Condition {
	return quorum.NewCondition("multisig", "usage", id)
}

// Multisig is the entry point of the extension. It authenticates the caller
// and runs every call atomically: all writes of a call go to a cache wrap
// that is written only if the call succeeds.
type Multisig struct {
	mu        sync.Mutex
	db        quorum.CacheableKVStore
	auth      x.Authenticator
	lifecycle *Lifecycle
	metrics   *Metrics
	listeners []Listener
}

// Option configures a Multisig.
type Option func(*Multisig)

// WithMetrics enables prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(ms *Multisig) {
		ms.metrics = m
	}
}

// WithListener registers a listener notified of the events of every
// successful call, after the state was written.
func WithListener(l Listener) Option {
	return func(ms *Multisig) {
		ms.listeners = append(ms.listeners, l)
	}
}

// New returns a multisig backed by db. The caller of every operation is the
// main signer authenticated by auth.
func New(db quorum.CacheableKVStore, auth x.Authenticator, lifecycle *Lifecycle, opts ...Option) *Multisig {
	m := &Multisig{
		db:        db,
		auth:      auth,
		lifecycle: lifecycle,
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// Address returns the principal owning the multisig assets.
func (m *Multisig) Address() quorum.Address {
	return m.lifecycle.invoker.Address()
}

// Signal announces an action. The returned result carries the assigned
// nonce and the fingerprint.
func (m *Multisig) Signal(ctx quorum.Context, action Action) (*Result, error) {
	return m.run(ctx, EventSignal, action, func(db quorum.KVStore, caller quorum.Address) (*Result, error) {
		return m.lifecycle.Signal(ctx, db, caller, action)
	})
}

// Sign approves the action signalled with nonce.
func (m *Multisig) Sign(ctx quorum.Context, action Action, nonce uint64) (*Result, error) {
	return m.run(ctx, EventSign, action, func(db quorum.KVStore, caller quorum.Address) (*Result, error) {
		return m.lifecycle.Sign(ctx, db, caller, action, nonce)
	})
}

// Execute performs the action signalled with nonce if it gathered enough
// signatures.
func (m *Multisig) Execute(ctx quorum.Context, action Action, nonce uint64) (*Result, error) {
	return m.run(ctx, EventClear, action, func(db quorum.KVStore, caller quorum.Address) (*Result, error) {
		return m.lifecycle.Execute(ctx, db, caller, action, nonce)
	})
}

// ReceiveNFTs pulls tokens into the multisig. Anyone can call it; the
// tokens owner must have approved the multisig address.
func (m *Multisig) ReceiveNFTs(ctx quorum.Context, collection, from quorum.Address, ids []*uint256.Int) error {
	err := m.atomic(func(db quorum.KVStore) error {
		return m.lifecycle.invoker.ReceiveNFTs(db, collection, from, ids)
	})
	if err != nil {
		quorum.GetLogger(ctx).Debug("receive nfts rejected", "collection", collection, "from", from, "err", err)
		return err
	}
	quorum.GetLogger(ctx).Info("nfts received", "collection", collection, "from", from, "count", len(ids))
	return nil
}

// IsSigner returns true if given address belongs to the signer set.
func (m *Multisig) IsSigner(a quorum.Address) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.registry.IsSigner(m.db, a)
}

// SignersLength returns the size of the signer set.
func (m *Multisig) SignersLength() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.registry.SignerCount(m.db)
}

// Signers returns the signer at given index.
func (m *Multisig) Signers(index int) (quorum.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.registry.Signer(m.db, index)
}

// MinAuthorizations returns the quorum threshold.
func (m *Multisig) MinAuthorizations() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.registry.MinAuthorizations(m.db)
}

// Nonce returns the last assigned nonce.
func (m *Multisig) Nonce() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.Nonce(m.db)
}

// Pending returns the pending record of an action.
func (m *Multisig) Pending(action Action, nonce uint64) (*PendingAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.Pending(m.db, action, nonce)
}

// HasSigned returns true if signer signed the pending action.
func (m *Multisig) HasSigned(action Action, nonce uint64, signer quorum.Address) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lifecycle.HasSigned(m.db, action, nonce, signer)
}

func (m *Multisig) run(
	ctx quorum.Context,
	transition EventType,
	action Action,
	fn func(quorum.KVStore, quorum.Address) (*Result, error),
) (*Result, error) {
	if isNilAction(action) {
		return nil, errors.Wrap(errors.ErrEmpty, "action")
	}
	caller := x.MainSigner(ctx, m.auth).Address()
	log := quorum.GetLogger(ctx).With("kind", action.Kind(), "transition", transition, "caller", caller)

	var res *Result
	err := m.atomic(func(db quorum.KVStore) error {
		var err error
		res, err = fn(db, caller)
		return err
	})
	if err != nil {
		m.metrics.Failure(action.Kind(), transition, err)
		log.Debug("multisig call rejected", "err", err)
		return nil, err
	}

	m.metrics.Transition(action.Kind(), transition)
	log.Info("multisig transition", "hash", res.Hash, "nonce", res.Nonce)
	for _, e := range res.Events {
		for _, l := range m.listeners {
			l(e)
		}
	}
	return res, nil
}

// atomic runs fn on a cache wrap. The wrap is written only if fn succeeds.
func (m *Multisig) atomic(fn func(quorum.KVStore) error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cache := m.db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	if err := fn(cache); err != nil {
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// isNilAction returns true for a nil interface and for a typed nil pointer.
func isNilAction(a Action) bool {
	if a == nil {
		return true
	}
	if val := reflect.ValueOf(a); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
