package multisig

import (
	"time"

	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/orm"
)

// Result describes a completed lifecycle transition.
type Result struct {
	Hash   ActionHash
	Nonce  uint64
	Events []Event
}

// Lifecycle is the signal, sign, execute state machine. It owns the pending
// actions and the global nonce.
//
// Methods do not guard against concurrent use. The caller is expected to
// serialize calls and to provide a database it can discard on failure.
type Lifecycle struct {
	registry *SignerRegistry
	invoker  *Invoker
	pending  orm.Bucket
	nonce    orm.Sequence
}

// NewLifecycle returns a lifecycle applying effects with given invoker.
func NewLifecycle(registry *SignerRegistry, invoker *Invoker) *Lifecycle {
	return &Lifecycle{
		registry: registry,
		invoker:  invoker,
		pending:  NewPendingBucket(),
		nonce:    NewNonceSequence(),
	}
}

// Registry returns the signer registry the lifecycle authorizes against.
func (l *Lifecycle) Registry() *SignerRegistry {
	return l.registry
}

// Signal registers a new pending action under a fresh nonce.
func (l *Lifecycle) Signal(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, action Action) (*Result, error) {
	if err := l.requireSigner(db, caller); err != nil {
		return nil, err
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	switch a := action.(type) {
	case *SetMinAuthorizationsAction:
		if err := l.registry.CheckThreshold(db, a.MinAuthorizations); err != nil {
			return nil, err
		}
	case *SetSignerAction:
		if err := l.registry.CheckSetSigner(db, a.Signer, a.IsSigner); err != nil {
			return nil, err
		}
	}

	n, err := l.nonce.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "nonce")
	}
	nonce := uint64(n)
	hash := Fingerprint(action, nonce)

	switch ok, err := l.pending.Has(db, hash[:]); {
	case err != nil:
		return nil, err
	case !ok:
		signalledAt, err := l.signalTime(ctx, db)
		if err != nil {
			return nil, err
		}
		p := PendingAction{
			Kind:        string(action.Kind()),
			Nonce:       nonce,
			SignalledAt: signalledAt,
		}
		if err := l.pending.Put(db, hash[:], &p); err != nil {
			return nil, errors.Wrap(err, "save pending action")
		}
	}

	return &Result{
		Hash:   hash,
		Nonce:  nonce,
		Events: []Event{{Type: EventSignal, Action: action, Hash: hash, Nonce: nonce}},
	}, nil
}

// Sign adds the signature of caller to a pending action.
func (l *Lifecycle) Sign(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, action Action, nonce uint64) (*Result, error) {
	if err := l.requireSigner(db, caller); err != nil {
		return nil, err
	}
	hash := Fingerprint(action, nonce)
	p, err := l.load(db, hash)
	if err != nil {
		return nil, err
	}
	if p.HasSigned(caller) {
		return nil, errors.Wrapf(ErrAlreadySigned, "%s", caller)
	}
	p.Signers = append(p.Signers, caller.Clone())
	if err := l.pending.Put(db, hash[:], p); err != nil {
		return nil, errors.Wrap(err, "save pending action")
	}
	return &Result{
		Hash:   hash,
		Nonce:  nonce,
		Events: []Event{{Type: EventSign, Action: action, Hash: hash, Nonce: nonce, Signer: caller.Clone()}},
	}, nil
}

// Execute performs an authorized action. The pending record is removed
// before the effect is applied, so an effect cannot execute the same action
// again.
func (l *Lifecycle) Execute(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, action Action, nonce uint64) (*Result, error) {
	if err := l.requireSigner(db, caller); err != nil {
		return nil, err
	}
	hash := Fingerprint(action, nonce)
	p, err := l.load(db, hash)
	if err != nil {
		return nil, err
	}
	if err := l.authorized(db, p); err != nil {
		return nil, err
	}
	if err := l.unlocked(ctx, db, p); err != nil {
		return nil, err
	}

	if err := l.pending.Delete(db, hash[:]); err != nil {
		return nil, errors.Wrap(err, "clear pending action")
	}
	res := &Result{
		Hash:   hash,
		Nonce:  nonce,
		Events: []Event{{Type: EventClear, Action: action, Hash: hash, Nonce: nonce}},
	}

	switch a := action.(type) {
	case *SetMinAuthorizationsAction:
		err = l.registry.setThreshold(db, a.MinAuthorizations)
	case *SetSignerAction:
		err = l.registry.setSigner(db, a.Signer, a.IsSigner)
	default:
		err = l.invoker.Invoke(ctx, db, action)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Pending returns the pending record of an action, or ErrActionNotSignalled.
func (l *Lifecycle) Pending(db quorum.ReadOnlyKVStore, action Action, nonce uint64) (*PendingAction, error) {
	return l.load(db, Fingerprint(action, nonce))
}

// HasSigned returns true if signer signed the pending action.
func (l *Lifecycle) HasSigned(db quorum.ReadOnlyKVStore, action Action, nonce uint64, signer quorum.Address) (bool, error) {
	p, err := l.Pending(db, action, nonce)
	if err != nil {
		return false, err
	}
	return p.HasSigned(signer), nil
}

// Nonce returns the last nonce assigned by Signal.
func (l *Lifecycle) Nonce(db quorum.ReadOnlyKVStore) (uint64, error) {
	n, err := l.nonce.Latest(db)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

func (l *Lifecycle) requireSigner(db quorum.ReadOnlyKVStore, caller quorum.Address) error {
	if caller == nil {
		return errors.Wrap(ErrForbidden, "no caller")
	}
	ok, err := l.registry.IsSigner(db, caller)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrForbidden, "%s is not a signer", caller)
	}
	return nil
}

func (l *Lifecycle) load(db quorum.ReadOnlyKVStore, hash ActionHash) (*PendingAction, error) {
	var p PendingAction
	if err := l.pending.One(db, hash[:], &p); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(ErrActionNotSignalled, hash.String())
		}
		return nil, err
	}
	return &p, nil
}

// authorized counts the signatures of current signers only. Signatures of
// removed signers are kept in the record but no longer count.
func (l *Lifecycle) authorized(db quorum.ReadOnlyKVStore, p *PendingAction) error {
	g, err := l.registry.load(db)
	if err != nil {
		return err
	}
	var count uint64
	for _, s := range p.Signers {
		if g.indexOf(s) >= 0 {
			count++
		}
	}
	if count == 0 {
		return errors.Wrap(ErrInsufficientAuthorization, "action not authorized")
	}
	if count < g.MinAuthorizations {
		return errors.Wrapf(ErrInsufficientAuthorization, "%d of %d", count, g.MinAuthorizations)
	}
	return nil
}

// signalTime returns the block time recorded on a new pending action. It is
// required when a timelock is configured, as the delay is measured from it.
func (l *Lifecycle) signalTime(ctx quorum.Context, db quorum.ReadOnlyKVStore) (int64, error) {
	now, ok := quorum.BlockTime(ctx)
	if ok {
		return now.Unix(), nil
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return 0, err
	}
	if conf.TimelockSeconds > 0 {
		return 0, errors.Wrap(errors.ErrHuman, "block time not set")
	}
	return 0, nil
}

func (l *Lifecycle) unlocked(ctx quorum.Context, db quorum.ReadOnlyKVStore, p *PendingAction) error {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	if conf.TimelockSeconds == 0 {
		return nil
	}
	now, ok := quorum.BlockTime(ctx)
	if !ok {
		return errors.Wrap(errors.ErrHuman, "block time not set")
	}
	readyAt := quorum.UnixTime(p.SignalledAt).Add(time.Duration(conf.TimelockSeconds) * time.Second)
	if now.Before(readyAt.Time()) {
		return errors.Wrapf(ErrTimelocked, "until %s", readyAt)
	}
	return nil
}
