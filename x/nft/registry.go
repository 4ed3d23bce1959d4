package nft

import (
	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/coin"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/orm"
)

func (m *Token) Validate() error {
	if err := quorum.Address(m.Owner).Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if m.Approved != nil {
		if err := quorum.Address(m.Approved).Validate(); err != nil {
			return errors.Wrap(err, "approved")
		}
	}
	return nil
}

func (m *Count) Validate() error {
	return nil
}

func (m *Operator) Validate() error {
	if !m.Approved {
		return errors.Wrap(errors.ErrModel, "revoked operators are deleted")
	}
	return nil
}

// Registry stores token ownership and approvals of all collections.
type Registry struct {
	tokens    orm.Bucket
	counts    orm.Bucket
	operators orm.Bucket
}

// NewRegistry returns a registry using the nfts, nftcounts and operators
// buckets.
func NewRegistry() *Registry {
	return &Registry{
		tokens:    orm.NewBucket("nfts", &Token{}),
		counts:    orm.NewBucket("nftcounts", &Count{}),
		operators: orm.NewBucket("operators", &Operator{}),
	}
}

// Mint creates a new token owned by to.
func (r *Registry) Mint(db quorum.KVStore, collection, to quorum.Address, id *uint256.Int) error {
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	key, err := tokenKey(collection, id)
	if err != nil {
		return err
	}
	switch ok, err := r.tokens.Has(db, key); {
	case err != nil:
		return err
	case ok:
		return errors.Wrapf(errors.ErrDuplicate, "token %s already minted", coin.Format(id))
	}
	if err := r.tokens.Put(db, key, &Token{Owner: to.Clone()}); err != nil {
		return err
	}
	return r.addCount(db, collection, to, 1)
}

// OwnerOf returns the owner of a token.
func (r *Registry) OwnerOf(db quorum.ReadOnlyKVStore, collection quorum.Address, id *uint256.Int) (quorum.Address, error) {
	t, _, err := r.load(db, collection, id)
	if err != nil {
		return nil, err
	}
	return quorum.Address(t.Owner).Clone(), nil
}

// GetApproved returns the address approved for a token, or nil.
func (r *Registry) GetApproved(db quorum.ReadOnlyKVStore, collection quorum.Address, id *uint256.Int) (quorum.Address, error) {
	t, _, err := r.load(db, collection, id)
	if err != nil {
		return nil, err
	}
	return quorum.Address(t.Approved).Clone(), nil
}

// BalanceOf returns the number of tokens of a collection held by owner.
func (r *Registry) BalanceOf(db quorum.ReadOnlyKVStore, collection, owner quorum.Address) (uint64, error) {
	var c Count
	switch err := r.counts.One(db, countKey(collection, owner), &c); {
	case err == nil:
		return c.Value, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// IsApprovedForAll returns true if operator can move every token of a
// collection held by owner.
func (r *Registry) IsApprovedForAll(db quorum.ReadOnlyKVStore, collection, owner, operator quorum.Address) (bool, error) {
	return r.operators.Has(db, operatorKey(collection, owner, operator))
}

// Approve allows to to transfer a token. The caller must be the owner or one
// of its operators.
func (r *Registry) Approve(db quorum.KVStore, collection, caller, to quorum.Address, id *uint256.Int) error {
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "approved")
	}
	t, key, err := r.load(db, collection, id)
	if err != nil {
		return err
	}
	owner := quorum.Address(t.Owner)
	if to.Equals(owner) {
		return errors.Wrap(errors.ErrInput, "approval to current owner")
	}
	if !caller.Equals(owner) {
		ok, err := r.IsApprovedForAll(db, collection, owner, caller)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(errors.ErrUnauthorized, "approve caller is not owner nor approved for all")
		}
	}
	t.Approved = to.Clone()
	return r.tokens.Put(db, key, t)
}

// SetApprovalForAll grants or revokes the operator role over all tokens of
// a collection held by owner.
func (r *Registry) SetApprovalForAll(db quorum.KVStore, collection, owner, operator quorum.Address, approved bool) error {
	if err := operator.Validate(); err != nil {
		return errors.Wrap(err, "operator")
	}
	if operator.Equals(owner) {
		return errors.Wrap(errors.ErrInput, "approve to caller")
	}
	key := operatorKey(collection, owner, operator)
	if approved {
		return r.operators.Put(db, key, &Operator{Approved: true})
	}
	switch err := r.operators.Delete(db, key); {
	case err == nil, errors.ErrNotFound.Is(err):
		return nil
	default:
		return err
	}
}

// TransferFrom moves a token owned by from. The caller must be the owner,
// the approved address or an operator of the owner.
func (r *Registry) TransferFrom(db quorum.KVStore, collection, caller, from, to quorum.Address, id *uint256.Int) error {
	if err := caller.Validate(); err != nil {
		return errors.Wrap(err, "caller")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	t, key, err := r.load(db, collection, id)
	if err != nil {
		return err
	}
	owner := quorum.Address(t.Owner)
	if !caller.Equals(owner) && !caller.Equals(t.Approved) {
		ok, err := r.IsApprovedForAll(db, collection, owner, caller)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(errors.ErrUnauthorized, "transfer caller is not owner nor approved")
		}
	}
	if !from.Equals(owner) {
		return errors.Wrap(errors.ErrUnauthorized, "transfer of token that is not own")
	}

	if err := r.tokens.Put(db, key, &Token{Owner: to.Clone()}); err != nil {
		return err
	}
	if err := r.addCount(db, collection, from, -1); err != nil {
		return err
	}
	return r.addCount(db, collection, to, 1)
}

func (r *Registry) load(db quorum.ReadOnlyKVStore, collection quorum.Address, id *uint256.Int) (*Token, []byte, error) {
	key, err := tokenKey(collection, id)
	if err != nil {
		return nil, nil, err
	}
	var t Token
	if err := r.tokens.One(db, key, &t); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, nil, errors.Wrapf(errors.ErrNotFound, "nonexistent token %s", coin.Format(id))
		}
		return nil, nil, err
	}
	return &t, key, nil
}

func (r *Registry) addCount(db quorum.KVStore, collection, owner quorum.Address, delta int64) error {
	n, err := r.BalanceOf(db, collection, owner)
	if err != nil {
		return err
	}
	if delta < 0 && n < uint64(-delta) {
		return errors.Wrap(errors.ErrHuman, "negative token count")
	}
	n = uint64(int64(n) + delta)
	return r.counts.Put(db, countKey(collection, owner), &Count{Value: n})
}

func tokenKey(collection quorum.Address, id *uint256.Int) ([]byte, error) {
	if err := collection.Validate(); err != nil {
		return nil, errors.Wrap(err, "collection")
	}
	if id == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "token id")
	}
	b := id.Bytes32()
	key := make([]byte, 0, len(collection)+len(b))
	key = append(key, collection...)
	return append(key, b[:]...), nil
}

func countKey(collection, owner quorum.Address) []byte {
	key := make([]byte, 0, len(collection)+len(owner))
	key = append(key, collection...)
	return append(key, owner...)
}

func operatorKey(collection, owner, operator quorum.Address) []byte {
	key := make([]byte, 0, len(collection)+len(owner)+len(operator))
	key = append(key, collection...)
	key = append(key, owner...)
	return append(key, operator...)
}
