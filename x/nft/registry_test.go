package nft

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/quorumtest"
	"github.com/zkelabs/quorum/quorumtest/assert"
	"github.com/zkelabs/quorum/store"
)

func TestTransferFrom(t *testing.T) {
	collection := quorumtest.RandomAddr()
	owner := quorumtest.RandomAddr()
	approved := quorumtest.RandomAddr()
	operator := quorumtest.RandomAddr()
	stranger := quorumtest.RandomAddr()
	to := quorumtest.RandomAddr()
	id := uint256.NewInt(42)

	cases := map[string]struct {
		caller  quorum.Address
		from    quorum.Address
		id      *uint256.Int
		wantErr *errors.Error
	}{
		"owner":            {caller: owner, from: owner, id: id},
		"approved address": {caller: approved, from: owner, id: id},
		"operator":         {caller: operator, from: owner, id: id},
		"stranger":         {caller: stranger, from: owner, id: id, wantErr: errors.ErrUnauthorized},
		"wrong from":       {caller: owner, from: stranger, id: id, wantErr: errors.ErrUnauthorized},
		"missing token":    {caller: owner, from: owner, id: uint256.NewInt(7), wantErr: errors.ErrNotFound},
		"no caller":        {from: owner, id: id, wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			r := NewRegistry()
			require.NoError(t, r.Mint(db, collection, owner, id))
			require.NoError(t, r.Approve(db, collection, owner, approved, id))
			require.NoError(t, r.SetApprovalForAll(db, collection, owner, operator, true))

			err := r.TransferFrom(db, collection, tc.caller, tc.from, to, tc.id)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)

			got, err := r.OwnerOf(db, collection, id)
			require.NoError(t, err)
			require.Equal(t, to, got)

			// the approval does not follow the token
			a, err := r.GetApproved(db, collection, id)
			require.NoError(t, err)
			require.Nil(t, a)

			n, err := r.BalanceOf(db, collection, owner)
			require.NoError(t, err)
			require.Equal(t, uint64(0), n)
			n, err = r.BalanceOf(db, collection, to)
			require.NoError(t, err)
			require.Equal(t, uint64(1), n)
		})
	}
}

func TestApprove(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	collection, owner, operator, spender := quorumtest.RandomAddr(), quorumtest.RandomAddr(), quorumtest.RandomAddr(), quorumtest.RandomAddr()
	id := uint256.NewInt(1)
	require.NoError(t, r.Mint(db, collection, owner, id))

	assert.IsErr(t, errors.ErrInput, r.Approve(db, collection, owner, owner, id))
	assert.IsErr(t, errors.ErrUnauthorized, r.Approve(db, collection, operator, spender, id))

	require.NoError(t, r.SetApprovalForAll(db, collection, owner, operator, true))
	require.NoError(t, r.Approve(db, collection, operator, spender, id))
	got, err := r.GetApproved(db, collection, id)
	require.NoError(t, err)
	require.Equal(t, spender, got)

	require.NoError(t, r.SetApprovalForAll(db, collection, owner, operator, false))
	ok, err := r.IsApprovedForAll(db, collection, owner, operator)
	require.NoError(t, err)
	require.False(t, ok)
	// revoking twice is fine
	require.NoError(t, r.SetApprovalForAll(db, collection, owner, operator, false))

	assert.IsErr(t, errors.ErrInput, r.SetApprovalForAll(db, collection, owner, owner, true))
}

func TestMint(t *testing.T) {
	db := store.MemStore()
	r := NewRegistry()
	collection, owner := quorumtest.RandomAddr(), quorumtest.RandomAddr()

	require.NoError(t, r.Mint(db, collection, owner, uint256.NewInt(1)))
	assert.IsErr(t, errors.ErrDuplicate, r.Mint(db, collection, owner, uint256.NewInt(1)))
	// ids are scoped by collection
	require.NoError(t, r.Mint(db, quorumtest.RandomAddr(), owner, uint256.NewInt(1)))

	_, err := r.OwnerOf(db, collection, uint256.NewInt(2))
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.IsErr(t, errors.ErrEmpty, r.Mint(db, collection, owner, nil))
}

func TestGenesisTokens(t *testing.T) {
	db := store.MemStore()
	opts := quorum.Options{"nft": []byte(`[
		{"collection": "0102030405060708090001020304050607080900",
		 "owner": "2122232425262728293021222324252627282930",
		 "id": "0x2a"}]`)}

	var init Initializer
	require.NoError(t, init.FromGenesis(opts, db))

	collection := quorumtest.ParseAddress(t, "0102030405060708090001020304050607080900")
	got, err := NewRegistry().OwnerOf(db, collection, uint256.NewInt(42))
	require.NoError(t, err)
	require.Equal(t, quorumtest.ParseAddress(t, "2122232425262728293021222324252627282930"), got)

	assert.IsErr(t, errors.ErrDuplicate, init.FromGenesis(opts, db))
}
