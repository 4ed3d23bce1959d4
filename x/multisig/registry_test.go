package multisig

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/quorumtest/assert"
	"github.com/zkelabs/quorum/store"
)

func TestSignerRegistry(t *testing.T) {
	db := store.MemStore()
	r := NewSignerRegistry()
	a, b, c := repeated(0x01), repeated(0x02), repeated(0x03)

	_, err := r.SignerCount(db)
	assert.IsErr(t, errors.ErrState, err)

	require.NoError(t, r.Seed(db, []quorum.Address{a, b, c}, 2))
	assert.IsErr(t, errors.ErrState, r.Seed(db, []quorum.Address{a}, 1))

	all, err := r.Signers(db)
	require.NoError(t, err)
	require.Equal(t, []quorum.Address{a, b, c}, all)

	// removal moves the last signer into the freed slot
	require.NoError(t, r.setSigner(db, a, false))
	all, err = r.Signers(db)
	require.NoError(t, err)
	require.Equal(t, []quorum.Address{c, b}, all)

	assert.IsErr(t, ErrInvalidThreshold, r.setSigner(db, b, false))
	assert.IsErr(t, ErrInvalidThreshold, r.setThreshold(db, 3))
	require.NoError(t, r.setThreshold(db, 1))
	require.NoError(t, r.setSigner(db, b, false))

	n, err := r.SignerCount(db)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	ok, err := r.IsSigner(db, c)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckSetSigner(t *testing.T) {
	a, b, c := repeated(0x01), repeated(0x02), repeated(0x03)
	g := &Governance{Signers: [][]byte{a, b}, MinAuthorizations: 2}

	cases := map[string]struct {
		conf     Configuration
		signer   quorum.Address
		isSigner bool
		wantErr  *errors.Error
	}{
		"add": {
			signer:   c,
			isSigner: true,
		},
		"add existing": {
			signer:   a,
			isSigner: true,
			wantErr:  ErrInvalidSignerState,
		},
		"add over limit": {
			conf:     Configuration{MaxSigners: 2},
			signer:   c,
			isSigner: true,
			wantErr:  ErrInvalidSignerState,
		},
		"remove below threshold": {
			signer:  a,
			wantErr: ErrInvalidThreshold,
		},
		"remove unknown": {
			signer:  c,
			wantErr: ErrInvalidSignerState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := checkSetSigner(g, &tc.conf, tc.signer, tc.isSigner)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
