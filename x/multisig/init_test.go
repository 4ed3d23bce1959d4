package multisig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/gconf"
	"github.com/zkelabs/quorum/store"
)

func TestGenesis(t *testing.T) {
	const (
		alice = "1111111111111111111111111111111111111111"
		bob   = "2222222222222222222222222222222222222222"
		carol = "3333333333333333333333333333333333333333"
	)
	signers := fmt.Sprintf(`{"signers": [%q, %q, %q], "min_authorizations": 2}`, alice, bob, "0x"+carol)

	cases := map[string]struct {
		opts      quorum.Options
		wantErr   bool
		wantCount int
		wantConf  Configuration
	}{
		"three signers": {
			opts:      quorum.Options{"multisig": []byte(signers)},
			wantCount: 3,
		},
		"with configuration": {
			opts: quorum.Options{
				"multisig": []byte(signers),
				"conf":     []byte(`{"multisig": {"timelock_seconds": 60, "max_signers": 5}}`),
			},
			wantCount: 3,
			wantConf:  Configuration{TimelockSeconds: 60, MaxSigners: 5},
		},
		"too many signers for configuration": {
			opts: quorum.Options{
				"multisig": []byte(signers),
				"conf":     []byte(`{"multisig": {"max_signers": 2}}`),
			},
			wantErr: true,
		},
		"negative timelock": {
			opts: quorum.Options{
				"multisig": []byte(signers),
				"conf":     []byte(`{"multisig": {"timelock_seconds": -1}}`),
			},
			wantErr: true,
		},
		"threshold above signer count": {
			opts:    quorum.Options{"multisig": []byte(fmt.Sprintf(`{"signers": [%q], "min_authorizations": 2}`, alice))},
			wantErr: true,
		},
		"zero threshold": {
			opts:    quorum.Options{"multisig": []byte(fmt.Sprintf(`{"signers": [%q], "min_authorizations": 0}`, alice))},
			wantErr: true,
		},
		"duplicate signer": {
			opts:    quorum.Options{"multisig": []byte(fmt.Sprintf(`{"signers": [%q, %q], "min_authorizations": 1}`, alice, "0x"+alice))},
			wantErr: true,
		},
		"bad address": {
			opts:    quorum.Options{"multisig": []byte(`{"signers": ["1234"], "min_authorizations": 1}`)},
			wantErr: true,
		},
		"no section": {
			opts:    quorum.Options{},
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			var init Initializer
			err := init.FromGenesis(tc.opts, db)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			registry := NewSignerRegistry()
			n, err := registry.SignerCount(db)
			require.NoError(t, err)
			require.Equal(t, tc.wantCount, n)

			ok, err := registry.IsSigner(db, repeated(0x33))
			require.NoError(t, err)
			require.True(t, ok)

			var conf Configuration
			switch err := gconf.Load(db, configPkg, &conf); {
			case err == nil:
				require.Equal(t, tc.wantConf, conf)
			default:
				require.Equal(t, Configuration{}, tc.wantConf)
			}

			// genesis runs once
			require.Error(t, init.FromGenesis(tc.opts, db))
		})
	}
}
