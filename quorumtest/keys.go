package quorumtest

import (
	"testing"

	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/zkelabs/quorum"
)

// NewCondition returns the signature condition of a freshly generated
// ed25519 key. Every call returns a different condition.
func NewCondition() quorum.Condition {
	pub := ed25519.GenPrivKey().PubKey().(ed25519.PubKeyEd25519)
	return quorum.NewCondition("sigs", "ed25519", pub[:])
}

// RandomAddr returns the address of a new condition.
func RandomAddr() quorum.Address {
	return NewCondition().Address()
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation, failing the test on error.
func ParseAddress(t testing.TB, encodedAddress string) quorum.Address {
	t.Helper()

	addr, err := quorum.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
