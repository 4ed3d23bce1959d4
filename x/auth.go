package x

import (
	"github.com/zkelabs/quorum"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// extensions, so we can plug in another authentication system.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(quorum.Context) []quorum.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(quorum.Context, quorum.Address) bool
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx quorum.Context, auth Authenticator) quorum.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
