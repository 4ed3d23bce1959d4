package x

import (
	"context"

	"github.com/zkelabs/quorum"
)

type contextKey int

const (
	contextKeySigners contextKey = iota
)

// WithSigners returns a context carrying the conditions that authorized the
// current call. It must be called only by the host that verified them.
func WithSigners(ctx quorum.Context, signers ...quorum.Condition) quorum.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// GetSigners returns the conditions set with WithSigners. It may be empty.
func GetSigners(ctx quorum.Context) []quorum.Condition {
	val, _ := ctx.Value(contextKeySigners).([]quorum.Condition)
	return val
}

// SignerAuth authenticates the conditions set with WithSigners.
type SignerAuth struct{}

var _ Authenticator = SignerAuth{}

func (SignerAuth) GetConditions(ctx quorum.Context) []quorum.Condition {
	return GetSigners(ctx)
}

func (SignerAuth) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, s := range GetSigners(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
