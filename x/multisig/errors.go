package multisig

import (
	"github.com/zkelabs/quorum/errors"
)

// multisig takes 1030-1039
var (
	ErrForbidden                 = errors.Register(1030, "forbidden")
	ErrActionNotSignalled        = errors.Register(1031, "action not signalled")
	ErrAlreadySigned             = errors.Register(1032, "already signed")
	ErrInsufficientAuthorization = errors.Register(1033, "insufficient authorization")
	ErrInvalidThreshold          = errors.Register(1034, "invalid min authorizations")
	ErrInvalidSignerState        = errors.Register(1035, "invalid signer state")
	ErrLengthMismatch            = errors.Register(1036, "lengths invalid")
	ErrTimelocked                = errors.Register(1037, "action timelocked")
)
