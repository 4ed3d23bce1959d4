/*
Package call routes arbitrary calls, a target address with a value and a
payload, to the handlers registered for that target.
*/
package call

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
)

// Callable handles calls made to the address it is registered for.
type Callable interface {
	Call(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, value *uint256.Int, data []byte) error
}

// CallableFunc adapts a function to the Callable interface.
type CallableFunc func(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, value *uint256.Int, data []byte) error

func (fn CallableFunc) Call(ctx quorum.Context, db quorum.KVStore, caller quorum.Address, value *uint256.Int, data []byte) error {
	return fn(ctx, db, caller, value, data)
}

// Bank moves the value attached to a call.
type Bank interface {
	Send(db quorum.KVStore, from, to quorum.Address, amount *uint256.Int) error
}

// Router dispatches calls by target address.
type Router struct {
	bank     Bank
	handlers map[string]Callable
}

// NewRouter returns a router that moves call values through bank.
func NewRouter(bank Bank) *Router {
	return &Router{
		bank:     bank,
		handlers: make(map[string]Callable),
	}
}

// Register sets the handler of a target. It panics if the target is invalid
// or already registered.
func (r *Router) Register(target quorum.Address, c Callable) {
	if err := target.Validate(); err != nil {
		panic(fmt.Sprintf("invalid call target: %s", err))
	}
	if _, ok := r.handlers[string(target)]; ok {
		panic(fmt.Sprintf("re-registering call target: %s", target))
	}
	r.handlers[string(target)] = c
}

// Call transfers value from caller to target and then passes data to the
// target handler. A target without a handler accepts plain value transfers
// only. Errors of the bank and of the handler are returned unmodified.
func (r *Router) Call(ctx quorum.Context, db quorum.KVStore, caller, target quorum.Address, value *uint256.Int, data []byte) error {
	if err := target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	if value != nil && !value.IsZero() {
		if err := r.bank.Send(db, caller, target, value); err != nil {
			return err
		}
	}
	h, ok := r.handlers[string(target)]
	if !ok {
		if len(data) != 0 {
			return errors.Wrapf(errors.ErrNotFound, "no handler for %s", target)
		}
		return nil
	}
	return h.Call(ctx, db, caller, value, data)
}
