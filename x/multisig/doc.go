/*
Package multisig implements an M-of-N authorization engine.

A committee of signers controls the assets held by the multisig address.
Any sensitive operation, be it a token transfer, an NFT approval, an
arbitrary call or a change of the committee itself, goes through the same
three steps:

	signal   a signer announces the action; a global nonce is assigned
	sign     signers approve the action, identified by its fingerprint
	execute  once enough signers approved, any signer performs it

An action is identified by the keccak256 fingerprint of its kind, its
parameters and its nonce. Parameters are never stored; every sign and
execute call recomputes the fingerprint, so any change to a parameter or the
nonce looks exactly like an action that was never signalled.

Executing an action clears its pending record before the effect is applied.
All state changes of a single call are written to a cache wrap that is
discarded if any step fails, including the effect itself.
*/
package multisig
