/*
Package x holds the extensions of a quorum application and the
authentication they share.

Extensions never verify signatures themselves. They receive an
Authenticator and ask it which conditions authorized the current call.
A host that verified the signers of a transaction stores them with
WithSigners and hands SignerAuth to the extensions.

Sub-packages:

	multisig  signer governed actions and their approval lifecycle
	token     fungible token ledger and the native value bank
	nft       non-fungible token registry
	call      routing of arbitrary transactions to registered targets
*/
package x
