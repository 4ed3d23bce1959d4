/*
Package quorum defines the interfaces shared by the quorum packages: principal
addresses and conditions, the key-value store the state machines write to,
genesis options and the values carried by the request context.

Extensions live under x/. The central one is x/multisig, an M-of-N
authorization engine. Asset extensions (x/token, x/nft, x/call) provide the
effects the multisig performs once an action reaches its quorum.
*/
package quorum
