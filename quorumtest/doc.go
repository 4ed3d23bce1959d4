/*
Package quorumtest provides helpers for testing extensions: authenticators
that can be configured per test, and generators of unique conditions and
addresses.
*/
package quorumtest
