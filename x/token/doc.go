/*
Package token implements a fungible token ledger.

Any address can be used as a token identifier. Balances and allowances are
kept per token, as 256 bit unsigned integers. The native currency is the
token identified by NativeToken and is moved through a Bank.
*/
package token
