/*
Package nft implements a registry of non fungible tokens.

Tokens are grouped in collections, each identified by an address, and
identified within a collection by a 256 bit id. A token can be moved by its
owner, by the single address approved for it, or by an operator the owner
approved for the whole collection.
*/
package nft
