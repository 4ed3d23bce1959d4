package multisig

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/coin"
	"github.com/zkelabs/quorum/errors"
	"golang.org/x/crypto/sha3"
)

// HashLength is the size of an action fingerprint.
const HashLength = 32

// ActionHash is the fingerprint of an action kind, its parameters and the
// nonce it was signalled with.
type ActionHash [HashLength]byte

// Fingerprint returns the keccak256 digest of the packed encoding of the
// action and the nonce. The encoding is the one of the solidity
// abi.encodePacked function for (string kind, params..., uint256 nonce), so
// the same value can be computed by EVM tooling given that layout.
//
// Every kind is prefixed with its tag, transaction included. Contracts that
// hash a transaction as (address target, uint256 value, bytes data, uint256
// nonce) without the "transaction" tag produce a different fingerprint for
// that kind.
func Fingerprint(a Action, nonce uint64) ActionHash {
	var h ActionHash
	d := sha3.NewLegacyKeccak256()
	_, _ = d.Write(Encode(a, nonce))
	d.Sum(h[:0])
	return h
}

// Encode returns the packed encoding of the action and the nonce, the
// preimage of the fingerprint.
func Encode(a Action, nonce uint64) []byte {
	var p packer
	p.raw([]byte(a.Kind()))
	a.pack(&p)
	p.uint(uint256.NewInt(nonce))
	return p.buf
}

// String returns the 0x prefixed lower case hex representation.
func (h ActionHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// MarshalJSON encodes the hash as a hex string.
func (h ActionHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a hex string, with or without the 0x prefix.
func (h *ActionHash) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	parsed, err := ParseActionHash(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseActionHash decodes a hex encoded fingerprint.
func ParseActionHash(s string) (ActionHash, error) {
	var h ActionHash
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, errors.Wrapf(errors.ErrInput, "hash: %s", err)
	}
	if len(raw) != HashLength {
		return h, errors.Wrapf(errors.ErrInput, "hash of %d bytes", len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// packer builds the abi.encodePacked encoding. Dynamic types are written
// without a length prefix, array elements are padded to 32 bytes.
type packer struct {
	buf []byte
}

func (p *packer) raw(b []byte) {
	p.buf = append(p.buf, b...)
}

func (p *packer) address(a quorum.Address) {
	p.buf = append(p.buf, a...)
}

func (p *packer) uint(v *uint256.Int) {
	if v == nil {
		v = new(uint256.Int)
	}
	b := v.Bytes32()
	p.buf = append(p.buf, b[:]...)
}

func (p *packer) boolean(v bool) {
	if v {
		p.buf = append(p.buf, 1)
	} else {
		p.buf = append(p.buf, 0)
	}
}

func (p *packer) addresses(list []quorum.Address) {
	for _, a := range list {
		var word [32]byte
		copy(word[32-len(a):], a)
		p.buf = append(p.buf, word[:]...)
	}
}

func (p *packer) uints(list []*uint256.Int) {
	for _, v := range list {
		p.uint(v)
	}
}

func addrTag(key string, a quorum.Address) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(a.String())}
}

func addrsTag(key string, list []quorum.Address) common.KVPair {
	strs := make([]string, len(list))
	for i, a := range list {
		strs[i] = a.String()
	}
	return common.KVPair{Key: []byte(key), Value: []byte(strings.Join(strs, ","))}
}

func uintTag(key string, v *uint256.Int) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(coin.Format(v))}
}

func uintsTag(key string, list []*uint256.Int) common.KVPair {
	strs := make([]string, len(list))
	for i, v := range list {
		strs[i] = coin.Format(v)
	}
	return common.KVPair{Key: []byte(key), Value: []byte(strings.Join(strs, ","))}
}

func boolTag(key string, v bool) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(strconv.FormatBool(v))}
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
