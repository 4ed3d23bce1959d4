/*
Package coin parses and formats 256 bit unsigned amounts: token balances,
allowances, NFT ids and native values.
*/
package coin

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum/errors"
)

// MaxDecimals is the highest precision Expand accepts. 10^77 is the largest
// power of ten below 2^256.
const MaxDecimals = 77

// Parse decodes a decimal or 0x prefixed hex number. Surrounding white space
// is ignored.
func Parse(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, errors.Wrap(errors.ErrEmpty, "amount")
	case strings.HasPrefix(s, "-"):
		return nil, errors.Wrapf(errors.ErrInput, "negative amount %q", s)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		// FromHex refuses leading zeros.
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" && len(s) > 2 {
			digits = "0"
		}
		v, err := uint256.FromHex("0x" + digits)
		if err != nil {
			return nil, parseErr(err, s)
		}
		return v, nil
	default:
		v, err := uint256.FromDecimal(s)
		if err != nil {
			return nil, parseErr(err, s)
		}
		return v, nil
	}
}

func parseErr(err error, s string) error {
	if err == uint256.ErrBig256Range {
		return errors.Wrapf(errors.ErrOverflow, "amount %q", s)
	}
	return errors.Wrapf(errors.ErrInput, "invalid amount %q: %s", s, err)
}

// MustParse is like Parse but panics on error. Use it for constants and in
// tests only.
func MustParse(s string) *uint256.Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format returns the decimal representation. Nil is zero.
func Format(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

// Expand returns n * 10^decimals, the base unit amount of n whole tokens
// with given precision.
func Expand(n uint64, decimals uint) (*uint256.Int, error) {
	if decimals > MaxDecimals {
		return nil, errors.Wrapf(errors.ErrInput, "%d decimals", decimals)
	}
	unit := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
	res, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(n), unit)
	if overflow {
		return nil, errors.Wrapf(errors.ErrOverflow, "%d * 10^%d", n, decimals)
	}
	return res, nil
}

// MustExpand is like Expand but panics on error.
func MustExpand(n uint64, decimals uint) *uint256.Int {
	v, err := Expand(n, decimals)
	if err != nil {
		panic(err)
	}
	return v
}
