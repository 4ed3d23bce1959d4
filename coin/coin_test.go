package coin

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/quorumtest/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		input   string
		want    *uint256.Int
		wantErr *errors.Error
	}{
		"decimal": {
			input: "5000",
			want:  uint256.NewInt(5000),
		},
		"decimal with spaces": {
			input: " 42\n",
			want:  uint256.NewInt(42),
		},
		"hex": {
			input: "0xff",
			want:  uint256.NewInt(255),
		},
		"hex with leading zeros": {
			input: "0x00ff",
			want:  uint256.NewInt(255),
		},
		"zero": {
			input: "0",
			want:  new(uint256.Int),
		},
		"largest value": {
			input: "115792089237316195423570985008687907853269984665640564039457584007913129639935",
			want:  new(uint256.Int).SetAllOne(),
		},
		"overflow": {
			input:   "115792089237316195423570985008687907853269984665640564039457584007913129639936",
			wantErr: errors.ErrOverflow,
		},
		"negative": {
			input:   "-1",
			wantErr: errors.ErrInput,
		},
		"empty": {
			input:   "  ",
			wantErr: errors.ErrEmpty,
		},
		"not a number": {
			input:   "12ab",
			wantErr: errors.ErrInput,
		},
		"hex zero": {
			input: "0x000",
			want:  new(uint256.Int),
		},
		"hex overflow": {
			input:   "0x1" + strings.Repeat("0", 64),
			wantErr: errors.ErrOverflow,
		},
		"empty hex": {
			input:   "0x",
			wantErr: errors.ErrInput,
		},
		"invalid hex": {
			input:   "0xzz",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			if !got.Eq(tc.want) {
				t.Fatalf("want %s, got %s", Format(tc.want), Format(got))
			}
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(nil))
	assert.Equal(t, "0", Format(new(uint256.Int)))
	assert.Equal(t, "5000000000000000000", Format(MustExpand(5, 18)))
}

func TestExpand(t *testing.T) {
	got, err := Expand(5, 18)
	assert.Nil(t, err)
	assert.Equal(t, "5000000000000000000", Format(got))

	got, err = Expand(7, 0)
	assert.Nil(t, err)
	assert.Equal(t, "7", Format(got))

	_, err = Expand(1, MaxDecimals+1)
	assert.IsErr(t, errors.ErrInput, err)

	_, err = Expand(1000, MaxDecimals)
	assert.IsErr(t, errors.ErrOverflow, err)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a number") })
	assert.Equal(t, "12", Format(MustParse("12")))
}
