package multisig

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestCodecMatchesProtoFieldNumbers(t *testing.T) {
	cases := map[string]struct {
		msg  proto.Message
		wire []byte
	}{
		"pending action": {
			msg:  &PendingAction{Kind: "a", Nonce: 2, SignalledAt: 3, Signers: [][]byte{{1}}},
			wire: []byte{0x0a, 0x01, 'a', 0x10, 0x02, 0x18, 0x03, 0x22, 0x01, 0x01},
		},
		"governance": {
			msg:  &Governance{Signers: [][]byte{{1}}, MinAuthorizations: 2},
			wire: []byte{0x0a, 0x01, 0x01, 0x10, 0x02},
		},
		"configuration": {
			msg:  &Configuration{TimelockSeconds: 60, MaxSigners: 5},
			wire: []byte{0x08, 0x3c, 0x10, 0x05},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := proto.Marshal(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.wire, raw)
		})
	}
}
