package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/errors"
	"github.com/zkelabs/quorum/store"
)

type limits struct {
	Max   uint32 `protobuf:"varint,1,opt,name=max,proto3" json:"max,omitempty"`
	Label string `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
}

func (m *limits) Reset()         { *m = limits{} }
func (m *limits) String() string { return proto.CompactTextString(m) }
func (*limits) ProtoMessage()    {}

func (m *limits) Validate() error {
	if m.Max == 0 {
		return errors.Wrap(errors.ErrEmpty, "max")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got limits
	err := Load(db, "limits", &got)
	require.True(t, errors.ErrNotFound.Is(err))

	err = Save(db, "limits", &limits{})
	require.True(t, errors.ErrEmpty.Is(err))

	require.NoError(t, Save(db, "limits", &limits{Max: 3, Label: "x"}))
	require.NoError(t, Load(db, "limits", &got))
	require.Equal(t, limits{Max: 3, Label: "x"}, got)

	raw, err := db.Get([]byte("_c:limits"))
	require.NoError(t, err)
	require.NotNil(t, raw)
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		want    *limits
		wantErr *errors.Error
	}{
		"configuration present": {
			genesis: `{"conf": {"limits": {"max": 5, "label": "five"}}}`,
			want:    &limits{Max: 5, Label: "five"},
		},
		"no conf section": {
			genesis: `{}`,
			wantErr: errors.ErrNotFound,
		},
		"no package section": {
			genesis: `{"conf": {"other": {}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"limits": {"max": 0}}}`,
			wantErr: errors.ErrEmpty,
		},
		"malformed json": {
			genesis: `{"conf": {"limits": {"max": "a"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var opts quorum.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := InitConfig(db, opts, "limits", &limits{})
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			require.NoError(t, err)

			var got limits
			require.NoError(t, Load(db, "limits", &got))
			require.Equal(t, tc.want, &got)
		})
	}
}
