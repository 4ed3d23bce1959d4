package quorum

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, DefaultLogger, GetLogger(ctx))

	var buf bytes.Buffer
	logger := log.NewTMLogger(&buf)
	ctx = WithLogger(ctx, logger)
	ctx = WithLogInfo(ctx, "module", "multisig")

	GetLogger(ctx).Info("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "module=multisig")
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()
	_, ok := BlockTime(ctx)
	require.False(t, ok)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got, ok := BlockTime(WithBlockTime(ctx, now))
	require.True(t, ok)
	require.Equal(t, now, got)
}
