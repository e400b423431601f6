package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movegraph/internal/bootstrap"
)

func TestAdapterRedisInit(t *testing.T) {
	mr := miniredis.RunT(t)

	a := NewAdapterRedis(&bootstrap.Config{RedisUrl: mr.Addr()}, zap.NewNop().Sugar())
	require.NoError(t, a.Init(context.Background()))
	defer a.Close(context.Background())

	require.NoError(t, a.GetClient().Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestAdapterRedisInitUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	a := NewAdapterRedis(&bootstrap.Config{RedisUrl: addr}, zap.NewNop().Sugar())
	err := a.Init(context.Background())
	assert.Error(t, err)
	assert.NoError(t, a.Close(context.Background()))
}
