package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRequestLimiter_Disabled(t *testing.T) {
	assert.Nil(t, NewRequestLimiter(0, 5, zap.NewNop()))
	assert.Nil(t, NewRequestLimiter(-1, 5, zap.NewNop()))
}

func TestRequestLimiter_Wait(t *testing.T) {
	limiter := NewRequestLimiter(20, 1, zap.NewNop())
	require.NotNil(t, limiter)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	// burst of one at 20/s: the second and third calls wait ~50ms each
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestRequestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewRequestLimiter(0.001, 1, zap.NewNop())
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, limiter.Wait(ctx))
}
