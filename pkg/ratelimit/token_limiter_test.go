package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiter_WaitConsumesTokens(t *testing.T) {
	l := NewTokenLimiter(600)

	require.NoError(t, l.Wait(context.Background(), 100))
	assert.LessOrEqual(t, l.GetRemaining(), 500)
}

func TestTokenLimiter_OversizedRequestIsClamped(t *testing.T) {
	l := NewTokenLimiter(10)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx, 1_000))
}

func TestTokenLimiter_CancelledContext(t *testing.T) {
	l := NewTokenLimiter(60)
	require.NoError(t, l.Wait(context.Background(), 60))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx, 30))
}

func TestTokenLimiter_Unlimited(t *testing.T) {
	l := NewTokenLimiter(0)
	assert.NoError(t, l.Wait(context.Background(), 1_000_000))
	assert.Equal(t, -1, l.GetRemaining())
}
