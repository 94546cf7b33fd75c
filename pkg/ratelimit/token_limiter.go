package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// TokenLimiter bounds the number of LLM tokens spent per minute.
type TokenLimiter struct {
	limiter *rate.Limiter
	burst   int
}

// NewTokenLimiter creates a limiter that refills maxTokensPerMinute tokens every minute.
func NewTokenLimiter(maxTokensPerMinute int) *TokenLimiter {
	if maxTokensPerMinute <= 0 {
		return &TokenLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	every := time.Minute / time.Duration(maxTokensPerMinute)
	return &TokenLimiter{
		limiter: rate.NewLimiter(rate.Every(every), maxTokensPerMinute),
		burst:   maxTokensPerMinute,
	}
}

// Wait blocks until n tokens are available or ctx is done.
// Requests larger than the per-minute budget wait for the full budget.
func (t *TokenLimiter) Wait(ctx context.Context, n int) error {
	if t.burst == 0 {
		return nil
	}
	if n > t.burst {
		n = t.burst
	}
	return t.limiter.WaitN(ctx, n)
}

// GetRemaining returns the tokens currently available.
func (t *TokenLimiter) GetRemaining() int {
	if t.burst == 0 {
		return -1
	}
	return int(t.limiter.Tokens())
}
