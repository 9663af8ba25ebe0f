package ratelimiter

import (
	"context"

	"homeo-service/internal/app/contracts"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestLimiter spaces outgoing requests with a token bucket shared by every call of a client.
type RequestLimiter struct {
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewRequestLimiter returns nil when perSecond is not positive, which turns limiting off.
func NewRequestLimiter(perSecond float64, burst int, log *zap.Logger) contracts.RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RequestLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		log:     log,
	}
}

func (l *RequestLimiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		l.log.Warn("RequestLimiter.Wait aborted", zap.Error(err))
		return err
	}
	return nil
}
