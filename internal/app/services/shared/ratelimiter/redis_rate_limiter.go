package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"go.uber.org/zap"
)

const limiterGroupAI = "RATELIMIT:AI"

// RedisRateLimiter is the multi-instance variant of the fixed-window counter:
// one INCR-with-TTL key per user per window, shared by every server process.
// Same boundary-burst property as the in-memory limiter.
type RedisRateLimiter struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	maxQuota int
	window   time.Duration
	now      func() time.Time
}

func NewRedisRateLimiter(redis contracts.RedisRepository, log *zap.Logger, maxQuota int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		redis:    redis,
		log:      log,
		maxQuota: maxQuota,
		window:   window,
		now:      time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, userID string) (*contracts.RateLimitDecision, error) {
	if userID == "" {
		return &contracts.RateLimitDecision{Allowed: false}, exceptions.ErrRateLimitBackend(fmt.Errorf("empty user id"))
	}

	now := l.now().UTC()
	windowSec := int64(l.window.Seconds())
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", limiterGroupAI, userID, windowID)

	ttl := l.window + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("RedisRateLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &contracts.RateLimitDecision{Allowed: false}, err
	}

	nextWindowStart := (windowID + 1) * windowSec
	retryAfter := int(nextWindowStart-now.Unix()) + 1

	if newCount > int64(l.maxQuota) {
		return &contracts.RateLimitDecision{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &contracts.RateLimitDecision{Allowed: true}, nil
}
