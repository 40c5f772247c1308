package ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
)

// sweepThreshold bounds the entry map: once it grows past this size, expired
// entries are evicted during the next Allow call.
const sweepThreshold = 4096

type rateLimitEntry struct {
	count           int
	windowResetTime time.Time
}

// MemoryRateLimiter is the single-process fixed-window counter: a
// mutex-guarded map from user id to {count, windowResetTime}. The
// read-check-increment is serialized per call so concurrent requests from one
// user cannot slip past the ceiling.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	entries  map[string]*rateLimitEntry
	maxQuota int
	window   time.Duration
	now      func() time.Time
}

func NewMemoryRateLimiter(maxQuota int, window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		entries:  make(map[string]*rateLimitEntry),
		maxQuota: maxQuota,
		window:   window,
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, userID string) (*contracts.RateLimitDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if len(l.entries) > sweepThreshold {
		l.sweepLocked(now)
	}

	entry, exists := l.entries[userID]
	if !exists || now.After(entry.windowResetTime) {
		l.entries[userID] = &rateLimitEntry{
			count:           1,
			windowResetTime: now.Add(l.window),
		}
		return &contracts.RateLimitDecision{Allowed: true}, nil
	}

	if entry.count >= l.maxQuota {
		retryAfter := int(entry.windowResetTime.Sub(now).Seconds()) + 1
		return &contracts.RateLimitDecision{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	entry.count++
	return &contracts.RateLimitDecision{Allowed: true}, nil
}

func (l *MemoryRateLimiter) sweepLocked(now time.Time) {
	for userID, entry := range l.entries {
		if now.After(entry.windowResetTime) {
			delete(l.entries, userID)
		}
	}
}
