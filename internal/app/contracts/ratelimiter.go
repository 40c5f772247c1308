package contracts

import "context"

// RateLimitDecision reports allowance and, when denied, the seconds left until
// the next window opens.
type RateLimitDecision struct {
	Allowed        bool
	RetryAfterSecs int
}

// UserRateLimiter bounds per-user request frequency for the inference
// endpoints with a fixed window counter. Boundary bursts of up to twice the
// ceiling across adjacent windows are an accepted property of the algorithm.
type UserRateLimiter interface {
	Allow(ctx context.Context, userID string) (*RateLimitDecision, error)
}
