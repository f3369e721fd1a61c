package shopsite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the local daily call quota is spent.
var ErrDailyLimitReached = errors.New("daily ShopSite call limit reached")

const quotaWindow = 24 * time.Hour

// QuotaState is a point-in-time view of a RateLimiter's daily quota.
type QuotaState struct {
	Limit     int64
	Used      int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter spaces signed calls with a token bucket and caps them with a
// daily quota. The quota window is rolling: it starts at construction and is
// renewed 24 hours later on the next call.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst, and at most maxDaily calls per window.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(quotaWindow)
	return r
}

// Wait reserves one call from the daily quota and then blocks until the
// token bucket allows it or ctx is done. A canceled wait still counts.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserve(); err != nil {
		return err
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (r *RateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	if r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	return nil
}

func (r *RateLimiter) rollLocked() {
	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(quotaWindow)
	}
}

// DailyCount returns the number of calls made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.Quota().Used
}

// Quota returns the current quota state.
func (r *RateLimiter) Quota() QuotaState {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	return QuotaState{
		Limit:     r.maxDaily,
		Used:      r.used,
		Remaining: max(r.maxDaily-r.used, 0),
		ResetAt:   r.resetAt,
	}
}
