package shopsite_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{name: "allows calls within rate", rate: 100, burst: 10, daily: 5000, calls: 3},
		{name: "allows burst", rate: 100, burst: 5, daily: 5000, calls: 5},
		{name: "rejects when daily limit reached", rate: 100, burst: 10, daily: 2, calls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := shopsite.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, shopsite.ErrDailyLimitReached)
				return
			}
			require.NoError(t, lastErr)
			assert.Equal(t, int64(tt.calls), rl.DailyCount())
		})
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rl := shopsite.NewRateLimiter(100, 10, 2, shopsite.WithRateLimiterNowFunc(clock))

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), shopsite.ErrDailyLimitReached)

	q := rl.Quota()
	assert.Equal(t, int64(2), q.Limit)
	assert.Equal(t, int64(2), q.Used)
	assert.Equal(t, int64(0), q.Remaining)
	assert.Equal(t, now.Add(24*time.Hour), q.ResetAt)

	mu.Lock()
	now = now.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	q = rl.Quota()
	assert.Equal(t, int64(1), q.Used)
	assert.Equal(t, int64(1), q.Remaining)
	assert.Equal(t, now.Add(24*time.Hour), q.ResetAt)
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// One token per hour with the burst spent: the second wait must block.
	rl := shopsite.NewRateLimiter(1.0/3600, 1, 100)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}

func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	rl := shopsite.NewRateLimiter(10000, 100, 50)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok int

	for range 80 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Wait(context.Background()) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, ok)
	assert.Equal(t, int64(50), rl.DailyCount())
}
