package genlimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the commands subset in memory.
type fakeRedis struct {
	counters map[string]int64
	ttls     map[string]time.Duration
	failWith error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		counters: make(map[string]int64),
		ttls:     make(map[string]time.Duration),
	}
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.failWith != nil {
		return redis.NewIntResult(0, f.failWith)
	}
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func (f *fakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.failWith != nil {
		return redis.NewBoolResult(false, f.failWith)
	}
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failWith != nil {
		return redis.NewStringResult("", f.failWith)
	}
	count, ok := f.counters[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(count, 10), nil)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newLimiter(rdb commands, quota int, now time.Time) *Limiter {
	l := &Limiter{rdb: rdb, quota: quota, now: fixedClock(now)}
	return l
}

func TestLimiterAllow(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	orgID := uuid.New()

	t.Run("allows up to the quota", func(t *testing.T) {
		rdb := newFakeRedis()
		l := newLimiter(rdb, 3, march)

		for range 3 {
			require.NoError(t, l.Allow(ctx, orgID))
		}
		assert.ErrorIs(t, l.Allow(ctx, orgID), ErrQuotaExceeded)
	})

	t.Run("sets a TTL on the first increment only", func(t *testing.T) {
		rdb := newFakeRedis()
		l := newLimiter(rdb, 10, march)

		require.NoError(t, l.Allow(ctx, orgID))
		require.NoError(t, l.Allow(ctx, orgID))

		require.Len(t, rdb.ttls, 1)
		for _, ttl := range rdb.ttls {
			// Rest of March plus the slack day.
			assert.Greater(t, ttl, 16*24*time.Hour)
			assert.Less(t, ttl, 18*24*time.Hour)
		}
	})

	t.Run("windows are per month", func(t *testing.T) {
		rdb := newFakeRedis()
		l := newLimiter(rdb, 1, march)
		require.NoError(t, l.Allow(ctx, orgID))
		assert.ErrorIs(t, l.Allow(ctx, orgID), ErrQuotaExceeded)

		april := newLimiter(rdb, 1, march.AddDate(0, 1, 0))
		assert.NoError(t, april.Allow(ctx, orgID))
	})

	t.Run("organizations are isolated", func(t *testing.T) {
		rdb := newFakeRedis()
		l := newLimiter(rdb, 1, march)

		require.NoError(t, l.Allow(ctx, orgID))
		assert.NoError(t, l.Allow(ctx, uuid.New()))
	})

	t.Run("backend failure is unavailable", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.failWith = errors.New("connection refused")
		l := newLimiter(rdb, 5, march)

		assert.ErrorIs(t, l.Allow(ctx, orgID), ErrUnavailable)
	})
}

func TestLimiterUsage(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	orgID := uuid.New()

	t.Run("zero before any use", func(t *testing.T) {
		l := newLimiter(newFakeRedis(), 5, march)

		used, err := l.Used(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, 0, used)

		remaining, err := l.Remaining(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, 5, remaining)
	})

	t.Run("tracks consumption", func(t *testing.T) {
		rdb := newFakeRedis()
		l := newLimiter(rdb, 5, march)

		require.NoError(t, l.Allow(ctx, orgID))
		require.NoError(t, l.Allow(ctx, orgID))

		used, err := l.Used(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, 2, used)

		remaining, err := l.Remaining(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})

	t.Run("remaining never goes negative", func(t *testing.T) {
		rdb := newFakeRedis()
		l := newLimiter(rdb, 1, march)

		require.NoError(t, l.Allow(ctx, orgID))
		_ = l.Allow(ctx, orgID)
		_ = l.Allow(ctx, orgID)

		remaining, err := l.Remaining(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})
}
