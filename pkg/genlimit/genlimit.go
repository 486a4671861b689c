package genlimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrQuotaExceeded means the organization used up its monthly quota.
	ErrQuotaExceeded = errors.New("generation quota exceeded")

	// ErrUnavailable means the quota backend could not be reached.
	ErrUnavailable = errors.New("quota backend unavailable")
)

// Config holds quota settings.
type Config struct {
	MonthlyQuota int `env:"GENERATION_MONTHLY_QUOTA" envDefault:"500"`
}

// commands is the slice of the go-redis API the limiter needs. The redis
// client satisfies it; tests substitute a fake.
type commands interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Limiter is a fixed-window monthly counter per organization. Safe for
// concurrent use.
type Limiter struct {
	rdb   commands
	quota int
	now   func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the wall clock, pinning the window in tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a Limiter over the given Redis client.
func New(rdb redis.UniversalClient, cfg Config, opts ...Option) *Limiter {
	l := &Limiter{rdb: rdb, quota: cfg.MonthlyQuota, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// key builds the counter key for the organization's current window.
func (l *Limiter) key(orgID uuid.UUID) string {
	return fmt.Sprintf("genlimit:%s:%s", orgID, l.now().UTC().Format("2006-01"))
}

// windowTTL covers the rest of the current month plus a day of slack.
func (l *Limiter) windowTTL() time.Duration {
	now := l.now().UTC()
	nextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 1)
	return nextMonth.Sub(now)
}

// Allow consumes one generation from the organization's quota. It returns
// ErrQuotaExceeded once the window's counter passes the quota; the increment
// is not rolled back, matching fixed-window semantics.
func (l *Limiter) Allow(ctx context.Context, orgID uuid.UUID) error {
	key := l.key(orgID)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.windowTTL()).Err(); err != nil {
			return errors.Join(ErrUnavailable, err)
		}
	}
	if count > int64(l.quota) {
		return fmt.Errorf("%w: %d of %d used this month", ErrQuotaExceeded, count-1, l.quota)
	}
	return nil
}

// Used reports how many generations the organization consumed in the
// current window.
func (l *Limiter) Used(ctx context.Context, orgID uuid.UUID) (int, error) {
	count, err := l.rdb.Get(ctx, l.key(orgID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Join(ErrUnavailable, err)
	}
	return count, nil
}

// Remaining reports how much of the quota is left, never below zero.
func (l *Limiter) Remaining(ctx context.Context, orgID uuid.UUID) (int, error) {
	used, err := l.Used(ctx, orgID)
	if err != nil {
		return 0, err
	}
	if used >= l.quota {
		return 0, nil
	}
	return l.quota - used, nil
}
