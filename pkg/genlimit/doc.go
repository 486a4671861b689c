// Package genlimit enforces a per-organization generation quota over a
// fixed calendar-month window, backed by Redis.
//
// Each successful Allow call increments the organization's counter for the
// current month; once the counter passes the configured quota, Allow returns
// ErrQuotaExceeded until the window rolls over. The counter key carries a
// TTL slightly past the window end so stale months clean themselves up.
package genlimit
