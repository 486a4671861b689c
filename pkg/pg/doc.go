// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling with startup retry, a health check, and
// common error classification helpers.
//
// Configuration comes from environment variables via github.com/caarlos0/env
// field tags on Config, so pool limits and retry cadence are tuned
// per-environment without code changes.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
// Error helpers such as [IsNotFoundError] and [IsDuplicateKeyError] unwrap
// pgx errors so business logic can branch without importing driver internals.
package pg
