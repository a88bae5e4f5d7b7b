// Package timeouts provides centralized timeout values for handler operations.
//
// These are used with context.WithTimeout around database calls in HTTP
// handlers. Centralizing the values keeps them consistent and easy to tune.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: simple single-document reads or lookups
//   - Medium: list queries, moderate writes, multi-step reads
//   - Long: writes touching multiple collections
//   - Batch: bulk imports (CSV uploads, large batch upserts)
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values, overridable via TIMEOUT_* environment variables.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
	DefaultBatch  = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
	batch  = DefaultBatch
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document reads and lookups.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for writes that touch multiple collections.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Batch returns the timeout for bulk operations like CSV imports.
func Batch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return batch
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM,
// TIMEOUT_LONG, and TIMEOUT_BATCH (Go duration strings, e.g. "5s", "2m").
// Unset or invalid values keep their defaults. Returns the number of
// timeouts configured from the environment.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	set := func(env string, dst *time.Duration) {
		if v := os.Getenv(env); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*dst = d
				configured++
			}
		}
	}
	set("TIMEOUT_PING", &ping)
	set("TIMEOUT_SHORT", &short)
	set("TIMEOUT_MEDIUM", &medium)
	set("TIMEOUT_LONG", &long)
	set("TIMEOUT_BATCH", &batch)

	return configured
}
