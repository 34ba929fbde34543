package auth

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"stargaze/config"
	"stargaze/internal/domain/service"
)

// pooledHasher bounds the number of concurrent bcrypt computations.
// bcrypt is deliberately CPU-expensive; without a bound, a burst of
// registrations or logins could saturate every core and starve the
// rest of the request handling.
type pooledHasher struct {
	inner service.PasswordHasher
	sem   *semaphore.Weighted
}

// NewPooledHasher wraps a PasswordHasher with a concurrency limit taken
// from auth.hashWorkers, defaulting to the number of CPUs.
func NewPooledHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	workers := 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
		workers = cfg.Auth.HashWorkers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var inner service.PasswordHasher
	if cost > 0 {
		inner = NewBcryptHasherWithCost(cost)
	} else {
		inner = NewBcryptHasher()
	}

	return &pooledHasher{
		inner: inner,
		sem:   semaphore.NewWeighted(int64(workers)),
	}
}

// Hash acquires a worker slot before running the expensive computation.
// It respects context cancellation while waiting.
func (h *pooledHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	return h.inner.Hash(ctx, password)
}

// Check acquires a worker slot before verifying. A cancelled context
// reports a mismatch, never a panic.
func (h *pooledHasher) Check(ctx context.Context, password, hash string) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return h.inner.Check(ctx, password, hash)
}
