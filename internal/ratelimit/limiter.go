package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Defaults for the admission limiter.
const (
	DefaultLimit        = 10
	DefaultWindow       = 60 * time.Second
	DefaultIdleTTL      = 15 * time.Minute
	DefaultCleanupEvery = 2 * time.Minute
)

// Limiter is a sliding-window admission limiter keyed by client identity.
// Each key gets an independent window so callers do not contend with each
// other; the shared map lock is only held for the entry lookup.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*window

	limit        int
	windowLen    time.Duration
	idleTTL      time.Duration
	cleanupEvery time.Duration

	now func() time.Time
}

// window holds the accepted-request timestamps for one key. Timestamps
// older than the window length are pruned lazily on each Allow call.
type window struct {
	mu       sync.Mutex
	stamps   []time.Time
	lastSeen time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithIdleTTL sets how long an unused key is kept before the janitor
// drops it.
func WithIdleTTL(d time.Duration) Option {
	return func(l *Limiter) { l.idleTTL = d }
}

// WithCleanupEvery sets the janitor sweep interval.
func WithCleanupEvery(d time.Duration) Option {
	return func(l *Limiter) { l.cleanupEvery = d }
}

// New creates a limiter admitting at most limit requests per key within
// any trailing window of the given length.
func New(limit int, windowLen time.Duration, opts ...Option) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if windowLen <= 0 {
		windowLen = DefaultWindow
	}

	l := &Limiter{
		entries:      make(map[string]*window),
		limit:        limit,
		windowLen:    windowLen,
		idleTTL:      DefaultIdleTTL,
		cleanupEvery: DefaultCleanupEvery,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow prunes expired timestamps for the key, then checks the remaining
// count against the ceiling before recording. A rejected request is NOT
// recorded, so the ceiling bounds admitted requests only.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	win := l.window(key, now)

	win.mu.Lock()
	defer win.mu.Unlock()

	cutoff := now.Add(-l.windowLen)
	kept := win.stamps[:0]
	for _, ts := range win.stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	win.stamps = kept

	if len(win.stamps) >= l.limit {
		return false
	}
	win.stamps = append(win.stamps, now)
	return true
}

// Window returns the configured window length, used for Retry-After hints.
func (l *Limiter) Window() time.Duration {
	return l.windowLen
}

// window returns the entry for key, creating it on first use.
func (l *Limiter) window(key string, now time.Time) *window {
	l.mu.Lock()
	defer l.mu.Unlock()

	win, ok := l.entries[key]
	if !ok {
		win = &window{}
		l.entries[key] = win
	}
	win.lastSeen = now
	return win
}

// Cleanup drops keys that have not been seen within the idle TTL.
func (l *Limiter) Cleanup() {
	cutoff := l.now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, win := range l.entries {
		if win.lastSeen.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}

// StartJanitor sweeps idle keys periodically until ctx is cancelled.
func (l *Limiter) StartJanitor(ctx context.Context) {
	if l.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(l.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}
