// Package ratelimit implements the per-client fixed-window throttle used by
// the contact form.
//
// A fixed window resets its counter at window boundaries instead of sliding,
// so a client can get up to 2*limit submissions accepted across a boundary
// (limit at the end of one window, limit at the start of the next).
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultLimit is the number of submissions accepted per key per window.
	DefaultLimit = 5
	// DefaultWindow is the fixed window length.
	DefaultWindow = 60 * time.Second
)

// Entry is the per-key counter state.
type Entry struct {
	Key     string
	Count   int
	ResetAt time.Time
}

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed bool
	Count   int
	ResetAt time.Time
}

// RetryAfter returns how long the caller should wait before the window for
// this key resets. Zero when the request was allowed.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	if d.Allowed || !d.ResetAt.After(now) {
		return 0
	}
	return d.ResetAt.Sub(now)
}

// FixedWindow counts submissions per key inside fixed windows.
// The zero value is not usable; call NewFixedWindow.
type FixedWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*Entry
}

// Option configures a FixedWindow.
type Option func(*FixedWindow)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindow) { l.now = now }
}

// NewFixedWindow creates a limiter accepting limit submissions per window.
// Non-positive values fall back to DefaultLimit and DefaultWindow.
func NewFixedWindow(limit int, window time.Duration, opts ...Option) *FixedWindow {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	l := &FixedWindow{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the per-window limit.
func (l *FixedWindow) Limit() int { return l.limit }

// Window returns the window length.
func (l *FixedWindow) Window() time.Duration { return l.window }

// Allow records a submission for key at the limiter's current time.
func (l *FixedWindow) Allow(key string) Decision {
	return l.AllowAt(key, l.now())
}

// AllowAt records a submission for key at now. The count is incremented
// even when the submission is rejected.
func (l *FixedWindow) AllowAt(key string, now time.Time) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &Entry{Key: key}
		l.entries[key] = e
	}
	if !ok || now.After(e.ResetAt) {
		e.Count = 0
		e.ResetAt = now.Add(l.window)
	}
	e.Count++

	return Decision{
		Allowed: e.Count <= l.limit,
		Count:   e.Count,
		ResetAt: e.ResetAt,
	}
}

// Entry returns a copy of the state stored for key.
func (l *FixedWindow) Entry(key string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of tracked keys.
func (l *FixedWindow) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Reset forgets every key.
func (l *FixedWindow) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]*Entry)
}

// Sweep deletes entries whose window elapsed before now and returns how many
// were removed. A swept key behaves exactly like one whose window elapsed.
func (l *FixedWindow) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for k, e := range l.entries {
		if now.After(e.ResetAt) {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired entries every interval until ctx is done.
func (l *FixedWindow) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Sweep(l.now())
			}
		}
	}()
}
