package services

import (
	"sync"
	"time"
)

type attemptEntry struct {
	count       int
	windowStart time.Time
}

// loginAttempts tracks failed logins per email inside a sliding window.
// In-memory on purpose: a restart forgiving counters is acceptable for a
// single admin backend.
type loginAttempts struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*attemptEntry
}

func newLoginAttempts(max int, window time.Duration) *loginAttempts {
	return &loginAttempts{
		max:     max,
		window:  window,
		entries: make(map[string]*attemptEntry),
	}
}

func (a *loginAttempts) Blocked(email string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entries[email]
	if !ok {
		return false
	}
	if time.Since(e.windowStart) > a.window {
		delete(a.entries, email)
		return false
	}
	return e.count >= a.max
}

func (a *loginAttempts) Fail(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entries[email]
	if !ok || time.Since(e.windowStart) > a.window {
		a.entries[email] = &attemptEntry{count: 1, windowStart: time.Now()}
		return
	}
	e.count++
}

func (a *loginAttempts) Reset(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, email)
}
