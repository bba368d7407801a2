package server

import (
	"testing"
	"time"
)

func TestRateLimiterEnforcesLimit(t *testing.T) {
	r := newRateLimiter(2, time.Minute)

	if !r.Allow("10.0.0.1") || !r.Allow("10.0.0.1") {
		t.Fatalf("expected first two requests to pass")
	}
	if r.Allow("10.0.0.1") {
		t.Fatalf("expected third request to be limited")
	}
	if !r.Allow("10.0.0.2") {
		t.Fatalf("expected other keys to be unaffected")
	}
}

func TestRateLimiterZeroLimitDisables(t *testing.T) {
	r := newRateLimiter(0, time.Minute)
	for i := 0; i < 10; i++ {
		if !r.Allow("10.0.0.1") {
			t.Fatalf("expected zero limit to disable limiting")
		}
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	r := newRateLimiter(1, 5*time.Millisecond)

	if !r.Allow("10.0.0.1") {
		t.Fatalf("expected first request to pass")
	}
	if r.Allow("10.0.0.1") {
		t.Fatalf("expected second request to be limited")
	}

	time.Sleep(10 * time.Millisecond)
	if !r.Allow("10.0.0.1") {
		t.Fatalf("expected fresh window after expiry")
	}
}

func TestRateLimiterEvictsExpiredEntries(t *testing.T) {
	r := newRateLimiter(1, 5*time.Millisecond)

	r.Allow("10.0.0.1")
	r.Allow("10.0.0.2")
	time.Sleep(10 * time.Millisecond)

	// A request for a new key triggers the sweep of expired windows.
	r.Allow("10.0.0.3")

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items["10.0.0.1"]; ok {
		t.Fatalf("expected expired entry to be evicted")
	}
	if _, ok := r.items["10.0.0.3"]; !ok {
		t.Fatalf("expected live entry to survive the sweep")
	}
}
