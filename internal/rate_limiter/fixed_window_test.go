package ratelimiter

import (
	"testing"
	"time"

	"github.com/suritel/worklog-api/internal/config"
)

func TestFixedWindowLimit(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	if ok {
		t.Fatal("4th request in the window should be denied")
	}
	if retryAfter <= 0 {
		t.Errorf("retry-after should be positive, got %v", retryAfter)
	}

	// Other clients have their own window.
	if ok, _ := rl.Allow("10.0.0.2"); !ok {
		t.Error("different client should not share the window")
	}
}

func TestFixedWindowDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	for i := 0; i < 10; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatal("disabled limiter must always allow")
		}
	}
}

func TestFixedWindowReset(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            10 * time.Millisecond,
		Enabled:              true,
	}, nil)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("second request inside the window should be denied")
	}

	time.Sleep(15 * time.Millisecond)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Error("request after the window rolls over should be allowed")
	}
}
