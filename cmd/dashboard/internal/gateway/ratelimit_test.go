package gateway

import (
	"testing"
	"time"
)

func TestIPRateLimiter_Burst(t *testing.T) {
	l := NewIPRateLimiter(1, 2)
	fixed := time.Unix(1000, 0)
	l.now = func() time.Time { return fixed }

	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d within burst was rejected", i)
		}
	}
	if ok, _ := l.Allow("10.0.0.1"); ok {
		t.Error("Expected third request to be throttled")
	}
	if ok, _ := l.Allow("10.0.0.2"); !ok {
		t.Error("Other IPs must have their own bucket")
	}

	fixed = fixed.Add(time.Second)
	if ok, _ := l.Allow("10.0.0.1"); !ok {
		t.Error("Token should refill after one second")
	}
}

func TestIPRateLimiter_EvictsIdle(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	now := time.Unix(0, 0)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(time.Hour)
	l.Allow("b")

	if _, ok := l.limiters["a"]; ok {
		t.Error("Idle limiter should have been evicted")
	}
}
