package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestLimiter(cooldown time.Duration, maxPerHour int) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)}
	return New(&Config{Cooldown: cooldown, MaxPerHour: maxPerHour, Clock: clock}), clock
}

func TestAllowEnforcesCooldown(t *testing.T) {
	limiter, clock := newTestLimiter(30*time.Second, 10)

	if result := limiter.Allow("1.2.3.4"); !result.Allowed {
		t.Fatal("first submission must be allowed")
	}
	result := limiter.Allow("1.2.3.4")
	if result.Allowed {
		t.Fatal("submission within cooldown must be rejected")
	}
	if result.RetryAfter <= 0 || result.RetryAfter > 30*time.Second {
		t.Fatalf("unexpected retry after: %v", result.RetryAfter)
	}

	clock.advance(31 * time.Second)
	if result := limiter.Allow("1.2.3.4"); !result.Allowed {
		t.Fatal("submission after cooldown must be allowed")
	}
}

func TestAllowEnforcesHourlyCap(t *testing.T) {
	limiter, clock := newTestLimiter(time.Second, 3)

	for i := 0; i < 3; i++ {
		if result := limiter.Allow("1.2.3.4"); !result.Allowed {
			t.Fatalf("submission %d should be allowed", i+1)
		}
		clock.advance(2 * time.Second)
	}

	if result := limiter.Allow("1.2.3.4"); result.Allowed {
		t.Fatal("submission beyond hourly cap must be rejected")
	}

	clock.advance(time.Hour)
	if result := limiter.Allow("1.2.3.4"); !result.Allowed {
		t.Fatal("cap must reset after an hour")
	}
}

func TestAllowIsolatesClients(t *testing.T) {
	limiter, _ := newTestLimiter(30*time.Second, 10)

	limiter.Allow("1.2.3.4")
	if result := limiter.Allow("5.6.7.8"); !result.Allowed {
		t.Fatal("different clients must not share limits")
	}
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "10.0.0.1:52001"
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")

	if ip := GetClientIP(r, false); ip != "10.0.0.1" {
		t.Fatalf("untrusted proxy must use RemoteAddr: %q", ip)
	}
	if ip := GetClientIP(r, true); ip != "5.6.7.8" {
		t.Fatalf("trusted proxy must use rightmost forwarded ip: %q", ip)
	}
}
