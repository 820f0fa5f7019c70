package redis

import (
	"context"
	"testing"
	"time"
)

func TestSigninLimiter_AllowsUnderLimit(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewSigninLimiter(client, 3, time.Minute)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("expected fresh username to be allowed, got ok=%v err=%v", ok, err)
	}

	for i := 0; i < 2; i++ {
		if err := limiter.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record failure: %v", err)
		}
	}

	ok, err = limiter.Allow(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("expected username under limit to be allowed, got ok=%v err=%v", ok, err)
	}
}

func TestSigninLimiter_BlocksAtLimit(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewSigninLimiter(client, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.RecordFailure(ctx, "bob"); err != nil {
			t.Fatalf("record failure: %v", err)
		}
	}

	ok, err := limiter.Allow(ctx, "bob")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if ok {
		t.Fatalf("expected username at limit to be blocked")
	}
}

func TestSigninLimiter_WindowExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewSigninLimiter(client, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "carol"); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	ok, err := limiter.Allow(ctx, "carol")
	if err != nil || !ok {
		t.Fatalf("expected expired window to allow, got ok=%v err=%v", ok, err)
	}
}

func TestSigninLimiter_Reset(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	limiter := NewSigninLimiter(client, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "dave"); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	if err := limiter.Reset(ctx, "dave"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	ok, err := limiter.Allow(ctx, "dave")
	if err != nil || !ok {
		t.Fatalf("expected reset username to be allowed, got ok=%v err=%v", ok, err)
	}
}
