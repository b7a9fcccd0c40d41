package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	userID, ok, err := store.UserID(ctx, token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok || userID != 7 {
		t.Fatalf("expected user 7, got %d ok=%v", userID, ok)
	}
}

func TestSessionUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, ok, err := store.UserID(context.Background(), "no-such-token")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatal("unknown token must not resolve")
	}
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.UserID(ctx, token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatal("expired session must not resolve")
	}
}

func TestSessionDestroy(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	_, ok, err := store.UserID(ctx, token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatal("destroyed session must not resolve")
	}
}
