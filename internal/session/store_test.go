package session

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStores(t *testing.T) []struct {
	name  string
	store Store
} {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return []struct {
		name  string
		store Store
	}{
		{"redis", NewRedisStore(rdb, "")},
		{"memory", NewMemoryStore()},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, tc := range newStores(t) {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.store

			tok, err := s.Token(ctx)
			if err != nil {
				t.Fatalf("Token: %v", err)
			}
			if tok != "" {
				t.Fatalf("expected empty token on fresh store, got %q", tok)
			}

			if err := s.SetToken(ctx, "abc.def.ghi"); err != nil {
				t.Fatalf("SetToken: %v", err)
			}
			if err := s.SetUserInfo(ctx, "a@example.com", "alice"); err != nil {
				t.Fatalf("SetUserInfo: %v", err)
			}

			tok, err = s.Token(ctx)
			if err != nil || tok != "abc.def.ghi" {
				t.Fatalf("Token after set: %q err=%v", tok, err)
			}
			info, err := s.UserInfo(ctx)
			if err != nil {
				t.Fatalf("UserInfo: %v", err)
			}
			if info.Email != "a@example.com" || info.Nickname != "alice" {
				t.Fatalf("unexpected user info: %+v", info)
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	for _, tc := range newStores(t) {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.store
			if err := s.SetToken(ctx, "tok"); err != nil {
				t.Fatalf("SetToken: %v", err)
			}
			if err := s.SetUserInfo(ctx, "a@example.com", "alice"); err != nil {
				t.Fatalf("SetUserInfo: %v", err)
			}
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}

			tok, err := s.Token(ctx)
			if err != nil || tok != "" {
				t.Fatalf("token survived clear: %q err=%v", tok, err)
			}
			info, err := s.UserInfo(ctx)
			if err != nil {
				t.Fatalf("UserInfo: %v", err)
			}
			if info.Email != "" || info.Nickname != "" {
				t.Fatalf("user info survived clear: %+v", info)
			}
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	for _, tc := range newStores(t) {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.store
			if err := s.SetToken(ctx, "first"); err != nil {
				t.Fatalf("SetToken: %v", err)
			}
			if err := s.SetToken(ctx, "second"); err != nil {
				t.Fatalf("SetToken: %v", err)
			}
			tok, err := s.Token(ctx)
			if err != nil || tok != "second" {
				t.Fatalf("expected last write to win, got %q err=%v", tok, err)
			}
		})
	}
}
