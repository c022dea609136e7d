package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/trendify-core/client/internal/session"
)

func exerciseStore(t *testing.T, s session.Store) {
	t.Helper()
	ctx := context.Background()

	if tok, err := s.Token(ctx); err != nil || tok != "" {
		t.Fatalf("expected empty token, got %q (%v)", tok, err)
	}
	if err := s.SetToken(ctx, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if tok, err := s.Token(ctx); err != nil || tok != "abc" {
		t.Fatalf("expected abc, got %q (%v)", tok, err)
	}
	if err := s.SetToken(ctx, "def"); err != nil {
		t.Fatalf("overwrite token: %v", err)
	}
	if tok, _ := s.Token(ctx); tok != "def" {
		t.Fatalf("expected def, got %q", tok)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tok, err := s.Token(ctx); err != nil || tok != "" {
		t.Fatalf("expected empty token after clear, got %q (%v)", tok, err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, session.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	exerciseStore(t, session.NewFileStore(dir, "alice"))
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if err := session.NewFileStore(dir, "bob").SetToken(ctx, "tok"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	fs := session.NewFileStore(dir, "bob")
	if tok, err := fs.Token(ctx); err != nil || tok != "tok" {
		t.Fatalf("expected tok from a fresh store, got %q (%v)", tok, err)
	}
	info, err := os.Stat(fs.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600, got %v", info.Mode().Perm())
	}
	if tok, _ := session.NewFileStore(dir, "carol").Token(ctx); tok != "" {
		t.Fatalf("profiles must not share tokens, got %q", tok)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseStore(t, session.NewRedisStore(rdb, "alice", time.Hour))
}

func TestRedisStore_AppliesTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := session.NewRedisStore(rdb, "", time.Minute)
	if err := s.SetToken(context.Background(), "tok"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if ttl := mr.TTL("trendify:session:default:token"); ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if tok, _ := s.Token(context.Background()); tok != "" {
		t.Fatalf("expected expired token, got %q", tok)
	}
}

func TestConfig_Kind(t *testing.T) {
	for in, want := range map[string]session.Kind{"": session.KindFile, "Redis": session.KindRedis, "memory": session.KindMemory} {
		got, err := session.Config{Store: in}.Kind()
		if err != nil || got != want {
			t.Fatalf("%q: expected %q, got %q (%v)", in, want, got, err)
		}
	}
	if _, err := (session.Config{Store: "etcd"}).Kind(); err == nil {
		t.Fatal("expected error for unknown store")
	}
}
