package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "cashbook:report:g1::", []byte(`{"OpeningBalance":"0"}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "cashbook:report:g1::")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != `{"OpeningBalance":"0"}` {
		t.Fatalf("unexpected value %s", val)
	}

	if keys := storedKeys(mr, "bhaiyapos:cache:"); len(keys) != 1 || keys[0] != "bhaiyapos:cache:cashbook:report:g1::" {
		t.Fatalf("expected one prefixed key in redis, got %v", keys)
	}
}

func TestCacheMissingKey(t *testing.T) {
	client, _ := newTestRedisClient(t)

	cache := NewCache(client)

	_, err := cache.Get(context.Background(), "absent")
	if !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected cache miss, got %v", err)
	}
}

func TestCacheExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("v"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Second)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected expired key to miss, got %v", err)
	}
}

func TestCacheDelete(t *testing.T) {
	client, _ := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", []byte("bar"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "foo"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected cache miss getting deleted key, got %v", err)
	}
}

func TestCacheUnavailable(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client)
	mr.Close()

	_, err := cache.Get(context.Background(), "foo")
	if err == nil || errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected connection error, got %v", err)
	}
}
