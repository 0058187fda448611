package main

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/config"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/metrics"
)

func TestNewRateLimiter_DisabledWhenRateIsZero(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())

	if rl := newRateLimiter(&config.Config{RateLimitRPS: 0, RateLimitBurst: 10}, m); rl != nil {
		t.Fatal("expected nil rate limiter when RPS is 0")
	}

	if rl := newRateLimiter(&config.Config{RateLimitRPS: 5, RateLimitBurst: 10}, m); rl == nil {
		t.Fatal("expected rate limiter when RPS is set")
	}
}

func TestCashbookOptions(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	cfg := &config.Config{ReportCacheTTL: time.Minute}

	if got := len(cashbookOptions(cfg, nil, m)); got != 2 {
		t.Fatalf("expected exporter and metrics options without redis, got %d", got)
	}

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	defer client.Close()

	if got := len(cashbookOptions(cfg, client, m)); got != 3 {
		t.Fatalf("expected cache option with redis, got %d", got)
	}
}
