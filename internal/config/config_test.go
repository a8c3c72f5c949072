package config

import (
	"testing"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.ServiceName != "swc-api" {
		t.Fatalf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("swagger should default on outside prod")
	}
	if !cfg.RateLimitEnabled {
		t.Fatalf("rate limit should default on")
	}
	if cfg.RateLimitDailyQuota != 2000 {
		t.Fatalf("RateLimitDailyQuota = %d, want 2000", cfg.RateLimitDailyQuota)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("CacheTTL = %v, want 1m", cfg.CacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_ProdDisablesSwaggerByDefault(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("swagger should default off in prod")
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid APP_ENV error")
	}
}

func TestLoad_RateLimitOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DAILY_QUOTA", "500")
	t.Setenv("RATE_LIMIT_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RateLimitDailyQuota != 500 {
		t.Fatalf("RateLimitDailyQuota = %d, want 500", cfg.RateLimitDailyQuota)
	}
	if cfg.RateLimitRedisURL != "redis://localhost:6379/0" {
		t.Fatalf("RateLimitRedisURL = %q", cfg.RateLimitRedisURL)
	}
}

func TestLoad_RejectsZeroQuota(t *testing.T) {
	t.Setenv("RATE_LIMIT_DAILY_QUOTA", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected quota validation error")
	}
}

func TestLoad_UptraceRequiresDSN(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected missing UPTRACE_DSN error")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@uptrace.dev/123" {
		t.Fatalf("UptraceDSN = %q", cfg.UptraceDSN)
	}
}
