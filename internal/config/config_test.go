package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: got=%s want=%s", cfg.AppEnv, EnvDev)
	}
	if cfg.StoreBackend != StoreMemory {
		t.Fatalf("unexpected StoreBackend: got=%s", cfg.StoreBackend)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache config: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.RedisEnabled {
		t.Fatalf("expected redis disabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo || cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("unexpected log config: level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.CacheMaxEntries != 10000 {
		t.Fatalf("unexpected CacheMaxEntries: %d", cfg.CacheMaxEntries)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORE_BACKEND=postgres without DB_URL")
	}
}

func TestLoad_InvalidStoreBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORE_BACKEND")
	}
}

func TestLoad_InvalidValuesFailFast(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "CACHE_ENABLED", value: "maybe"},
		{key: "CACHE_TTL", value: "soon"},
		{key: "REDIS_DB", value: "one"},
		{key: "APP_LOG_LEVEL", value: "loud"},
		{key: "APP_LOG_FORMAT", value: "logfmt"},
		{key: "CACHE_MAX_ENTRIES", value: "-1"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_RedisCircuitParsing(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("REDIS_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis config: addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.RedisCircuit.Failures != 3 || cfg.RedisCircuit.Cooldown != 30*time.Second {
		t.Fatalf("unexpected circuit config: %+v", cfg.RedisCircuit)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected split: %v", got)
	}
}
