package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config stores runtime configuration for the service binaries.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level
	LogFormat      string

	StoreBackend string
	DBURL        string

	CacheEnabled    bool
	CacheTTL        time.Duration
	CacheMaxEntries int

	RedisEnabled   bool
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string
	RedisCircuit   resilience.BreakerConfig

	CORSAllowedOrigins []string

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	MCPAddr   string
	MCPAPIKey string
}

func Load() (Config, error) {
	var p parser

	cfg := Config{
		ServiceName:    p.str("SERVICE_NAME", "football-stats-api"),
		ServiceVersion: p.str("SERVICE_VERSION", "dev"),
		HTTPAddr:       p.str("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    p.duration("APP_READ_TIMEOUT", "10s"),
		WriteTimeout:   p.duration("APP_WRITE_TIMEOUT", "15s"),

		StoreBackend: strings.ToLower(p.str("STORE_BACKEND", StoreMemory)),
		DBURL:        p.str("DB_URL", ""),

		CacheEnabled:    p.bool("CACHE_ENABLED", "true"),
		CacheTTL:        p.duration("CACHE_TTL", "5m"),
		CacheMaxEntries: p.int("CACHE_MAX_ENTRIES", 10000),

		RedisEnabled:   p.bool("REDIS_ENABLED", "false"),
		RedisAddr:      p.str("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  p.str("REDIS_PASSWORD", ""),
		RedisDB:        p.int("REDIS_DB", 0),
		RedisKeyPrefix: p.str("REDIS_KEY_PREFIX", "football-stats:"),
		RedisCircuit: resilience.BreakerConfig{
			Enabled:  p.bool("REDIS_CIRCUIT_ENABLED", "true"),
			Failures: p.int("REDIS_CIRCUIT_FAILURE_COUNT", 5),
			Cooldown: p.duration("REDIS_CIRCUIT_OPEN_TIMEOUT", "15s"),
			Probes:   p.int("REDIS_CIRCUIT_HALF_OPEN_MAX_REQ", 2),
		},

		CORSAllowedOrigins: splitCSV(p.str("CORS_ALLOWED_ORIGINS", "*")),

		PprofEnabled: p.bool("PPROF_ENABLED", "false"),
		PprofAddr:    p.str("PPROF_ADDR", ":6060"),

		UptraceEnabled: p.bool("UPTRACE_ENABLED", "false"),
		UptraceDSN:     p.str("UPTRACE_DSN", ""),

		PyroscopeEnabled:           p.bool("PYROSCOPE_ENABLED", "false"),
		PyroscopeServerAddress:     p.str("PYROSCOPE_SERVER_ADDRESS", ""),
		PyroscopeAppName:           p.str("PYROSCOPE_APP_NAME", "football-stats-api"),
		PyroscopeAuthToken:         p.str("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     p.str("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: p.str("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        p.duration("PYROSCOPE_UPLOAD_RATE", "15s"),

		MCPAddr:   p.str("MCP_ADDR", ":8090"),
		MCPAPIKey: p.str("MCP_API_KEY", ""),
	}
	if p.err != nil {
		return Config{}, p.err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}
	cfg.AppEnv = appEnv

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = logLevel

	logFormat, err := logging.ParseFormat(getEnv("APP_LOG_FORMAT", logging.FormatJSON))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_FORMAT: %w", err)
	}
	cfg.LogFormat = logFormat

	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if c.DBURL == "" {
			return fmt.Errorf("DB_URL is required when STORE_BACKEND=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: valid values are %s, %s", c.StoreBackend, StoreMemory, StorePostgres)
	}

	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("APP_READ_TIMEOUT and APP_WRITE_TIMEOUT must be > 0")
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be > 0 when CACHE_ENABLED=true")
	}
	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be >= 0")
	}
	if c.RedisEnabled && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED=true")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must be >= 0")
	}
	if err := c.RedisCircuit.Validate(); err != nil {
		return fmt.Errorf("REDIS_CIRCUIT_*: %w", err)
	}
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.PyroscopeEnabled && c.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if c.PyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}
	return nil
}

// parser keeps the first parse failure so Load can read every key in one pass.
type parser struct {
	err error
}

func (p *parser) str(key, fallback string) string {
	return strings.TrimSpace(getEnv(key, fallback))
}

func (p *parser) bool(key, fallback string) bool {
	value, err := strconv.ParseBool(getEnv(key, fallback))
	if err != nil {
		p.fail(fmt.Errorf("parse %s: %w", key, err))
	}
	return value
}

func (p *parser) int(key string, fallback int) int {
	value, err := getEnvAsInt(key, fallback)
	if err != nil {
		p.fail(fmt.Errorf("parse %s: %w", key, err))
	}
	return value
}

func (p *parser) duration(key, fallback string) time.Duration {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		p.fail(fmt.Errorf("parse %s: %w", key, err))
	}
	return value
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}
	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
