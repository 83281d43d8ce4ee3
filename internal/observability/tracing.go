package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// startTracing installs the global OpenTelemetry providers exporting to
// Uptrace. Spans created before this call stay no-op.
func startTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return nil, nil
	case dsn == "":
		logger.Info("tracing disabled", "reason", "UPTRACE_DSN empty")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.String("football_stats.store", cfg.StoreBackend),
			attribute.Bool("football_stats.cache", cfg.CacheEnabled),
		),
	)

	logger.Info("tracing enabled", "exporter", "uptrace", "service_version", cfg.ServiceVersion)
	return uptrace.Shutdown, nil
}
