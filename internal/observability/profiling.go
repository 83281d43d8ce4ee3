package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const pprofReadHeaderTimeout = 5 * time.Second

var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

func startPyroscope(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if !cfg.PyroscopeEnabled {
		return nil, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"store":   cfg.StoreBackend,
		},
		ProfileTypes: profileTypes,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("continuous profiling enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	return func(context.Context) error { return profiler.Stop() }, nil
}

// newPprofMux keeps the debug handlers off the public router.
func newPprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

func startPprof(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if !cfg.PprofEnabled {
		return nil, nil
	}

	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           newPprofMux(),
		ReadHeaderTimeout: pprofReadHeaderTimeout,
	}
	go func() {
		logger.Info("pprof listening", "addr", cfg.PprofAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof listener failed", "error", err)
		}
	}()

	return srv.Shutdown, nil
}
