// Package observability starts the process wide tracing and profiling
// exporters and stops them in reverse order.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

type stopper struct {
	name string
	stop func(context.Context) error
}

// Runtime holds whatever Setup started.
type Runtime struct {
	logger   *logging.Logger
	stoppers []stopper
}

type options struct {
	profiling bool
}

type Option func(*options)

// WithoutProfiling skips pyroscope and the pprof listener, for secondary
// binaries sharing a host with the API.
func WithoutProfiling() Option {
	return func(o *options) {
		o.profiling = false
	}
}

// Setup starts tracing, then profiling. On error everything already started is
// stopped before returning.
func Setup(ctx context.Context, cfg config.Config, logger *logging.Logger, opts ...Option) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	o := options{profiling: true}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Runtime{logger: logger}
	steps := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
		skip  bool
	}{
		{name: "uptrace", start: startTracing},
		{name: "pyroscope", start: startPyroscope, skip: !o.profiling},
		{name: "pprof", start: startPprof, skip: !o.profiling},
	}
	for _, step := range steps {
		if step.skip {
			continue
		}
		stop, err := step.start(cfg, logger)
		if err != nil {
			_ = r.Shutdown(ctx)
			return nil, fmt.Errorf("start %s: %w", step.name, err)
		}
		if stop != nil {
			r.stoppers = append(r.stoppers, stopper{name: step.name, stop: stop})
		}
	}
	return r, nil
}

// Shutdown stops in reverse start order and joins every failure.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var errs []error
	for i := len(r.stoppers) - 1; i >= 0; i-- {
		s := r.stoppers[i]
		if err := s.stop(ctx); err != nil {
			r.logger.Warn("observability shutdown failed", "component", s.name, "error", err)
			errs = append(errs, fmt.Errorf("stop %s: %w", s.name, err))
		}
	}
	r.stoppers = nil
	return errors.Join(errs...)
}

// Components lists the started exporters in start order.
func (r *Runtime) Components() []string {
	out := make([]string, 0, len(r.stoppers))
	for _, s := range r.stoppers {
		out = append(out, s.name)
	}
	return out
}
