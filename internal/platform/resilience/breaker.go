// Package resilience guards optional remote dependencies such as the shared
// snapshot cache.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrOpen is returned without calling the dependency while the breaker rejects
// traffic.
var ErrOpen = errors.New("circuit open")

type State uint8

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// BreakerConfig is the environment shape of a Breaker. Zero numeric fields
// take the defaults.
type BreakerConfig struct {
	Enabled  bool
	Failures int
	Cooldown time.Duration
	Probes   int
}

const (
	defaultFailures = 5
	defaultCooldown = 15 * time.Second
	defaultProbes   = 2
)

func (c BreakerConfig) Validate() error {
	if c.Failures < 0 {
		return fmt.Errorf("breaker failures must be >= 0, got %d", c.Failures)
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("breaker cooldown must be >= 0, got %s", c.Cooldown)
	}
	if c.Probes < 0 {
		return fmt.Errorf("breaker probes must be >= 0, got %d", c.Probes)
	}
	return nil
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	if c.Failures < 1 {
		c.Failures = defaultFailures
	}
	if c.Cooldown <= 0 {
		c.Cooldown = defaultCooldown
	}
	if c.Probes < 1 {
		c.Probes = defaultProbes
	}
	return c
}

// Breaker opens after Failures consecutive errors, rejects calls for Cooldown,
// then admits up to Probes trial calls. All probes succeeding closes it again;
// any probe failing reopens it. A nil *Breaker admits everything.
type Breaker struct {
	mu  sync.Mutex
	cfg BreakerConfig
	now func() time.Time

	state    State
	failures int
	openedAt time.Time
	inFlight int
	passed   int
}

// NewBreaker returns nil when cfg is disabled.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if !cfg.Enabled {
		return nil
	}
	return &Breaker{cfg: cfg.withDefaults(), now: time.Now}
}

// Do runs fn when admitted. Caller cancellation is not held against the
// dependency.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if b == nil {
		return fn(ctx)
	}
	if err := b.admit(); err != nil {
		return err
	}

	err := fn(ctx)
	switch {
	case err == nil:
		b.succeed()
	case errors.Is(err, context.Canceled):
		b.release()
	default:
		b.fail()
	}
	return err
}

func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.cooledDown() {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if !b.cooledDown() {
			return ErrOpen
		}
		b.state, b.inFlight, b.passed = StateHalfOpen, 0, 0
	}
	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.Probes {
			return ErrOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) succeed() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateHalfOpen {
		b.failures = 0
		return
	}
	b.inFlight = max(b.inFlight-1, 0)
	b.passed++
	if b.passed >= b.cfg.Probes && b.inFlight == 0 {
		b.state, b.failures, b.passed = StateClosed, 0, 0
	}
}

func (b *Breaker) fail() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.Failures {
			b.open()
		}
	case StateHalfOpen, StateOpen:
		b.open()
	}
}

func (b *Breaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.inFlight = max(b.inFlight-1, 0)
	}
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.inFlight, b.passed = 0, 0
}

func (b *Breaker) cooledDown() bool {
	return b.now().Sub(b.openedAt) >= b.cfg.Cooldown
}
