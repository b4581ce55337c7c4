// Package probe periodically checks that the events backend answers and
// keeps the last result for the readiness endpoint.
package probe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"event-calendar/internal/event/repository"
	"event-calendar/pkg/log"
)

const (
	DefaultSchedule = "@every 30s"
	DefaultTimeout  = 5 * time.Second
)

// Config controls how often the backend is pinged.
type Config struct {
	// Schedule is a standard cron spec or a descriptor such as "@every 30s".
	Schedule string
	Timeout  time.Duration
}

// Status is the outcome of the last check.
type Status struct {
	Ready     bool      `json:"ready"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// Probe runs the backend check on a cron schedule.
type Probe struct {
	pinger  repository.Pinger
	l       log.Logger
	timeout time.Duration
	cron    *cron.Cron

	mu     sync.RWMutex
	status Status
}

// New creates a Probe. The schedule is parsed here so a bad config fails at startup.
func New(pinger repository.Pinger, l log.Logger, cfg Config) (*Probe, error) {
	if pinger == nil {
		return nil, errors.New("pinger is required")
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	p := &Probe{
		pinger:  pinger,
		l:       l,
		timeout: cfg.Timeout,
	}

	logger := cronLogger{l: l}
	p.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := p.cron.AddFunc(cfg.Schedule, func() { p.Check(context.Background()) }); err != nil {
		return nil, fmt.Errorf("probe schedule %q: %w", cfg.Schedule, err)
	}
	return p, nil
}

// Start runs one check right away, then hands over to the scheduler.
func (p *Probe) Start(ctx context.Context) {
	p.Check(ctx)
	p.cron.Start()
}

// Stop stops the scheduler and waits for a running check to finish.
func (p *Probe) Stop() {
	<-p.cron.Stop().Done()
}

// Check pings the backend once and records the result.
func (p *Probe) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	st := Status{Ready: true, CheckedAt: time.Now()}
	if err := p.pinger.Ping(ctx); err != nil {
		st.Ready = false
		st.Error = err.Error()
	}

	p.mu.Lock()
	prev := p.status
	p.status = st
	p.mu.Unlock()

	switch {
	case !st.Ready && (prev.Ready || prev.CheckedAt.IsZero()):
		p.l.Warnf(ctx, "probe.Check: backend not ready: %s", st.Error)
	case st.Ready && !prev.Ready:
		p.l.Infof(ctx, "probe.Check: backend ready")
	}
	return st
}

// Status returns the last recorded result. Before the first check it reports not ready.
func (p *Probe) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// cronLogger routes scheduler messages to the service logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorf(context.Background(), "cron: %s: %v %v", msg, err, keysAndValues)
}
