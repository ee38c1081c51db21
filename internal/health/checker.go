package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// Status values reported per component
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// DefaultProbeTimeout bounds one probe run
const DefaultProbeTimeout = 2 * time.Second

// Probe returns nil when a dependency is usable
type Probe func(ctx context.Context) error

// Report is the result of one check
type Report struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// Healthy reports whether every component is up
func (r *Report) Healthy() bool {
	return r.Status == StatusUp
}

// CheckerConfig configures a Checker
type CheckerConfig struct {
	// Probes by component name. Optional dependencies that are disabled are
	// simply left out.
	Probes map[string]Probe
	// Health mirrors results into the gRPC health service (optional)
	Health *health.Server
	// ProbeTimeout (optional, defaults to DefaultProbeTimeout)
	ProbeTimeout time.Duration
	Logger       *zap.Logger
}

// Validate validates the CheckerConfig and sets defaults
func (cfg *CheckerConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	for name, probe := range cfg.Probes {
		if probe == nil {
			vb.Field("probes", "probe "+name+" is nil")
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

// Checker runs probes and publishes the outcome
type Checker struct {
	probes  map[string]Probe
	names   []string
	health  *health.Server
	timeout time.Duration
	logger  *zap.Logger

	mu   sync.RWMutex
	last *Report
}

// NewChecker creates a Checker
func NewChecker(cfg *CheckerConfig) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cfg.Probes))
	for name := range cfg.Probes {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Checker{
		probes:  cfg.Probes,
		names:   names,
		health:  cfg.Health,
		timeout: cfg.ProbeTimeout,
		logger:  cfg.Logger,
	}, nil
}

// Check runs every probe once and updates the gRPC serving status
func (c *Checker) Check(ctx context.Context) *Report {
	report := &Report{Status: StatusUp, Components: make(map[string]string, len(c.names))}

	for _, name := range c.names {
		probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.probes[name](probeCtx)
		cancel()

		if err != nil {
			c.logger.Warn("health probe failed", zap.String("component", name), zap.Error(err))
			report.Components[name] = StatusDown
			report.Status = StatusDown
			continue
		}
		report.Components[name] = StatusUp
	}

	c.publish(report)
	return report
}

func (c *Checker) publish(report *Report) {
	c.mu.Lock()
	c.last = report
	c.mu.Unlock()

	if c.health == nil {
		return
	}
	serving := grpc_health_v1.HealthCheckResponse_SERVING
	if !report.Healthy() {
		serving = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	c.health.SetServingStatus("", serving)
	c.health.SetServingStatus(ServiceName, serving)
}

// Last returns the most recent report, or nil before the first check
func (c *Checker) Last() *Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Run checks immediately and then every interval until ctx is done
func (c *Checker) Run(ctx context.Context, interval time.Duration) error {
	c.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

// Shutdown marks every service as not serving so load balancers drain
func (c *Checker) Shutdown() {
	if c.health != nil {
		c.health.Shutdown()
	}
}
