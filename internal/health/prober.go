// Package health wires up the cron job that periodically probes the two
// upstream dependencies and keeps the last-seen status for /health.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Check probes one upstream. It must respect ctx cancellation.
type Check func(ctx context.Context) error

// Prober runs all registered checks on a fixed interval.
type Prober struct {
	cron   *cron.Cron
	checks map[string]Check
	spec   string

	mu     sync.RWMutex
	status map[string]bool
}

// New creates a Prober that fires every intervalMinutes minutes.
func New(checks map[string]Check, intervalMinutes int) *Prober {
	return &Prober{
		cron:   cron.New(),
		checks: checks,
		spec:   fmt.Sprintf("@every %dm", intervalMinutes),
		status: make(map[string]bool, len(checks)),
	}
}

// Start registers the job and starts the scheduler. Also runs one probe
// immediately so /health has data without waiting for the first tick.
func (p *Prober) Start(ctx context.Context) error {
	_, err := p.cron.AddFunc(p.spec, func() {
		p.runProbes(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	p.cron.Start()
	slog.Info("upstream prober started", "spec", p.spec)

	go p.runProbes(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (p *Prober) Stop() {
	p.cron.Stop()
	slog.Info("upstream prober stopped")
}

// Snapshot returns the last known status per upstream.
func (p *Prober) Snapshot() map[string]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap := make(map[string]bool, len(p.status))
	for name, up := range p.status {
		snap[name] = up
	}
	return snap
}

func (p *Prober) runProbes(ctx context.Context) {
	for name, check := range p.checks {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := check(probeCtx)
		cancel()

		if err != nil {
			slog.Warn("upstream probe failed", "upstream", name, "err", err)
		}

		p.mu.Lock()
		p.status[name] = err == nil
		p.mu.Unlock()
	}
}
