package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/bnema/guard-limiter-cli/internal/ports"
)

// DefaultPollInterval is the fixed cadence of the performance poller.
const DefaultPollInterval = 5 * time.Second

// PerfPoller fetches the live per-process sample set on a fixed cadence,
// independent of session state. It holds only the latest complete set and
// replaces it atomically; a failed fetch keeps the previous set and the loop
// resumes on the next tick.
type PerfPoller struct {
	gateway  ports.EnforcementGateway
	logger   *slog.Logger
	interval time.Duration

	mu     sync.RWMutex
	latest []domain.PerformanceSample
}

func NewPerfPoller(gateway ports.EnforcementGateway, logger *slog.Logger, interval time.Duration) *PerfPoller {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &PerfPoller{gateway: gateway, logger: logger, interval: interval}
}

// Run polls immediately, then on every interval tick until ctx is cancelled.
func (p *PerfPoller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Latest returns the most recent complete sample set, or nil before the first
// successful fetch.
func (p *PerfPoller) Latest() []domain.PerformanceSample {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest == nil {
		return nil
	}
	out := make([]domain.PerformanceSample, len(p.latest))
	copy(out, p.latest)
	return out
}

func (p *PerfPoller) poll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	samples, err := p.gateway.GetProcessPerformance(ctx)
	if err != nil {
		// Best-effort loop: diagnostics only, never the user-facing log.
		p.logger.Debug("performance fetch failed", "error", err)
		return
	}

	p.mu.Lock()
	p.latest = samples
	p.mu.Unlock()
}
