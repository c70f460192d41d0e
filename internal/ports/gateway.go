package ports

import (
	"context"

	"github.com/bnema/guard-limiter-cli/internal/domain"
)

// EnforcementGateway is the remote agent that discovers and restricts the
// tracked processes. The five operations map one-to-one onto the agent's API.
type EnforcementGateway interface {
	// StartTimer arms agent-side scheduling. It must be called before the
	// first RestrictProcesses of a session; the mode is fixed for the session.
	StartTimer(ctx context.Context, aggressive bool) error

	// StopTimer disarms agent-side scheduling.
	StopTimer(ctx context.Context) error

	// RestrictProcesses performs one enforcement run. It may be slow; callers
	// are responsible for keeping it single-flight.
	RestrictProcesses(ctx context.Context, aggressive bool) (domain.ProcessStatus, error)

	GetSystemInfo(ctx context.Context) (domain.SystemInfo, error)
	GetProcessPerformance(ctx context.Context) ([]domain.PerformanceSample, error)
}
