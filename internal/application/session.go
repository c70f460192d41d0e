package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/bnema/guard-limiter-cli/internal/ports"
)

// DefaultCallTimeout bounds a single restrict_processes call. A timed-out call
// counts as an execution failure; the next scheduled or manual trigger retries.
const DefaultCallTimeout = 30 * time.Second

const tickInterval = time.Second

type executionTrigger string

const (
	triggerInitial   executionTrigger = "initial"
	triggerAutomatic executionTrigger = "automatic"
	triggerManual    executionTrigger = "manual"
)

// SessionSnapshot is the read-only view of the control loop state that
// presentation layers consume.
type SessionSnapshot struct {
	Monitoring        bool
	Countdown         int
	Mode              domain.Mode
	ExecutionInFlight bool
	LastStatus        *domain.ProcessStatus
}

// SessionController owns the monitoring session state: the on/off flag, the
// countdown to the next automatic enforcement run, the configured mode, and
// the single-flight execution guard. All state mutation is serialized behind
// one mutex; the enforcement call itself runs in a goroutine so the countdown
// keeps ticking while a slow call is in flight.
type SessionController struct {
	gateway     ports.EnforcementGateway
	events      *EventLog
	logger      *slog.Logger
	callTimeout time.Duration

	mu         sync.RWMutex
	monitoring bool
	countdown  int
	mode       domain.Mode
	inFlight   bool
	lastStatus *domain.ProcessStatus
}

func NewSessionController(gateway ports.EnforcementGateway, events *EventLog, logger *slog.Logger, callTimeout time.Duration) *SessionController {
	if events == nil {
		events = NewEventLog(0, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	return &SessionController{
		gateway:     gateway,
		events:      events,
		logger:      logger,
		callTimeout: callTimeout,
		countdown:   domain.CountdownSeconds,
		mode:        domain.ModeStandard,
	}
}

func (c *SessionController) Mode() domain.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SetMode selects the enforcement mode for the next session. The mode is fixed
// while a session is active.
func (c *SessionController) SetMode(mode domain.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.monitoring {
		return domain.ErrMonitoringActive
	}

	c.mode = mode
	return nil
}

// Start arms the agent timer, marks the session as monitoring with a full
// countdown, and dispatches an immediate enforcement run. If arming fails the
// session stays stopped and the failure is logged; the user may retry.
func (c *SessionController) Start(ctx context.Context) error {
	c.mu.RLock()
	if c.monitoring {
		c.mu.RUnlock()
		return domain.ErrMonitoringActive
	}
	mode := c.mode
	c.mu.RUnlock()

	if err := c.gateway.StartTimer(ctx, mode.Aggressive()); err != nil {
		c.events.Append(fmt.Sprintf("Failed to start monitoring: %v", err))
		return fmt.Errorf("arm agent timer: %w", err)
	}

	c.mu.Lock()
	if c.monitoring {
		// Lost a race with a concurrent Start; the agent is already armed.
		c.mu.Unlock()
		return domain.ErrMonitoringActive
	}
	c.monitoring = true
	c.countdown = domain.CountdownSeconds
	c.events.Append(fmt.Sprintf("Monitoring started (%s mode)", mode))
	c.startExecutionLocked(triggerInitial)
	c.mu.Unlock()

	return nil
}

// Stop disarms the agent timer and clears the monitoring flag. Local state is
// cleared even when disarming errors, so the user is never stuck in a session
// they cannot stop. An execution already in flight runs to completion and its
// result is still recorded, but the countdown is not re-armed.
func (c *SessionController) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.monitoring {
		c.mu.Unlock()
		return domain.ErrMonitoringInactive
	}
	c.monitoring = false
	c.countdown = domain.CountdownSeconds
	c.mu.Unlock()

	if err := c.gateway.StopTimer(ctx); err != nil {
		c.events.Append(fmt.Sprintf("Failed to disarm agent timer: %v", err))
		return fmt.Errorf("disarm agent timer: %w", err)
	}

	c.events.Append("Monitoring stopped")
	return nil
}

// Tick advances the countdown by one second. At zero it resets to the full
// period and triggers an automatic run. The reset is deliberately independent
// of execution latency: a slow enforcement call never stalls the visible
// countdown. If the previous run is still in flight the trigger is skipped;
// enforcement is idempotent and eventual, not exactly-once.
func (c *SessionController) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.monitoring {
		return
	}

	if c.countdown > 1 {
		c.countdown--
		return
	}

	c.countdown = domain.CountdownSeconds
	if c.inFlight {
		c.logger.Debug("scheduled enforcement skipped, previous run still in flight")
		return
	}
	c.startExecutionLocked(triggerAutomatic)
}

// ManualExecute performs an out-of-band enforcement run without disturbing the
// running countdown. A request while another run is in flight is not an error:
// it is a no-op recorded in the event log.
func (c *SessionController) ManualExecute() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.monitoring {
		return domain.ErrMonitoringInactive
	}

	if c.inFlight {
		c.events.Append("Manual run ignored: an enforcement run is already in progress")
		return nil
	}

	c.startExecutionLocked(triggerManual)
	return nil
}

// Run drives the one-second countdown until ctx is cancelled. The ticker keeps
// firing while an enforcement call is in flight; Tick decides whether a
// trigger is due.
func (c *SessionController) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

func (c *SessionController) Snapshot() SessionSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return SessionSnapshot{
		Monitoring:        c.monitoring,
		Countdown:         c.countdown,
		Mode:              c.mode,
		ExecutionInFlight: c.inFlight,
		LastStatus:        cloneStatus(c.lastStatus),
	}
}

// startExecutionLocked dispatches one enforcement run. The caller holds mu and
// has verified that no execution is in flight.
func (c *SessionController) startExecutionLocked(trigger executionTrigger) {
	c.inFlight = true
	aggressive := c.mode.Aggressive()
	go c.runExecution(trigger, aggressive)
}

func (c *SessionController) runExecution(trigger executionTrigger, aggressive bool) {
	// The in-flight flag must clear on every exit path so the loop can never
	// wedge in a permanently-busy state.
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.callTimeout)
	defer cancel()

	status, err := c.gateway.RestrictProcesses(ctx, aggressive)
	if err != nil {
		c.logger.Warn("enforcement call failed", "trigger", trigger, "error", err)
		c.events.Append(fmt.Sprintf("Enforcement run failed (%s): %v", trigger, err))
		return
	}

	c.mu.Lock()
	c.lastStatus = cloneStatus(&status)
	c.mu.Unlock()

	message := status.Message
	if message == "" {
		message = fmt.Sprintf("Restricted %d of %d tracked processes", status.RestrictedCount(), len(status.Reports))
	}
	c.events.Append(message)
}

func cloneStatus(status *domain.ProcessStatus) *domain.ProcessStatus {
	if status == nil {
		return nil
	}

	out := domain.ProcessStatus{Message: status.Message}
	if status.TargetCore != nil {
		core := *status.TargetCore
		out.TargetCore = &core
	}
	out.Reports = make([]domain.ProcessReport, len(status.Reports))
	copy(out.Reports, status.Reports)
	return &out
}
