package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/bnema/guard-limiter-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*SessionController, *mocks.MockEnforcementGateway, *EventLog) {
	t.Helper()

	gateway := mocks.NewMockEnforcementGateway(t)
	events := NewEventLog(0, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	controller := NewSessionController(gateway, events, logger, 0)

	return controller, gateway, events
}

func statusFixture(core int, restricted bool) domain.ProcessStatus {
	procs := domain.TrackedProcesses()
	return domain.ProcessStatus{
		TargetCore: &core,
		Reports: []domain.ProcessReport{
			{Process: procs[0], Found: true, Restricted: restricted},
			{Process: procs[1], Found: true, Restricted: restricted},
			{Process: procs[2], Found: false, Restricted: false},
		},
		Message: "Tracked processes pinned",
	}
}

func waitIdle(t *testing.T, c *SessionController) {
	t.Helper()

	require.Eventually(t, func() bool {
		return !c.Snapshot().ExecutionInFlight
	}, 2*time.Second, 5*time.Millisecond)
}

func logMessages(events *EventLog) []string {
	entries := events.Entries()
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Message)
	}
	return out
}

func TestStartArmsGatewayAndRunsImmediateExecution(t *testing.T) {
	controller, gateway, events := newTestController(t)

	gateway.EXPECT().StartTimer(mockAnyContext(), false).Return(nil).Once()
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(statusFixture(2, true), nil).Once()

	require.NoError(t, controller.Start(context.Background()))

	snapshot := controller.Snapshot()
	assert.True(t, snapshot.Monitoring)
	assert.Equal(t, domain.CountdownSeconds, snapshot.Countdown)

	waitIdle(t, controller)

	snapshot = controller.Snapshot()
	require.NotNil(t, snapshot.LastStatus)
	require.NotNil(t, snapshot.LastStatus.TargetCore)
	assert.Equal(t, 2, *snapshot.LastStatus.TargetCore)
	assert.Contains(t, logMessages(events), "Tracked processes pinned")
}

func TestStartFailureLeavesSessionStopped(t *testing.T) {
	controller, gateway, events := newTestController(t)

	armErr := errors.New("agent unreachable")
	gateway.EXPECT().StartTimer(mockAnyContext(), false).Return(armErr).Once()

	err := controller.Start(context.Background())
	require.ErrorIs(t, err, armErr)

	snapshot := controller.Snapshot()
	assert.False(t, snapshot.Monitoring)
	assert.False(t, snapshot.ExecutionInFlight)

	messages := logMessages(events)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Failed to start monitoring")
}

func TestStartWhileMonitoringRejected(t *testing.T) {
	controller, gateway, _ := newTestController(t)

	gateway.EXPECT().StartTimer(mockAnyContext(), false).Return(nil).Once()
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(statusFixture(0, true), nil).Once()

	require.NoError(t, controller.Start(context.Background()))
	waitIdle(t, controller)

	require.ErrorIs(t, controller.Start(context.Background()), domain.ErrMonitoringActive)
}

func TestStartUsesAggressiveModeFlag(t *testing.T) {
	controller, gateway, _ := newTestController(t)
	require.NoError(t, controller.SetMode(domain.ModeAggressive))

	gateway.EXPECT().StartTimer(mockAnyContext(), true).Return(nil).Once()
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), true).Return(statusFixture(1, true), nil).Once()

	require.NoError(t, controller.Start(context.Background()))
	waitIdle(t, controller)
}

func TestTickDecrementsCountdownWithinBounds(t *testing.T) {
	controller, gateway, _ := newTestController(t)

	gateway.EXPECT().StartTimer(mockAnyContext(), false).Return(nil).Once()
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(statusFixture(0, true), nil).Twice()

	require.NoError(t, controller.Start(context.Background()))
	waitIdle(t, controller)

	for i := 0; i < domain.CountdownSeconds; i++ {
		controller.Tick()
		countdown := controller.Snapshot().Countdown
		assert.GreaterOrEqual(t, countdown, 1)
		assert.LessOrEqual(t, countdown, domain.CountdownSeconds)
	}

	// The 60th tick fired the automatic trigger and reset the countdown.
	assert.Equal(t, domain.CountdownSeconds, controller.Snapshot().Countdown)
	waitIdle(t, controller)
}

func TestTickWhileStoppedIsNoop(t *testing.T) {
	controller, _, _ := newTestController(t)

	controller.Tick()

	snapshot := controller.Snapshot()
	assert.False(t, snapshot.Monitoring)
	assert.Equal(t, domain.CountdownSeconds, snapshot.Countdown)
}

func TestTickSkipsTriggerWhileExecutionInFlight(t *testing.T) {
	controller, _, _ := newTestController(t)

	controller.monitoring = true
	controller.countdown = 1
	controller.inFlight = true

	// No RestrictProcesses expectation: a dispatched call would fail the test.
	controller.Tick()

	assert.Equal(t, domain.CountdownSeconds, controller.Snapshot().Countdown)
}

func TestManualExecuteRejectedWhileInFlight(t *testing.T) {
	controller, _, events := newTestController(t)

	controller.monitoring = true
	controller.inFlight = true

	require.NoError(t, controller.ManualExecute())

	messages := logMessages(events)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "already in progress")
}

func TestManualExecuteRequiresMonitoring(t *testing.T) {
	controller, _, _ := newTestController(t)

	require.ErrorIs(t, controller.ManualExecute(), domain.ErrMonitoringInactive)
}

func TestManualExecuteDoesNotResetCountdown(t *testing.T) {
	controller, gateway, _ := newTestController(t)

	controller.monitoring = true
	controller.countdown = 37

	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(statusFixture(3, true), nil).Once()

	require.NoError(t, controller.ManualExecute())
	waitIdle(t, controller)

	snapshot := controller.Snapshot()
	assert.Equal(t, 37, snapshot.Countdown)
	require.NotNil(t, snapshot.LastStatus)
	require.NotNil(t, snapshot.LastStatus.TargetCore)
	assert.Equal(t, 3, *snapshot.LastStatus.TargetCore)
}

func TestExecutionFailureClearsInFlightAndLogs(t *testing.T) {
	controller, gateway, events := newTestController(t)

	controller.monitoring = true
	controller.countdown = 42

	execErr := errors.New("restrict failed")
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(domain.ProcessStatus{}, execErr).Once()

	require.NoError(t, controller.ManualExecute())
	waitIdle(t, controller)

	snapshot := controller.Snapshot()
	assert.Nil(t, snapshot.LastStatus)
	assert.Equal(t, 42, snapshot.Countdown)

	messages := logMessages(events)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Enforcement run failed (manual)")
	assert.Contains(t, messages[0], "restrict failed")
}

func TestStopIsFailOpen(t *testing.T) {
	controller, gateway, events := newTestController(t)

	controller.monitoring = true

	disarmErr := errors.New("agent timeout")
	gateway.EXPECT().StopTimer(mockAnyContext()).Return(disarmErr).Once()

	err := controller.Stop(context.Background())
	require.ErrorIs(t, err, disarmErr)
	assert.False(t, controller.Snapshot().Monitoring)

	messages := logMessages(events)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Failed to disarm agent timer")
}

func TestStopRequiresMonitoring(t *testing.T) {
	controller, _, _ := newTestController(t)

	require.ErrorIs(t, controller.Stop(context.Background()), domain.ErrMonitoringInactive)
}

func TestStopAllowsInFlightExecutionToComplete(t *testing.T) {
	controller, gateway, _ := newTestController(t)

	release := make(chan struct{})
	gateway.EXPECT().StartTimer(mockAnyContext(), false).Return(nil).Once()
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).RunAndReturn(func(context.Context, bool) (domain.ProcessStatus, error) {
		<-release
		return statusFixture(5, true), nil
	}).Once()
	gateway.EXPECT().StopTimer(mockAnyContext()).Return(nil).Once()

	require.NoError(t, controller.Start(context.Background()))
	require.True(t, controller.Snapshot().ExecutionInFlight)

	require.NoError(t, controller.Stop(context.Background()))
	assert.False(t, controller.Snapshot().Monitoring)
	assert.True(t, controller.Snapshot().ExecutionInFlight)

	close(release)
	waitIdle(t, controller)

	snapshot := controller.Snapshot()
	assert.False(t, snapshot.Monitoring)
	require.NotNil(t, snapshot.LastStatus)
	require.NotNil(t, snapshot.LastStatus.TargetCore)
	assert.Equal(t, 5, *snapshot.LastStatus.TargetCore)
}

func TestSetModeRejectedWhileMonitoring(t *testing.T) {
	controller, _, _ := newTestController(t)

	controller.monitoring = true

	err := controller.SetMode(domain.ModeAggressive)
	require.ErrorIs(t, err, domain.ErrMonitoringActive)
	assert.Equal(t, domain.ModeStandard, controller.Mode())
}

func TestSetModeRejectsInvalidMode(t *testing.T) {
	controller, _, _ := newTestController(t)

	err := controller.SetMode(domain.Mode("turbo"))
	require.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestLogEntriesAppendInCompletionOrder(t *testing.T) {
	controller, gateway, events := newTestController(t)

	controller.monitoring = true

	first := statusFixture(1, true)
	first.Message = "first run"
	second := statusFixture(1, true)
	second.Message = "second run"

	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(first, nil).Once()
	require.NoError(t, controller.ManualExecute())
	waitIdle(t, controller)

	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(second, nil).Once()
	require.NoError(t, controller.ManualExecute())
	waitIdle(t, controller)

	messages := logMessages(events)
	require.Len(t, messages, 2)
	assert.Equal(t, []string{"first run", "second run"}, messages)
}

// Mirrors a full session: start with an immediate run, a full countdown cycle,
// a manual trigger rejected mid-flight, and a stop that leaves the in-flight
// run to finish.
func TestSessionFullCycleScenario(t *testing.T) {
	controller, gateway, events := newTestController(t)

	firstCore := 2
	first := domain.ProcessStatus{
		TargetCore: &firstCore,
		Reports: []domain.ProcessReport{
			{Process: domain.TrackedProcesses()[0], Found: true, Restricted: false},
			{Process: domain.TrackedProcesses()[1], Found: true, Restricted: false},
			{Process: domain.TrackedProcesses()[2], Found: false, Restricted: false},
		},
		Message: "SGuard64.exe found, restriction pending",
	}

	gateway.EXPECT().StartTimer(mockAnyContext(), false).Return(nil).Once()
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).Return(first, nil).Once()

	require.NoError(t, controller.Start(context.Background()))
	waitIdle(t, controller)

	snapshot := controller.Snapshot()
	assert.Equal(t, domain.CountdownSeconds, snapshot.Countdown)
	require.NotNil(t, snapshot.LastStatus)
	require.NotNil(t, snapshot.LastStatus.TargetCore)
	assert.Equal(t, 2, *snapshot.LastStatus.TargetCore)
	report, ok := snapshot.LastStatus.Report("sguard64")
	require.True(t, ok)
	assert.True(t, report.Found)
	assert.False(t, report.Restricted)

	// Hold the second (automatic) execution in flight.
	release := make(chan struct{})
	gateway.EXPECT().RestrictProcesses(mockAnyContext(), false).RunAndReturn(func(context.Context, bool) (domain.ProcessStatus, error) {
		<-release
		return statusFixture(2, true), nil
	}).Once()

	for i := 0; i < domain.CountdownSeconds; i++ {
		controller.Tick()
	}
	assert.Equal(t, domain.CountdownSeconds, controller.Snapshot().Countdown)
	require.True(t, controller.Snapshot().ExecutionInFlight)

	require.NoError(t, controller.ManualExecute())
	rejected := false
	for _, message := range logMessages(events) {
		if strings.Contains(message, "already in progress") {
			rejected = true
		}
	}
	assert.True(t, rejected)

	gateway.EXPECT().StopTimer(mockAnyContext()).Return(nil).Once()
	require.NoError(t, controller.Stop(context.Background()))
	assert.False(t, controller.Snapshot().Monitoring)

	close(release)
	waitIdle(t, controller)
	assert.Equal(t, 2, controller.Snapshot().LastStatus.RestrictedCount())
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}
