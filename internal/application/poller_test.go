package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/bnema/guard-limiter-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoller(t *testing.T) (*PerfPoller, *mocks.MockEnforcementGateway) {
	t.Helper()

	gateway := mocks.NewMockEnforcementGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPerfPoller(gateway, logger, 0), gateway
}

func sampleFixture(pid int, cpu float64) []domain.PerformanceSample {
	return []domain.PerformanceSample{
		{PID: pid, Name: "SGuard64.exe", CPUPercent: cpu, MemoryMB: 148.2},
		{PID: pid + 1, Name: "WeChat.exe", CPUPercent: 1.3, MemoryMB: 512.7},
	}
}

func TestPollerReplacesLatestSet(t *testing.T) {
	poller, gateway := newTestPoller(t)

	gateway.EXPECT().GetProcessPerformance(mockAnyContext()).Return(sampleFixture(100, 24.5), nil).Once()
	poller.poll(context.Background())

	latest := poller.Latest()
	require.Len(t, latest, 2)
	assert.Equal(t, 100, latest[0].PID)

	gateway.EXPECT().GetProcessPerformance(mockAnyContext()).Return(sampleFixture(200, 12.0), nil).Once()
	poller.poll(context.Background())

	latest = poller.Latest()
	require.Len(t, latest, 2)
	assert.Equal(t, 200, latest[0].PID)
}

func TestPollerKeepsLastSetOnFetchFailure(t *testing.T) {
	poller, gateway := newTestPoller(t)

	gateway.EXPECT().GetProcessPerformance(mockAnyContext()).Return(sampleFixture(100, 24.5), nil).Once()
	poller.poll(context.Background())

	gateway.EXPECT().GetProcessPerformance(mockAnyContext()).Return(nil, errors.New("agent busy")).Once()
	poller.poll(context.Background())

	latest := poller.Latest()
	require.Len(t, latest, 2)
	assert.Equal(t, 100, latest[0].PID)
}

func TestPollerLatestNilBeforeFirstFetch(t *testing.T) {
	poller, _ := newTestPoller(t)
	assert.Nil(t, poller.Latest())
}

func TestPollerLatestReturnsCopy(t *testing.T) {
	poller, gateway := newTestPoller(t)

	gateway.EXPECT().GetProcessPerformance(mockAnyContext()).Return(sampleFixture(100, 24.5), nil).Once()
	poller.poll(context.Background())

	latest := poller.Latest()
	latest[0].Name = "mutated"

	assert.Equal(t, "SGuard64.exe", poller.Latest()[0].Name)
}

func TestPollerRunPollsImmediatelyAndStopsOnCancel(t *testing.T) {
	gateway := mocks.NewMockEnforcementGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	poller := NewPerfPoller(gateway, logger, time.Hour)

	gateway.EXPECT().GetProcessPerformance(mockAnyContext()).Return(sampleFixture(100, 24.5), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(poller.Latest()) == 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on context cancellation")
	}
}
