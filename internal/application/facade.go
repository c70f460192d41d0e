package application

import (
	"context"
	"sync"

	"github.com/bnema/guard-limiter-cli/internal/domain"
)

// Facade is the single read surface presentation layers consume: the session
// snapshot, the startup system info, the latest performance set, and the event
// log. All mutations funnel through the session controller.
type Facade struct {
	controller *SessionController
	poller     *PerfPoller
	events     *EventLog

	mu            sync.RWMutex
	systemInfo    domain.SystemInfo
	systemInfoSet bool
}

func NewFacade(controller *SessionController, poller *PerfPoller, events *EventLog) *Facade {
	return &Facade{controller: controller, poller: poller, events: events}
}

// SetSystemInfo records the startup system info. It is write-once: later calls
// are ignored, the info is immutable for the life of the process.
func (f *Facade) SetSystemInfo(info domain.SystemInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.systemInfoSet {
		return
	}
	f.systemInfo = info
	f.systemInfoSet = true
}

func (f *Facade) SystemInfo() (domain.SystemInfo, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.systemInfo, f.systemInfoSet
}

func (f *Facade) Session() SessionSnapshot {
	return f.controller.Snapshot()
}

func (f *Facade) Performance() []domain.PerformanceSample {
	return f.poller.Latest()
}

func (f *Facade) LogEntries() []domain.LogEntry {
	return f.events.Entries()
}

func (f *Facade) Mode() domain.Mode {
	return f.controller.Mode()
}

func (f *Facade) SetMode(mode domain.Mode) error {
	return f.controller.SetMode(mode)
}

func (f *Facade) Start(ctx context.Context) error {
	return f.controller.Start(ctx)
}

func (f *Facade) Stop(ctx context.Context) error {
	return f.controller.Stop(ctx)
}

func (f *Facade) ManualExecute() error {
	return f.controller.ManualExecute()
}
