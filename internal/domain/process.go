package domain

// TrackedProcess identifies one of the fixed set of processes the agent
// discovers and restricts. The set never changes at runtime: the two SGuard
// anti-cheat components plus the messaging client they piggyback on.
type TrackedProcess struct {
	Name string
	Key  string
}

var trackedProcesses = []TrackedProcess{
	{Name: "SGuard64.exe", Key: "sguard64"},
	{Name: "SGuardSvc64.exe", Key: "sguardsvc64"},
	{Name: "WeChat.exe", Key: "wechat"},
}

func TrackedProcesses() []TrackedProcess {
	out := make([]TrackedProcess, len(trackedProcesses))
	copy(out, trackedProcesses)
	return out
}

// ProcessReport is the per-process outcome of one enforcement run.
type ProcessReport struct {
	Process    TrackedProcess
	Found      bool
	Restricted bool
}

// ProcessStatus is the result of one restrict_processes call. TargetCore is
// nil when the agent did not pin the processes to a core.
type ProcessStatus struct {
	TargetCore *int
	Reports    []ProcessReport
	Message    string
}

func (s ProcessStatus) FoundCount() int {
	n := 0
	for _, r := range s.Reports {
		if r.Found {
			n++
		}
	}
	return n
}

func (s ProcessStatus) RestrictedCount() int {
	n := 0
	for _, r := range s.Reports {
		if r.Restricted {
			n++
		}
	}
	return n
}

// Report returns the report for the tracked process with the given wire key.
func (s ProcessStatus) Report(key string) (ProcessReport, bool) {
	for _, r := range s.Reports {
		if r.Process.Key == key {
			return r, true
		}
	}
	return ProcessReport{}, false
}
