package status

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderEnforcement renders the outcome of one restrict_processes call.
func RenderEnforcement(status domain.ProcessStatus) (string, error) {
	return render(func(s styles) string {
		return enforcementView(status, s)
	})
}

// RenderSystemInfo renders the startup system info.
func RenderSystemInfo(info domain.SystemInfo) (string, error) {
	return render(func(s styles) string {
		return systemInfoView(info, s)
	})
}

// RenderPerformance renders a per-process sample set sorted by CPU usage.
func RenderPerformance(samples []domain.PerformanceSample) (string, error) {
	return render(func(s styles) string {
		return performanceView(samples, s)
	})
}

func enforcementView(status domain.ProcessStatus, s styles) string {
	lines := []string{
		s.title.Render("Enforcement result"),
	}

	if status.Message != "" {
		lines = append(lines, s.detail.Render(status.Message))
	}
	if status.TargetCore != nil {
		lines = append(lines, s.header.Render(fmt.Sprintf("target core: %d", *status.TargetCore)))
	}

	for _, report := range status.Reports {
		lines = append(lines, processLine(report, s))
	}

	lines = append(lines, s.header.Render(fmt.Sprintf(
		"found: %d/%d  restricted: %d/%d",
		status.FoundCount(), len(status.Reports),
		status.RestrictedCount(), len(status.Reports),
	)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func processLine(report domain.ProcessReport, s styles) string {
	name := s.label.Render(fmt.Sprintf("%-18s", report.Process.Name))

	var state string
	switch {
	case !report.Found:
		state = s.empty.Render("not running")
	case report.Restricted:
		state = s.good.Render("restricted")
	default:
		state = s.bad.Render("found, unrestricted")
	}

	return name + " " + state
}

func systemInfoView(info domain.SystemInfo, s styles) string {
	privileges := "standard user"
	if info.IsAdmin {
		privileges = "elevated"
	}

	lines := []string{
		s.title.Render("System"),
		infoLine(s, "cpu", fmt.Sprintf("%s (%d cores, %d logical)", info.CPUModel, info.CPUCores, info.CPULogicalCores)),
		infoLine(s, "os", strings.TrimSpace(info.OSName+" "+info.OSVersion)),
		infoLine(s, "memory", fmt.Sprintf("%.1f GB", info.TotalMemoryGB)),
		infoLine(s, "privileges", privileges),
	}

	if !info.IsAdmin {
		lines = append(lines, s.warning.Render("Restriction requires elevated privileges."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func infoLine(s styles, label, value string) string {
	return s.label.Render(fmt.Sprintf("%-11s", label)) + " " + s.detail.Render(value)
}

func performanceView(samples []domain.PerformanceSample, s styles) string {
	lines := []string{
		s.title.Render("Process performance"),
	}

	if len(samples) == 0 {
		lines = append(lines, s.empty.Render("No samples available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	ordered := make([]domain.PerformanceSample, len(samples))
	copy(ordered, samples)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].CPUPercent == ordered[j].CPUPercent {
			return ordered[i].PID < ordered[j].PID
		}
		return ordered[i].CPUPercent > ordered[j].CPUPercent
	})

	lines = append(lines, s.header.Render(fmt.Sprintf("%-8s %-24s %8s %12s", "PID", "NAME", "CPU%", "MEM (MB)")))
	for _, sample := range ordered {
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"%-8d %-24s %8.1f %12.1f",
			sample.PID, sample.Name, sample.CPUPercent, sample.MemoryMB,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
