package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/guard-limiter-cli/internal/application"
	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	detail  lipgloss.Style
	active  lipgloss.Style
	stopped lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	faint   lipgloss.Style
	warning lipgloss.Style
	section lipgloss.Style
	keys    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		stopped: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		faint:   lipgloss.NewStyle().Faint(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section: lipgloss.NewStyle().MarginTop(1),
		keys:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (m Model) View() string {
	session := m.facade.Session()

	sections := []string{
		m.headerView(session),
		m.styles.section.Render(m.statusView(session)),
		m.styles.section.Render(m.performanceView()),
		m.styles.section.Render(m.logView()),
		m.styles.section.Render(m.footerView(session)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView(session application.SessionSnapshot) string {
	state := m.styles.stopped.Render("stopped")
	countdown := m.styles.faint.Render("--")
	if session.Monitoring {
		state = m.styles.active.Render("monitoring")
		countdown = m.styles.detail.Render(fmt.Sprintf("next run in %2ds", session.Countdown))
	}

	parts := []string{
		m.styles.title.Render("Guard Limiter"),
		state,
		m.styles.label.Render(string(session.Mode)),
		countdown,
	}
	if session.ExecutionInFlight {
		parts = append(parts, m.spinner.View()+m.styles.detail.Render("enforcing"))
	}

	line := strings.Join(parts, "  ")

	if info, ok := m.facade.SystemInfo(); ok && !info.IsAdmin {
		line += "  " + m.styles.warning.Render("[no admin]")
	}

	return line
}

func (m Model) statusView(session application.SessionSnapshot) string {
	lines := []string{m.styles.header.Render("tracked processes")}

	if session.LastStatus == nil {
		lines = append(lines, m.styles.faint.Render("No enforcement result yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	status := session.LastStatus
	if status.TargetCore != nil {
		lines = append(lines, m.styles.label.Render(fmt.Sprintf("target core: %d", *status.TargetCore)))
	}
	for _, report := range status.Reports {
		name := m.styles.label.Render(fmt.Sprintf("%-18s", report.Process.Name))
		var state string
		switch {
		case !report.Found:
			state = m.styles.faint.Render("not running")
		case report.Restricted:
			state = m.styles.good.Render("restricted")
		default:
			state = m.styles.bad.Render("found, unrestricted")
		}
		lines = append(lines, name+" "+state)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) performanceView() string {
	lines := []string{m.styles.header.Render("performance")}

	samples := m.facade.Performance()
	if len(samples) == 0 {
		lines = append(lines, m.styles.faint.Render("No samples yet."))
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

	lines = append(lines, m.styles.faint.Render(fmt.Sprintf("%-8s %-24s %8s %12s", "PID", "NAME", "CPU%", "MEM (MB)")))
	for _, sample := range ordered {
		lines = append(lines, m.styles.detail.Render(fmt.Sprintf(
			"%-8d %-24s %8.1f %12.1f",
			sample.PID, sample.Name, sample.CPUPercent, sample.MemoryMB,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) logView() string {
	lines := []string{m.styles.header.Render("events")}

	entries := m.facade.LogEntries()
	if len(entries) == 0 {
		lines = append(lines, m.styles.faint.Render("No events yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(entries) > logTailLines {
		entries = entries[len(entries)-logTailLines:]
	}
	for _, entry := range entries {
		stamp := m.styles.faint.Render(entry.Timestamp.Format("15:04:05"))
		lines = append(lines, stamp+" "+m.styles.detail.Render(entry.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) footerView(session application.SessionSnapshot) string {
	toggle := "s start"
	if session.Monitoring {
		toggle = "s stop"
	}

	keys := m.styles.keys.Render(fmt.Sprintf("%s · e execute · m mode · q quit", toggle))
	if m.notice == "" {
		return keys
	}

	return lipgloss.JoinVertical(lipgloss.Left, keys, m.styles.warning.Render(m.notice))
}
