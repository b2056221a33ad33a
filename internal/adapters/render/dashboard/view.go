package dashboard

import (
	"fmt"
	"strings"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

func renderView(stats domain.DashboardStats, s styles) string {
	lines := []string{
		s.title.Render("Pharmacy Registry Dashboard"),
		metricLine(s, "pharmacies", stats.TotalPharmacies),
		metricLine(s, "independent", stats.IndependentCount),
		metricLine(s, "chain", stats.ChainCount),
		metricLine(s, "states covered", stats.StatesCovered),
		metricLine(s, "recent changes", stats.RecentChanges),
	}

	lines = append(lines, s.section.Render("Top states"))
	if len(stats.TopStates) == 0 {
		lines = append(lines, s.empty.Render("no state data"))
	} else {
		max := stats.TopStates[0].Count
		for _, state := range stats.TopStates {
			lines = append(lines, stateLine(s, state, max))
		}
	}

	lines = append(lines, s.section.Render("Recent pipeline runs"))
	if len(stats.RecentRuns) == 0 {
		lines = append(lines, s.empty.Render("no runs recorded"))
	} else {
		for _, run := range stats.RecentRuns {
			lines = append(lines, runLine(s, run))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func metricLine(s styles, label string, value int) string {
	return fmt.Sprintf("%s %s", s.metric.Render(fmt.Sprintf("%-16s", label+":")), s.value.Render(humanize.Comma(int64(value))))
}

func stateLine(s styles, state domain.StateCount, max int) string {
	const barWidth = 24

	filled := 0
	if max > 0 {
		filled = state.Count * barWidth / max
	}

	bar := s.stateBar.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", barWidth-filled)
	return fmt.Sprintf("  %-3s %s %s", state.State, bar, s.runMeta.Render(humanize.Comma(int64(state.Count))))
}

func runLine(s styles, run domain.PipelineRun) string {
	status := s.runOK.Render(run.Status)
	if run.Status == "failed" {
		status = s.runFail.Render(run.Status)
	}

	started := "unknown start"
	if run.StartedAt != nil {
		started = *run.StartedAt
	}

	return fmt.Sprintf("  %s %s %s", status, s.runMeta.Render(started), s.runMeta.Render(fmt.Sprintf("%s records", humanize.Comma(int64(run.RecordsProcessed)))))
}
