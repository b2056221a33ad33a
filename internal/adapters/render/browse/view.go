package browse

import (
	"fmt"
	"strings"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		m.styles.title.Render("Pharmacy Registry"),
		m.filterLine(),
		"",
	}

	page, ok := m.ctrl.Page()
	switch {
	case !ok && m.ctrl.Loading():
		lines = append(lines, fmt.Sprintf("%s loading...", m.spinner.View()))
	case !ok:
		lines = append(lines, m.styles.empty.Render("No results yet."))
	default:
		lines = append(lines, renderTable(page, m.styles)...)
		lines = append(lines, "", m.footerLine(page))
	}

	if err := m.ctrl.Err(); err != nil {
		lines = append(lines, m.styles.errLine.Render(fmt.Sprintf("fetch failed: %v (ctrl+r to retry)", err)))
	}
	if m.exportNote != "" {
		lines = append(lines, m.styles.note.Render(m.exportNote))
	}

	lines = append(lines,
		m.styles.share.Render("share: ?"+m.ctrl.ShareQuery()),
		m.styles.help.Render("tab: next filter · ←/→: page · ctrl+t: independent only · ctrl+e: export · esc: quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) filterLine() string {
	labels := []string{"search", "state", "city", "zip"}
	parts := make([]string, 0, fieldCount+1)

	for i, input := range m.inputs {
		box := m.styles.inputBox
		if i == m.focused {
			box = m.styles.focusedBox
		}
		parts = append(parts, fmt.Sprintf("%s %s", m.styles.label.Render(labels[i]+":"), box.Render(input.View())))
	}

	independent := "all"
	if m.ctrl.Criteria().IndependentOnly {
		independent = "independent only"
	}
	parts = append(parts, m.styles.label.Render("showing: ")+independent)

	return strings.Join(parts, "  ")
}

func (m Model) footerLine(page domain.ResultPage) string {
	loading := ""
	if m.ctrl.Loading() {
		loading = " " + m.spinner.View()
	}

	return m.styles.footer.Render(fmt.Sprintf("page %d of %d · %d results%s", page.Page, page.LastPage(), page.Total, loading))
}

func renderTable(page domain.ResultPage, s styles) []string {
	if len(page.Items) == 0 {
		return []string{s.empty.Render("No pharmacies match the current filters.")}
	}

	lines := make([]string, 0, len(page.Items)+1)
	lines = append(lines, s.header.Render(fmt.Sprintf("%-36s %-11s %-18s %-3s %-6s %s",
		"ORGANIZATION", "NPI", "CITY", "ST", "ZIP", "TYPE")))

	for _, item := range page.Items {
		tag := s.chainTag.Render("chain")
		if item.IsIndependent {
			tag = s.indepTag.Render("indep")
		}

		lines = append(lines, s.row.Render(fmt.Sprintf("%-36s %-11s %-18s %-3s %-6s ",
			truncate(item.OrganizationName, 36),
			item.NPI,
			truncate(deref(item.City), 18),
			deref(item.State),
			deref(item.Zip),
		))+tag)
	}

	return lines
}

func truncate(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 1 {
		return value[:width]
	}
	return value[:width-1] + "…"
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
