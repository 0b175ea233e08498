package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/doc-query/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	tabStyle        = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	answerStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
)

var severityStyles = map[models.Severity]lipgloss.Style{
	models.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	models.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

func renderStatus(s models.StatusMessage) string {
	if s.Text == "" {
		return ""
	}
	style, ok := severityStyles[s.Severity]
	if !ok {
		return s.Text
	}
	return style.Render(s.Text)
}
