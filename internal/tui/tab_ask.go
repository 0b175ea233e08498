package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/doc-query/models"
)

func (m mainModel) updateAsk(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.submit):
		question := m.questionInput.Value()
		query := m.services.QueryService
		m.note = models.StatusMessage{}
		return m, m.run(func(ctx context.Context) { query.Ask(ctx, question) })

	case key.Matches(msg, keys.copy):
		if !m.answer.HasAnswer {
			m.note = models.Info(models.WorkflowQuestion, "Nothing to copy yet.")
			return m, nil
		}
		if err := clipboard.WriteAll(m.answer.Answer); err != nil {
			m.note = models.Failure(models.WorkflowQuestion, "Copy failed: "+err.Error())
			return m, nil
		}
		m.note = models.Success(models.WorkflowQuestion, "Answer copied to clipboard.")
		return m, nil
	}

	var cmd tea.Cmd
	m.questionInput, cmd = m.questionInput.Update(msg)
	return m, cmd
}

func (m mainModel) viewAsk() (string, string) {
	out := "Question:\n" + m.questionInput.View()

	if status := renderStatus(m.answer.Status); status != "" {
		out += "\n\n" + status
	}
	if m.answer.HasAnswer {
		out += "\n\n" + titleStyle.Render("Answer") + "\n" + answerStyle.Width(60).Render(m.answer.Answer)
	}

	return out, "enter: ask · ctrl+y: copy answer"
}
