package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/doc-query/models"
)

func (m mainModel) updateDocuments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	documents := m.services.DocumentService

	switch {
	case key.Matches(msg, keys.up):
		if m.docIdx > 0 {
			m.docIdx--
		}
	case key.Matches(msg, keys.down):
		if m.docIdx < len(m.registry.Documents)-1 {
			m.docIdx++
		}
	case key.Matches(msg, keys.refresh):
		m.note = models.StatusMessage{}
		return m, m.cmdList()
	case key.Matches(msg, keys.deleteOne):
		doc, ok := m.selectedDocument()
		if !ok {
			m.note = models.Info(models.WorkflowDocuments, "No document selected.")
			return m, nil
		}
		m.note = models.StatusMessage{}
		return m, m.run(func(ctx context.Context) { documents.DeleteOne(ctx, doc.Filename) })
	case key.Matches(msg, keys.deleteAll):
		m.note = models.StatusMessage{}
		return m, m.run(func(ctx context.Context) { documents.DeleteAll(ctx) })
	}

	return m, nil
}

func (m mainModel) cmdList() tea.Cmd {
	documents := m.services.DocumentService
	return m.run(func(ctx context.Context) { documents.Refresh(ctx) })
}

func (m mainModel) selectedDocument() (models.DocumentRecord, bool) {
	if m.docIdx < 0 || m.docIdx >= len(m.registry.Documents) {
		return models.DocumentRecord{}, false
	}
	return m.registry.Documents[m.docIdx], true
}

func (m mainModel) viewDocuments() (string, string) {
	var b strings.Builder

	if status := renderStatus(m.registry.Status); status != "" {
		b.WriteString(status)
		b.WriteString("\n\n")
	}

	if m.registry.Empty() {
		b.WriteString(helpStyle.Render(m.registry.Placeholder))
	} else {
		b.WriteString("  Filename                                  │ Chunks │ Uploaded\n")
		b.WriteString("  ──────────────────────────────────────────┼────────┼─────────────────────\n")
		for i, doc := range m.registry.Documents {
			cursor := "  "
			if i == m.docIdx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-42s │ %6d │ %s\n", cursor, fitText(doc.Filename, 42), doc.TotalChunks, doc.UploadTimestamp)
		}
	}

	return strings.TrimRight(b.String(), "\n"), "↑/↓: select · r: refresh · d: delete · D: delete all"
}
