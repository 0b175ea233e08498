package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/doc-query/internal/utils"
	"github.com/MKhiriev/doc-query/models"
)

func (m mainModel) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	upload := m.services.UploadService

	switch {
	case key.Matches(msg, keys.submit):
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		m.pathInput.SetValue("")

		files, origin, err := inspectPath(path)
		if err != nil {
			m.note = models.Failure(models.WorkflowUpload, fmt.Sprintf("Cannot read %s: %v", path, err))
			return m, nil
		}
		m.note = models.StatusMessage{}
		upload.Select(files, origin)
		m.pull()
		return m, nil

	case key.Matches(msg, keys.upload):
		m.note = models.StatusMessage{}
		return m, m.run(func(ctx context.Context) { upload.Submit(ctx) })

	case key.Matches(msg, keys.clear):
		upload.ClearSelection()
		m.pull()
		return m, nil

	case key.Matches(msg, keys.removeLast) && m.pathInput.Value() == "":
		if n := len(m.pending); n > 0 {
			upload.Remove(m.pending[n-1].Name)
			m.pull()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// inspectPath turns a typed path into a selection: a directory behaves like
// a drop of its files, a file like a picker choice.
func inspectPath(path string) ([]models.PendingFile, models.SelectionOrigin, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, models.OriginPicker, err
	}

	if info.IsDir() {
		files, err := utils.InspectDir(path)
		return files, models.OriginDrop, err
	}

	file, err := utils.InspectFile(path)
	if err != nil {
		return nil, models.OriginPicker, err
	}
	return []models.PendingFile{file}, models.OriginPicker, nil
}

func (m mainModel) viewUpload() (string, string) {
	var b strings.Builder

	b.WriteString("Add a PDF file, or a directory to add every PDF in it:\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Selected files"))
	b.WriteString("\n")
	if len(m.pending) == 0 {
		b.WriteString(helpStyle.Render("none"))
	}
	for i, f := range m.pending {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i+1) + ". " + fitText(f.Name, 48) + "  " + helpStyle.Render(formatSize(f.Size)))
	}

	if status := renderStatus(m.uploadStatus); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	return b.String(), "enter: add · backspace: remove last · ctrl+u: upload · ctrl+x: clear"
}
