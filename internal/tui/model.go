package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/doc-query/internal/service"
	"github.com/MKhiriev/doc-query/models"
)

type tab int

const (
	tabUpload tab = iota
	tabAsk
	tabDocuments
)

var tabTitles = [...]string{"Upload", "Ask", "Documents"}

// mainModel renders the three workflows. It never keeps workflow state of
// its own: status lines, answers and documents are re-read from the
// service surfaces on every refreshViewMsg.
type mainModel struct {
	ctx       context.Context
	services  *service.ClientServices
	profile   models.UserProfile
	buildInfo models.AppBuildInfo

	active        tab
	pathInput     textinput.Model
	questionInput textinput.Model

	pending      []models.PendingFile
	uploadStatus models.StatusMessage
	answer       models.AnswerView
	registry     models.RegistryView
	docIdx       int

	// note is local feedback that belongs to no workflow, e.g. a path that
	// cannot be read.
	note models.StatusMessage

	confirm       *confirmRequestMsg
	showBuildInfo bool

	quitByUser bool
	logout     bool
	redirect   string
}

func newMainModel(ctx context.Context, services *service.ClientServices, profile models.UserProfile, buildInfo models.AppBuildInfo) mainModel {
	path := textinput.New()
	path.Placeholder = "/path/to/file.pdf or a directory"
	path.Width = 54
	path.Focus()

	question := textinput.New()
	question.Placeholder = "Ask a question about your documents"
	question.Width = 54

	m := mainModel{
		ctx:           ctx,
		services:      services,
		profile:       profile,
		buildInfo:     buildInfo,
		pathInput:     path,
		questionInput: question,
	}
	m.pull()
	return m
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdList())
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		m.pull()
		return m, nil
	case confirmRequestMsg:
		m.confirm = &msg
		return m, nil
	case redirectMsg:
		m.redirect = msg.path
		m.refuseConfirm()
		return m, tea.Quit
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInput(msg)
}

func (m mainModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		m.refuseConfirm()
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm.reply <- true
			m.confirm = nil
		case key.Matches(msg, keys.no):
			m.refuseConfirm()
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.nextTab):
		m.switchTab(m.active + 1)
		return m, nil
	case key.Matches(msg, keys.prevTab):
		m.switchTab(m.active + tab(len(tabTitles)) - 1)
		return m, nil
	}

	switch m.active {
	case tabUpload:
		return m.updateUpload(msg)
	case tabAsk:
		return m.updateAsk(msg)
	default:
		return m.updateDocuments(msg)
	}
}

// updateInput forwards non-key messages, e.g. cursor blinks, to the
// focused input.
func (m mainModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case tabUpload:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case tabAsk:
		m.questionInput, cmd = m.questionInput.Update(msg)
	}
	return m, cmd
}

func (m *mainModel) switchTab(next tab) {
	m.active = next % tab(len(tabTitles))
	m.note = models.StatusMessage{}

	m.pathInput.Blur()
	m.questionInput.Blur()
	switch m.active {
	case tabUpload:
		m.pathInput.Focus()
	case tabAsk:
		m.questionInput.Focus()
	}
}

func (m *mainModel) pull() {
	m.pending = m.services.UploadService.Pending()
	m.uploadStatus = m.services.UploadService.Status().Current()
	m.answer = m.services.QueryService.View().Current()
	m.registry = m.services.DocumentService.View().Current()

	if m.docIdx >= len(m.registry.Documents) {
		m.docIdx = len(m.registry.Documents) - 1
	}
	if m.docIdx < 0 {
		m.docIdx = 0
	}
}

func (m *mainModel) refuseConfirm() {
	if m.confirm != nil {
		m.confirm.reply <- false
		m.confirm = nil
	}
}

// run executes fn off the Update loop. Its effect arrives through the
// surfaces, the returned message only triggers a final re-read.
func (m mainModel) run(fn func(ctx context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		fn(ctx)
		return refreshViewMsg{}
	}
}

func (m mainModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.confirm != nil {
		return appStyle.Render(overlayBoxStyle.Render(m.confirm.prompt + "\n\n" + helpStyle.Render("y: yes    n: no")))
	}

	var body, hotKeys string
	switch m.active {
	case tabUpload:
		body, hotKeys = m.viewUpload()
	case tabAsk:
		body, hotKeys = m.viewAsk()
	default:
		body, hotKeys = m.viewDocuments()
	}

	if note := renderStatus(m.note); note != "" {
		body += "\n\n" + note
	}

	return appStyle.Render(renderPage(m.viewHeader(), body, hotKeys))
}

func (m mainModel) viewHeader() string {
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.active {
			tabs = append(tabs, activeTabStyle.Render(title))
			continue
		}
		tabs = append(tabs, tabStyle.Render(title))
	}

	return titleStyle.Render(m.profile.Greeting()) + "\n\n" + strings.Join(tabs, " ")
}
