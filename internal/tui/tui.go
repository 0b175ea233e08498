package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/service"
	"github.com/MKhiriev/doc-query/models"
)

type TUI struct {
	services  *service.ClientServices
	bridge    *Bridge
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// Result tells how the main loop ended when the user did not quit.
type Result struct {
	// Logout is set when the user asked to log out.
	Logout bool
	// Redirect is the surface a workflow sent the user to, e.g. the login
	// surface after the credential was rejected.
	Redirect string
}

// New returns a TUI over services. Surface changes are forwarded through
// bridge to whichever program is attached.
func New(services *service.ClientServices, bridge *Bridge, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	services.UploadService.Status().OnChange(func(models.StatusMessage) { bridge.notify() })
	services.QueryService.View().OnChange(func(models.AnswerView) { bridge.notify() })
	services.DocumentService.View().OnChange(func(models.RegistryView) { bridge.notify() })

	return &TUI{
		services:  services,
		bridge:    bridge,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// MainLoop runs the three workflow tabs for the signed-in user until they
// quit, log out or are redirected.
func (t *TUI) MainLoop(ctx context.Context, profile models.UserProfile) (Result, error) {
	model := newMainModel(ctx, t.services, profile, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.bridge.Attach(p)
	defer t.bridge.Detach()

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return Result{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return Result{}, ErrUserQuit
	}

	t.logger.Info().Bool("logout", result.logout).Str("redirect", result.redirect).Msg("main loop finished")
	return Result{Logout: result.logout, Redirect: result.redirect}, nil
}
