package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/server"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/tui"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	bootstrapper *session.Bootstrapper
	handoff      Handoff
	server       server.Server
	ui           MainLoop
	cfg          config.ClientSession

	// out receives the sign-in instructions while no UI is running.
	out    io.Writer
	logger *logger.Logger
}

func NewApp(
	bootstrapper *session.Bootstrapper,
	handoff Handoff,
	srv server.Server,
	ui MainLoop,
	cfg config.ClientSession,
	out io.Writer,
	logger *logger.Logger,
) *App {
	return &App{
		bootstrapper: bootstrapper,
		handoff:      handoff,
		server:       srv,
		ui:           ui,
		cfg:          cfg,
		out:          out,
		logger:       logger,
	}
}

// Run serves the handoff surface for the whole process lifetime and loops
// between signing in and the main UI until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.server.Start(); err != nil {
		return fmt.Errorf("error starting handoff surface: %w", err)
	}
	defer a.shutdown()

	for {
		out, err := a.bootstrapper.Start(ctx)
		if err != nil {
			return fmt.Errorf("error resolving session: %w", err)
		}

		if !out.Authenticated() {
			if out, err = a.awaitLogin(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		a.logger.Info().Str("func", "*App.Run").Strs("steps", stateNames(out.Steps)).Msg("session resolved")

		result, err := a.ui.MainLoop(ctx, out.Profile)
		switch {
		case errors.Is(err, tui.ErrUserQuit), ctx.Err() != nil:
			return nil
		case err != nil:
			return fmt.Errorf("error running main loop: %w", err)
		}

		if result.Logout {
			if _, err = a.bootstrapper.Logout(ctx); err != nil {
				return fmt.Errorf("error logging out: %w", err)
			}
			fmt.Fprintln(a.out, "Logged out.")
		}
	}
}

// awaitLogin points the user to the login surface and blocks until a
// handoff visit signs them in.
func (a *App) awaitLogin(ctx context.Context) (session.Outcome, error) {
	a.drainOutcomes()

	fmt.Fprintf(a.out, "Sign in to continue: open %s in your browser.\n", a.cfg.CallbackURL(a.cfg.LoginPath))

	for {
		select {
		case <-ctx.Done():
			return session.Outcome{}, ctx.Err()
		case out := <-a.handoff.Outcomes():
			if out.Authenticated() {
				fmt.Fprintln(a.out, out.Profile.Greeting())
				return out, nil
			}
			if out.Notice != "" {
				fmt.Fprintln(a.out, out.Notice)
			}
		}
	}
}

// drainOutcomes drops handoff outcomes left over from an earlier session.
func (a *App) drainOutcomes() {
	for {
		select {
		case <-a.handoff.Outcomes():
		default:
			return
		}
	}
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.shutdown").Msg("error stopping handoff surface")
	}
}

func stateNames(states []session.State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return names
}
