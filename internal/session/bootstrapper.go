package session

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/doc-query/internal/app"
	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/models"
)

// Query parameters set by the backend when it redirects back after sign-in.
const (
	TokenParam = "token"
	ErrorParam = "error"
)

// State is a step of the bootstrap state machine.
type State string

const (
	StateURLToken      State = "urlToken"
	StateURLError      State = "urlError"
	StateStoredToken   State = "storedToken"
	StateNoToken       State = "noToken"
	StateAuthenticated State = "authenticated"
)

// Outcome is what a visit resolved to.
type Outcome struct {
	// State is the terminal state: StateAuthenticated, StateURLError or
	// StateNoToken.
	State State

	// Steps lists every state passed through, in order.
	Steps []State

	// Location is where the visitor must be sent, empty to stay.
	Location string

	// CleanURL is the visited address without the token parameter. It is
	// only set when a token was consumed.
	CleanURL string

	// Profile is the cached display profile of an authenticated visit.
	Profile models.UserProfile

	// DisplayName is the name to greet the user with.
	DisplayName string

	// Notice is the blocking message shown for StateURLError.
	Notice string
}

// Authenticated reports whether the visit ended signed in.
func (o Outcome) Authenticated() bool {
	return o.State == StateAuthenticated
}

// Bootstrapper resolves the session for a visit of an application surface.
type Bootstrapper struct {
	session Session
	cfg     config.ClientSession
	logger  *logger.Logger
}

// NewBootstrapper returns a bootstrapper for the surfaces named in cfg.
func NewBootstrapper(session Session, cfg config.ClientSession, logger *logger.Logger) *Bootstrapper {
	return &Bootstrapper{session: session, cfg: cfg, logger: logger}
}

// Visit runs the state machine for one visit of u.
//
// A token parameter is stored before anything else is considered. An error
// parameter clears the stored credential and sends the visitor to the
// backend login entry. Otherwise the stored credential decides: present
// means authenticated, absent means a redirect to the login surface when
// u is the main surface. The login surface itself never redirects.
func (b *Bootstrapper) Visit(ctx context.Context, u *url.URL) (Outcome, error) {
	query := u.Query()

	if token := query.Get(TokenParam); token != "" {
		return b.consumeToken(ctx, u, models.Credential(token))
	}

	if query.Has(ErrorParam) {
		return b.rejectHandoff(ctx, query.Get(ErrorParam))
	}

	cred, ok, err := b.session.Get(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("error reading stored credential: %w", err)
	}
	if !ok {
		out := Outcome{State: StateNoToken, Steps: []State{StateNoToken}}
		if b.isMainSurface(u.Path) {
			out.Location = b.cfg.LoginPath
		}
		return out, nil
	}

	return b.resumeStored(ctx, cred)
}

// Start resolves the session when the client starts without a visit.
func (b *Bootstrapper) Start(ctx context.Context) (Outcome, error) {
	return b.Visit(ctx, &url.URL{Path: b.cfg.MainPath})
}

// Logout clears the session and sends the user to the login surface.
func (b *Bootstrapper) Logout(ctx context.Context) (Outcome, error) {
	if err := b.session.Clear(ctx); err != nil {
		return Outcome{}, fmt.Errorf("error clearing session: %w", err)
	}

	return Outcome{
		State:    StateNoToken,
		Steps:    []State{StateNoToken},
		Location: b.cfg.LoginPath,
	}, nil
}

func (b *Bootstrapper) consumeToken(ctx context.Context, u *url.URL, cred models.Credential) (Outcome, error) {
	profile := DecodeProfile(cred)
	if profile.IsEmpty() {
		b.logger.Warn().Str("func", "Bootstrapper.consumeToken").Msg("credential payload could not be decoded")
	}

	if err := b.session.Set(ctx, cred, profile); err != nil {
		return Outcome{}, fmt.Errorf("error storing credential: %w", err)
	}

	return Outcome{
		State:       StateAuthenticated,
		Steps:       []State{StateURLToken, StateAuthenticated},
		CleanURL:    stripToken(u),
		Profile:     profile,
		DisplayName: profile.DisplayName(),
	}, nil
}

func (b *Bootstrapper) rejectHandoff(ctx context.Context, code string) (Outcome, error) {
	b.logger.Warn().Str("func", "Bootstrapper.rejectHandoff").Str("code", code).Msg("login handoff failed")

	if err := b.session.Clear(ctx); err != nil {
		return Outcome{}, fmt.Errorf("error clearing session: %w", err)
	}

	return Outcome{
		State:    StateURLError,
		Steps:    []State{StateURLError},
		Location: b.cfg.LoginEntryURL,
		Notice:   app.AuthFailed(code),
	}, nil
}

func (b *Bootstrapper) resumeStored(ctx context.Context, cred models.Credential) (Outcome, error) {
	profile, ok, err := b.session.Profile(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("error reading stored profile: %w", err)
	}

	if !ok {
		profile = DecodeProfile(cred)
		if !profile.IsEmpty() {
			// display only, a failed write must not log the user out
			if err = b.session.SetProfile(ctx, profile); err != nil {
				b.logger.Err(err).Str("func", "Bootstrapper.resumeStored").Msg("failed to cache profile")
			}
		}
	}

	return Outcome{
		State:       StateAuthenticated,
		Steps:       []State{StateStoredToken, StateAuthenticated},
		Profile:     profile,
		DisplayName: profile.DisplayName(),
	}, nil
}

func (b *Bootstrapper) isMainSurface(path string) bool {
	if path == b.cfg.LoginPath {
		return false
	}
	return path == b.cfg.MainPath || path == "/" || path == ""
}

func stripToken(u *url.URL) string {
	clean := *u
	query := clean.Query()
	query.Del(TokenParam)
	clean.RawQuery = query.Encode()
	clean.Fragment = ""
	return clean.String()
}
