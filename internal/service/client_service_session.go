package service

import (
	"context"
	"time"

	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/workers"
	"github.com/MKhiriev/doc-query/models"
)

// sessionGuard gives the workflows their credential and handles the two
// ways of losing it: never having one and having the backend reject it.
type sessionGuard struct {
	session       session.Session
	scheduler     workers.Scheduler
	navigator     Navigator
	loginPath     string
	redirectDelay time.Duration
	logger        *logger.Logger
}

// credential returns the stored credential. When there is none, a login
// redirect is scheduled and ok is false.
func (g *sessionGuard) credential(ctx context.Context) (models.Credential, bool) {
	cred, ok, err := g.session.Get(ctx)
	if err != nil {
		g.logger.Err(err).Str("func", "sessionGuard.credential").Msg("failed to read credential")
	}
	if err != nil || !ok {
		g.scheduleLogin()
		return "", false
	}

	return cred, true
}

// expire forgets a credential the backend rejected and schedules the login
// redirect.
func (g *sessionGuard) expire(ctx context.Context) {
	if err := g.session.Clear(ctx); err != nil {
		g.logger.Err(err).Str("func", "sessionGuard.expire").Msg("failed to clear rejected credential")
	}
	g.scheduleLogin()
}

func (g *sessionGuard) scheduleLogin() {
	g.scheduler.After(g.redirectDelay, func(context.Context) {
		if g.navigator == nil {
			g.logger.Warn().Err(ErrNavigatorNotSet).Str("func", "sessionGuard.scheduleLogin").Msg("login redirect skipped")
			return
		}
		g.navigator.Redirect(g.loginPath)
	})
}
