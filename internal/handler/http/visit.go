package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/utils"
	"github.com/MKhiriev/doc-query/models"
)

// visit resolves a login or main surface visit.
//
// A consumed token redirects to the same address without it, so the
// credential does not stay in the browser history.
func (h *Handler) visit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	out, err := h.bootstrapper.Visit(r.Context(), r.URL)
	if err != nil {
		log.Err(err).Str("func", "*Handler.visit").Msg("error resolving session")
		h.render(w, r, errorPage, page{Title: "Error", Message: "The local session could not be read."}, statusFromError(err))
		return
	}

	log.Debug().Str("func", "*Handler.visit").Str("state", string(out.State)).Msg("visit resolved")

	if isHandoff(out) {
		h.notify(out)
	}

	switch {
	case out.State == session.StateURLError:
		h.render(w, r, noticePage, page{
			Title:          "Sign-in failed",
			Message:        out.Notice,
			RefreshURL:     out.Location,
			RefreshSeconds: h.refreshSeconds(),
		}, http.StatusOK)
	case out.CleanURL != "":
		http.Redirect(w, r, out.CleanURL, http.StatusSeeOther)
	case out.Authenticated():
		h.render(w, r, welcomePage, page{
			Title:   "doc-query",
			Heading: out.Profile.Greeting(),
			Message: "You are signed in. Return to the terminal to continue.",
		}, http.StatusOK)
	case out.Location != "":
		http.Redirect(w, r, out.Location, http.StatusSeeOther)
	default:
		h.render(w, r, loginPage, page{
			Title:    "Sign in",
			Message:  "Sign in to upload documents and ask questions about them.",
			LoginURL: h.cfg.LoginEntryURL,
		}, http.StatusOK)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	out, err := h.bootstrapper.Logout(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("error clearing session")
		h.render(w, r, errorPage, page{Title: "Error", Message: "The local session could not be cleared."}, statusFromError(err))
		return
	}

	http.Redirect(w, r, out.Location, http.StatusSeeOther)
}

// sessionInfo reports the stored session without consuming query parameters.
func (h *Handler) sessionInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	out, err := h.bootstrapper.Visit(r.Context(), &url.URL{Path: sessionPath})
	if err != nil {
		log.Err(err).Str("func", "*Handler.sessionInfo").Msg("error resolving session")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	resp := models.SessionResponse{Authenticated: out.Authenticated()}
	if resp.Authenticated {
		resp.DisplayName = out.DisplayName
		resp.Email = out.Profile.Email
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.sessionInfo").Msg("error writing response")
	}
}

func (h *Handler) refreshSeconds() int {
	seconds := int(h.redirectDelay.Seconds())
	if seconds < 1 {
		return 1
	}
	return seconds
}
