package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/mock"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/models"
)

const (
	testLoginPath  = "/index.html"
	testMainPath   = "/app.html"
	testLoginEntry = "http://127.0.0.1:8000/auth/google/login"
)

func newTestConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Session: config.ClientSession{
			LoginPath:       testLoginPath,
			MainPath:        testMainPath,
			CallbackAddress: "127.0.0.1:8765",
			LoginEntryURL:   testLoginEntry,
		},
		Workers: config.ClientWorkers{RedirectDelay: 2 * time.Second},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *Handler, *mock.MockSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sess := mock.NewMockSession(ctrl)
	cfg := newTestConfig()

	b := session.NewBootstrapper(sess, cfg.Session, logger.Nop())
	h := NewHandler(b, cfg, models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"), logger.Nop())
	return h.Init(), h, sess
}

func signToken(t *testing.T, claims jwt.MapClaims) models.Credential {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return models.Credential(token)
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func receiveOutcome(t *testing.T, h *Handler) session.Outcome {
	t.Helper()
	select {
	case out := <-h.Outcomes():
		return out
	default:
		require.FailNow(t, "expected a handoff outcome")
		return session.Outcome{}
	}
}

func assertNoOutcome(t *testing.T, h *Handler) {
	t.Helper()
	select {
	case out := <-h.Outcomes():
		assert.Failf(t, "unexpected handoff outcome", "state %s", out.State)
	default:
	}
}

func TestVisit_TokenIsStoredAndStripped(t *testing.T) {
	router, h, sess := newTestRouter(t)
	token := signToken(t, jwt.MapClaims{"sub": "7", "name": "Ann", "email": "ann@example.com"})

	sess.EXPECT().
		Set(gomock.Any(), token, models.UserProfile{ID: "7", Name: "Ann", Email: "ann@example.com"}).
		Return(nil)

	rr := serve(router, http.MethodGet, testMainPath+"?tab=ask&token="+token.String())

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, testMainPath+"?tab=ask", rr.Header().Get("Location"))

	out := receiveOutcome(t, h)
	assert.True(t, out.Authenticated())
	assert.Equal(t, "Ann", out.DisplayName)
}

func TestVisit_ErrorShowsNoticeAndReturnsToLoginEntry(t *testing.T) {
	router, h, sess := newTestRouter(t)
	sess.EXPECT().Clear(gomock.Any()).Return(nil)

	rr := serve(router, http.MethodGet, testMainPath+"?error=csrf_state_mismatch")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "csrf_state_mismatch")
	assert.Contains(t, rr.Body.String(), `http-equiv="refresh"`)
	assert.Contains(t, rr.Body.String(), testLoginEntry)

	out := receiveOutcome(t, h)
	assert.Equal(t, session.StateURLError, out.State)
}

func TestVisit_StoredSession(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		stored       bool
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "main surface without credential goes to login",
			path:         testMainPath,
			wantStatus:   http.StatusSeeOther,
			wantLocation: testLoginPath,
		},
		{
			name:         "root without credential goes to login",
			path:         "/",
			wantStatus:   http.StatusSeeOther,
			wantLocation: testLoginPath,
		},
		{
			name:       "login surface never redirects",
			path:       testLoginPath,
			wantStatus: http.StatusOK,
			wantBody:   testLoginEntry,
		},
		{
			name:       "main surface with credential greets the user",
			path:       testMainPath,
			stored:     true,
			wantStatus: http.StatusOK,
			wantBody:   "Welcome, Ada!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, h, sess := newTestRouter(t)

			if tt.stored {
				sess.EXPECT().Get(gomock.Any()).Return(models.Credential("stored"), true, nil)
				sess.EXPECT().Profile(gomock.Any()).Return(models.UserProfile{Name: "Ada"}, true, nil)
			} else {
				sess.EXPECT().Get(gomock.Any()).Return(models.Credential(""), false, nil)
			}

			rr := serve(router, http.MethodGet, tt.path)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
			assertNoOutcome(t, h)
		})
	}
}

func TestVisit_StorageFailure(t *testing.T) {
	router, _, sess := newTestRouter(t)
	sess.EXPECT().Get(gomock.Any()).Return(models.Credential(""), false, session.ErrSessionStorage)

	rr := serve(router, http.MethodGet, testMainPath)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestLogout(t *testing.T) {
	t.Run("clears session and goes to login", func(t *testing.T) {
		router, _, sess := newTestRouter(t)
		sess.EXPECT().Clear(gomock.Any()).Return(nil)

		rr := serve(router, http.MethodGet, logoutPath)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, testLoginPath, rr.Header().Get("Location"))
	})

	t.Run("storage failure", func(t *testing.T) {
		router, _, sess := newTestRouter(t)
		sess.EXPECT().Clear(gomock.Any()).Return(errors.New("disk full"))

		rr := serve(router, http.MethodGet, logoutPath)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSessionInfo(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		router, _, sess := newTestRouter(t)
		sess.EXPECT().Get(gomock.Any()).Return(models.Credential("stored"), true, nil)
		sess.EXPECT().Profile(gomock.Any()).Return(models.UserProfile{Name: "Ada", Email: "ada@example.com"}, true, nil)

		rr := serve(router, http.MethodGet, sessionPath+"?token=ignored")

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.SessionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.SessionResponse{Authenticated: true, DisplayName: "Ada", Email: "ada@example.com"}, resp)
	})

	t.Run("signed out", func(t *testing.T) {
		router, _, sess := newTestRouter(t)
		sess.EXPECT().Get(gomock.Any()).Return(models.Credential(""), false, nil)

		rr := serve(router, http.MethodGet, sessionPath)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"authenticated":false}`, rr.Body.String())
	})
}

func TestVersion(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := serve(router, http.MethodGet, versionPath)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Build version: v1.2.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", rr.Body.String())
}

func TestInit_OnlyGetIsServed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rr := serve(router, method, testMainPath)
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
	}
}

func TestSurfacePaths(t *testing.T) {
	h := &Handler{cfg: config.ClientSession{LoginPath: "/", MainPath: testMainPath}}
	assert.Equal(t, []string{"/", testMainPath}, h.surfacePaths())

	h.cfg.LoginPath = testLoginPath
	assert.Equal(t, []string{testLoginPath, testMainPath, "/"}, h.surfacePaths())
}

func TestRefreshSeconds(t *testing.T) {
	h := &Handler{redirectDelay: 1500 * time.Millisecond}
	assert.Equal(t, 1, h.refreshSeconds())

	h.redirectDelay = 0
	assert.Equal(t, 1, h.refreshSeconds())

	h.redirectDelay = 5 * time.Second
	assert.Equal(t, 5, h.refreshSeconds())
}
