package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/mock"
	"github.com/MKhiriev/doc-query/models"
)

const (
	testToken      = models.Credential("header.payload.sig")
	testLoginPath  = "/index.html"
	testRefresh    = 500 * time.Millisecond
	testRedirect   = 2 * time.Second
	testMaxFiles   = 10
	testMaxFileMiB = 50
)

// testUI satisfies UI with two independent mocks.
type testUI struct {
	*mock.MockConfirmer
	*mock.MockNavigator
}

type testEnv struct {
	session   *mock.MockSession
	adapter   *mock.MockServerAdapter
	scheduler *mock.MockScheduler
	confirmer *mock.MockConfirmer
	navigator *mock.MockNavigator
	services  *ClientServices
}

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Upload: config.ClientUpload{
			MaxFileSizeBytes: testMaxFileMiB << 20,
			MaxFileCount:     testMaxFiles,
		},
		Session: config.ClientSession{
			LoginPath: testLoginPath,
			MainPath:  "/app.html",
		},
		Workers: config.ClientWorkers{
			RefreshDelay:  testRefresh,
			RedirectDelay: testRedirect,
		},
	}
}

// newTestEnv wires ClientServices to fresh mocks. mutate may adjust the
// config first.
func newTestEnv(t *testing.T, mutate ...func(*config.ClientConfig)) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	env := &testEnv{
		session:   mock.NewMockSession(ctrl),
		adapter:   mock.NewMockServerAdapter(ctrl),
		scheduler: mock.NewMockScheduler(ctrl),
		confirmer: mock.NewMockConfirmer(ctrl),
		navigator: mock.NewMockNavigator(ctrl),
	}
	env.services = NewClientServices(cfg, env.session, env.adapter, env.scheduler,
		testUI{env.confirmer, env.navigator}, logger.Nop())
	return env
}

// runNow makes a scheduler expectation run its function immediately.
func runNow(_ time.Duration, fn func(context.Context)) {
	fn(context.Background())
}

func (e *testEnv) signedIn(times int) {
	e.session.EXPECT().Get(gomock.Any()).Return(testToken, true, nil).Times(times)
}

func (e *testEnv) signedOut() {
	e.session.EXPECT().Get(gomock.Any()).Return(models.Credential(""), false, nil)
}

// expectLoginRedirect expects the deferred redirect to the login surface
// and runs it.
func (e *testEnv) expectLoginRedirect() {
	e.scheduler.EXPECT().After(testRedirect, gomock.Any()).Do(runNow)
	e.navigator.EXPECT().Redirect(testLoginPath)
}

func pdf(name string, size int64) models.PendingFile {
	return models.PendingFile{Name: name, Path: "/tmp/" + name, Size: size, MIME: models.PDFMimeType}
}
