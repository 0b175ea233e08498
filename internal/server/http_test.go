package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/doc-query/internal/logger"
)

func newTestServer(address string) *httpServer {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	return newHTTPServer(router, address, logger.Nop())
}

func TestHTTPServer_Lifecycle(t *testing.T) {
	s := newTestServer("127.0.0.1:0")
	assert.Empty(t, s.Addr())

	require.NoError(t, s.Start())
	addr := s.Addr()
	require.NotEmpty(t, addr)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	assert.ErrorIs(t, s.Start(), ErrAlreadyStarted)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	_, err = http.Get("http://" + addr + "/")
	assert.Error(t, err)
}

func TestHTTPServer_StartFailsOnBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(busy.Addr().String())

	err = s.Start()
	assert.ErrorIs(t, err, ErrListen)
	assert.Empty(t, s.Addr())
}

func TestHTTPServer_ShutdownBeforeStart(t *testing.T) {
	s := newTestServer("127.0.0.1:0")
	assert.NoError(t, s.Shutdown(context.Background()))
}
