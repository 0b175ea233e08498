package server

import (
	"github.com/MKhiriev/doc-query/internal/config"
	handler "github.com/MKhiriev/doc-query/internal/handler/http"
	"github.com/MKhiriev/doc-query/internal/logger"
)

// NewServer returns the handoff surface bound to cfg.CallbackAddress. It
// does not listen until Start.
func NewServer(h *handler.Handler, cfg config.ClientSession, logger *logger.Logger) Server {
	logger.Info().Msg("creating handoff server...")
	return newHTTPServer(h.Init(), cfg.CallbackAddress, logger)
}
