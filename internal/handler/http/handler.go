package http

import (
	"time"

	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/utils"
	"github.com/MKhiriev/doc-query/models"
)

// outcomeBuffer bounds how many handoff outcomes wait for the client.
const outcomeBuffer = 4

type Handler struct {
	bootstrapper  *session.Bootstrapper
	cfg           config.ClientSession
	redirectDelay time.Duration
	buildInfo     models.AppBuildInfo
	traceIDs      *utils.UUIDGenerator

	outcomes chan session.Outcome

	logger *logger.Logger
}

func NewHandler(bootstrapper *session.Bootstrapper, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("handoff handler created")
	return &Handler{
		bootstrapper:  bootstrapper,
		cfg:           cfg.Session,
		redirectDelay: cfg.Workers.RedirectDelay,
		buildInfo:     buildInfo,
		traceIDs:      utils.NewUUIDGenerator(),
		outcomes:      make(chan session.Outcome, outcomeBuffer),
		logger:        logger,
	}
}

// Outcomes delivers the result of every visit that carried a token or an
// error from the backend.
func (h *Handler) Outcomes() <-chan session.Outcome {
	return h.outcomes
}

func (h *Handler) notify(out session.Outcome) {
	select {
	case h.outcomes <- out:
	default:
		h.logger.Warn().Str("func", "*Handler.notify").Str("state", string(out.State)).Msg("handoff outcome dropped, client is not listening")
	}
}

func isHandoff(out session.Outcome) bool {
	if len(out.Steps) == 0 {
		return false
	}
	first := out.Steps[0]
	return first == session.StateURLToken || first == session.StateURLError
}
