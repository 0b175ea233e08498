package service

import (
	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/validators"
	"github.com/MKhiriev/doc-query/internal/workers"
)

// UI is what the front end lends the workflows: confirmation prompts and
// navigation between surfaces.
type UI interface {
	Confirmer
	Navigator
}

// ClientServices groups the three workflows of a signed-in client.
type ClientServices struct {
	UploadService   UploadService
	QueryService    QueryService
	DocumentService DocumentService
}

// NewClientServices wires the workflows to one session, one backend adapter
// and one scheduler. The upload workflow refreshes the document registry
// built here.
func NewClientServices(
	cfg *config.ClientConfig,
	sess session.Session,
	serverAdapter adapter.ServerAdapter,
	scheduler workers.Scheduler,
	ui UI,
	logger *logger.Logger,
) *ClientServices {
	guard := &sessionGuard{
		session:       sess,
		scheduler:     scheduler,
		navigator:     ui,
		loginPath:     cfg.Session.LoginPath,
		redirectDelay: cfg.Workers.RedirectDelay,
		logger:        logger,
	}

	validator := validators.NewRequestValidator(cfg.Upload)
	documentSvc := newClientDocumentService(serverAdapter, guard, ui, scheduler, cfg.Workers.RefreshDelay, logger)

	return &ClientServices{
		UploadService:   newClientUploadService(serverAdapter, guard, documentSvc, validator, cfg.Upload, logger),
		QueryService:    newClientQueryService(serverAdapter, guard, validator, logger),
		DocumentService: documentSvc,
	}
}
