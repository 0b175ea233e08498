package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/internal/app"
	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/surface"
	"github.com/MKhiriev/doc-query/internal/validators"
	"github.com/MKhiriev/doc-query/models"
)

type clientUploadService struct {
	adapter   adapter.ServerAdapter
	guard     *sessionGuard
	refresher Refresher
	validator validators.Validator
	limits    config.ClientUpload
	logger    *logger.Logger

	status *surface.Surface[models.StatusMessage]

	mu      sync.Mutex
	pending []models.PendingFile
}

// newClientUploadService returns the upload workflow. refresher is told to
// reload the registry once after every successful upload.
func newClientUploadService(serverAdapter adapter.ServerAdapter, guard *sessionGuard, refresher Refresher, validator validators.Validator, limits config.ClientUpload, logger *logger.Logger) UploadService {
	return &clientUploadService{
		adapter:   serverAdapter,
		guard:     guard,
		refresher: refresher,
		validator: validator,
		limits:    limits,
		logger:    logger,
		status:    surface.New(models.StatusMessage{Workflow: models.WorkflowUpload}),
	}
}

func (u *clientUploadService) Status() *surface.Surface[models.StatusMessage] {
	return u.status
}

func (u *clientUploadService) Select(files []models.PendingFile, origin models.SelectionOrigin) models.StatusMessage {
	accepted := files
	if origin == models.OriginDrop {
		accepted = slices.DeleteFunc(slices.Clone(files), func(f models.PendingFile) bool {
			return !f.IsPDF()
		})
	}

	u.mu.Lock()
	if u.limits.MaxFileCount == 1 && len(accepted) > 0 {
		// a single-file selection replaces the previous choice
		u.pending = nil
	}
	for _, f := range accepted {
		if !slices.ContainsFunc(u.pending, func(p models.PendingFile) bool { return p.Path == f.Path }) {
			u.pending = append(u.pending, f)
		}
	}
	total := len(u.pending)
	u.mu.Unlock()

	var msg models.StatusMessage
	switch {
	case origin == models.OriginDrop && len(accepted) == 0:
		msg = models.Failure(models.WorkflowUpload, fmt.Sprintf(app.FmtDropAccepted, 0, len(files)))
	case origin == models.OriginDrop:
		msg = models.Info(models.WorkflowUpload, fmt.Sprintf(app.FmtDropAccepted, len(accepted), len(files)))
	default:
		msg = models.Info(models.WorkflowUpload, fmt.Sprintf(app.FmtFilesSelected, total))
	}

	u.status.Set(msg)
	return msg
}

func (u *clientUploadService) Remove(name string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	before := len(u.pending)
	u.pending = slices.DeleteFunc(u.pending, func(f models.PendingFile) bool { return f.Name == name })
	return len(u.pending) != before
}

func (u *clientUploadService) ClearSelection() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.pending = nil
}

func (u *clientUploadService) Pending() []models.PendingFile {
	u.mu.Lock()
	defer u.mu.Unlock()

	return slices.Clone(u.pending)
}

func (u *clientUploadService) Submit(ctx context.Context) models.StatusMessage {
	return u.SubmitFiles(ctx, u.Pending())
}

// SubmitFiles validates files in order (presence, count, size, type) and
// stops at the first failure without touching the network. Valid batches
// are sent as one multipart request.
func (u *clientUploadService) SubmitFiles(ctx context.Context, files []models.PendingFile) models.StatusMessage {
	ticket := u.status.Begin()
	publish := func(msg models.StatusMessage) models.StatusMessage {
		u.status.Publish(ticket, msg)
		return msg
	}

	if msg, ok := u.validate(ctx, files); !ok {
		return publish(msg)
	}

	cred, ok := u.guard.credential(ctx)
	if !ok {
		return publish(models.Failure(models.WorkflowUpload, app.MsgNotAuthenticated))
	}

	publish(models.Info(models.WorkflowUpload, app.MsgUploadInProgress))

	resp, err := u.adapter.Upload(ctx, cred, u.field(), files)
	if err != nil {
		u.logger.Err(err).Str("func", "clientUploadService.SubmitFiles").Int("files", len(files)).Msg("upload failed")

		f := describeFailure(err)
		msg := publish(models.Failure(models.WorkflowUpload, f.text(func(d string) string {
			return fmt.Sprintf(app.FmtUploadFailed, d)
		})))
		if f.unauthorized {
			u.guard.expire(ctx)
		}
		return msg
	}

	u.forget(files)

	text := resp.Detail
	if text == "" {
		text = app.MsgUploadComplete
	}
	msg := publish(models.Success(models.WorkflowUpload, text))

	u.refresher.Refresh(ctx)
	return msg
}

func (u *clientUploadService) validate(ctx context.Context, files []models.PendingFile) (models.StatusMessage, bool) {
	err := u.validator.Validate(ctx, files)
	if err == nil {
		return models.StatusMessage{}, true
	}

	var name string
	var fileErr *validators.FileError
	if errors.As(err, &fileErr) {
		name = fileErr.Name
	}

	var text string
	switch {
	case errors.Is(err, validators.ErrNoFiles):
		text = app.MsgNoFileSelected
	case errors.Is(err, validators.ErrTooManyFiles):
		text = app.TooManyFiles(u.limits.MaxFileCount)
	case errors.Is(err, validators.ErrFileTooLarge):
		text = app.FileTooLarge(name, u.limits.MaxFileSizeBytes)
	case errors.Is(err, validators.ErrFileNotPDF):
		text = app.FileNotPDF(name)
	default:
		u.logger.Err(err).Str("func", "clientUploadService.validate").Msg("unexpected validation error")
		text = err.Error()
	}

	return models.Failure(models.WorkflowUpload, text), false
}

func (u *clientUploadService) field() string {
	if u.limits.MaxFileCount == 1 {
		return adapter.SingleFileField
	}
	return adapter.MultiFileField
}

// forget removes uploaded files from the pending selection. Files added
// while the upload was running stay selected.
func (u *clientUploadService) forget(files []models.PendingFile) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.pending = slices.DeleteFunc(u.pending, func(p models.PendingFile) bool {
		return slices.ContainsFunc(files, func(f models.PendingFile) bool { return f.Path == p.Path })
	})
}
