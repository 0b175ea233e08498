package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/internal/app"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/surface"
	"github.com/MKhiriev/doc-query/internal/workers"
	"github.com/MKhiriev/doc-query/models"
)

type clientDocumentService struct {
	adapter      adapter.ServerAdapter
	guard        *sessionGuard
	confirmer    Confirmer
	scheduler    workers.Scheduler
	refreshDelay time.Duration
	logger       *logger.Logger

	view *surface.Surface[models.RegistryView]
}

// newClientDocumentService returns the document registry workflow.
func newClientDocumentService(
	serverAdapter adapter.ServerAdapter,
	guard *sessionGuard,
	confirmer Confirmer,
	scheduler workers.Scheduler,
	refreshDelay time.Duration,
	logger *logger.Logger,
) DocumentService {
	return &clientDocumentService{
		adapter:      serverAdapter,
		guard:        guard,
		confirmer:    confirmer,
		scheduler:    scheduler,
		refreshDelay: refreshDelay,
		logger:       logger,
		view: surface.New(models.RegistryView{
			Status:      models.StatusMessage{Workflow: models.WorkflowDocuments},
			Placeholder: app.MsgNoDocuments,
		}),
	}
}

func (d *clientDocumentService) View() *surface.Surface[models.RegistryView] {
	return d.view
}

// List implements [DocumentService]. The backend is always asked; the last
// displayed list is only kept on screen while the request runs.
func (d *clientDocumentService) List(ctx context.Context) models.RegistryView {
	ticket := d.view.Begin()
	shown := d.view.Current().Documents

	cred, ok := d.guard.credential(ctx)
	if !ok {
		return d.publish(ticket, models.Failure(models.WorkflowDocuments, app.MsgNotAuthenticated), shown)
	}

	d.publish(ticket, models.Info(models.WorkflowDocuments, app.MsgLoadingDocuments), shown)

	list, err := d.adapter.ListDocuments(ctx, cred)
	if err != nil {
		d.logger.Err(err).Str("func", "clientDocumentService.List").Msg("listing documents failed")

		return d.fail(ctx, ticket, err, app.FmtLoadFailed, shown)
	}

	if len(list.Documents) == 0 {
		return d.publish(ticket, models.Info(models.WorkflowDocuments, app.MsgNoDocuments), nil)
	}

	return d.publish(ticket,
		models.Success(models.WorkflowDocuments, fmt.Sprintf(app.FmtDocumentsLoaded, len(list.Documents))),
		list.Documents)
}

func (d *clientDocumentService) Refresh(ctx context.Context) {
	d.List(ctx)
}

func (d *clientDocumentService) DeleteOne(ctx context.Context, filename string) models.StatusMessage {
	return d.mutate(ctx,
		fmt.Sprintf(app.FmtConfirmDeleteOne, filename),
		fmt.Sprintf(app.FmtDeletingOne, filename),
		app.FmtDeleteOneFailed,
		func(cred models.Credential) (string, error) {
			resp, err := d.adapter.DeleteDocument(ctx, cred, filename)
			if err != nil {
				return "", err
			}
			if resp.Detail == "" {
				return app.MsgDocumentDeleted, nil
			}
			return resp.Detail, nil
		})
}

func (d *clientDocumentService) DeleteAll(ctx context.Context) models.StatusMessage {
	return d.mutate(ctx,
		app.MsgConfirmDeleteAll,
		app.MsgDeletingAll,
		app.FmtDeleteAllFailed,
		func(cred models.Credential) (string, error) {
			if _, err := d.adapter.DeleteAllDocuments(ctx, cred); err != nil {
				return "", err
			}
			return app.MsgAllDocumentsDeleted, nil
		})
}

// mutate runs the confirm, call, deferred refresh sequence shared by both
// deletes. A declined prompt makes no call.
func (d *clientDocumentService) mutate(
	ctx context.Context,
	prompt, progress, failedTmpl string,
	call func(cred models.Credential) (string, error),
) models.StatusMessage {
	if !d.confirmer.Confirm(ctx, prompt) {
		msg := models.Info(models.WorkflowDocuments, app.MsgDeletionCancelled)
		d.publish(d.view.Begin(), msg, d.view.Current().Documents)
		return msg
	}

	ticket := d.view.Begin()
	shown := d.view.Current().Documents

	cred, ok := d.guard.credential(ctx)
	if !ok {
		return d.publish(ticket, models.Failure(models.WorkflowDocuments, app.MsgNotAuthenticated), shown).Status
	}

	d.publish(ticket, models.Info(models.WorkflowDocuments, progress), shown)

	text, err := call(cred)
	if err != nil {
		d.logger.Err(err).Str("func", "clientDocumentService.mutate").Msg("delete failed")
		return d.fail(ctx, ticket, err, failedTmpl, shown).Status
	}

	msg := models.Success(models.WorkflowDocuments, text)
	d.publish(ticket, msg, shown)

	d.scheduler.After(d.refreshDelay, d.Refresh)
	return msg
}

// fail publishes err formatted with tmpl. A rejected credential is
// forgotten after the message is shown.
func (d *clientDocumentService) fail(ctx context.Context, ticket surface.Ticket, err error, tmpl string, shown []models.DocumentRecord) models.RegistryView {
	f := describeFailure(err)
	status := models.Failure(models.WorkflowDocuments, f.text(func(detail string) string {
		return fmt.Sprintf(tmpl, detail)
	}))

	view := d.publish(ticket, status, shown)
	if f.unauthorized {
		d.guard.expire(ctx)
	}
	return view
}

func (d *clientDocumentService) publish(ticket surface.Ticket, status models.StatusMessage, docs []models.DocumentRecord) models.RegistryView {
	view := models.RegistryView{
		Status:      status,
		Documents:   docs,
		Placeholder: app.MsgNoDocuments,
	}
	d.view.Publish(ticket, view)
	return view
}
