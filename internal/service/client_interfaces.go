// Package service implements the client workflows: upload, question and
// document registry.
//
// Workflows never return an error for a failed user action. Every outcome,
// including validation failures, backend rejections and network failures,
// is a [models.StatusMessage] published on the workflow's own surface.
package service

import (
	"context"

	"github.com/MKhiriev/doc-query/internal/surface"
	"github.com/MKhiriev/doc-query/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm blocks until the user answers prompt and reports whether they
	// agreed. A cancelled ctx counts as a refusal.
	Confirm(ctx context.Context, prompt string) bool
}

// Navigator moves the user to another application surface.
type Navigator interface {
	// Redirect sends the user to path, e.g. the login surface.
	Redirect(path string)
}

// Refresher reloads the document registry.
type Refresher interface {
	Refresh(ctx context.Context)
}

// UploadService is the upload workflow.
type UploadService interface {
	// Select adds files to the pending selection. Picker selections are kept
	// as chosen; dropped selections keep only PDFs.
	Select(files []models.PendingFile, origin models.SelectionOrigin) models.StatusMessage

	// Remove drops the pending file called name and reports whether it was
	// there.
	Remove(name string) bool

	// ClearSelection empties the pending selection.
	ClearSelection()

	// Pending returns a copy of the pending selection.
	Pending() []models.PendingFile

	// Submit uploads the pending selection.
	Submit(ctx context.Context) models.StatusMessage

	// SubmitFiles validates and uploads files.
	SubmitFiles(ctx context.Context, files []models.PendingFile) models.StatusMessage

	// Status is the upload status surface.
	Status() *surface.Surface[models.StatusMessage]
}

// QueryService is the question workflow.
type QueryService interface {
	// Ask submits question and returns the resulting view.
	Ask(ctx context.Context, question string) models.AnswerView

	// View is the question surface.
	View() *surface.Surface[models.AnswerView]
}

// DocumentService is the document registry workflow.
type DocumentService interface {
	// List fetches the documents and returns the resulting view.
	List(ctx context.Context) models.RegistryView

	// Refresh runs List for its effect on the surface.
	Refresh(ctx context.Context)

	// DeleteOne deletes filename after the user confirms.
	DeleteOne(ctx context.Context, filename string) models.StatusMessage

	// DeleteAll deletes every document after the user confirms.
	DeleteAll(ctx context.Context) models.StatusMessage

	// View is the registry surface.
	View() *surface.Surface[models.RegistryView]
}
