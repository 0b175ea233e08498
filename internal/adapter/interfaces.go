// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the document Q&A backend.
//
// The primary abstraction is [ServerAdapter], which decouples the workflows
// from the HTTP contract. The package ships a REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx replies come back as [*BackendError], which unwraps to a status
// sentinel from errors.go (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for
// 401). Requests that never got a reply come back as [*TransportError] and
// match [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/doc-query/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// Multipart field names accepted by POST /upload.
const (
	SingleFileField = "file"
	MultiFileField  = "files"
)

// ServerAdapter defines communication with the document Q&A backend. Every
// method sends token as a bearer credential.
type ServerAdapter interface {
	// Upload sends files as one multipart request under field, one part per
	// file, and returns the backend's confirmation.
	Upload(ctx context.Context, token models.Credential, field string, files []models.PendingFile) (models.DetailResponse, error)

	// Ask submits question and returns the generated answer.
	Ask(ctx context.Context, token models.Credential, question string) (models.AnswerResponse, error)

	// ListDocuments returns every document known to the backend.
	ListDocuments(ctx context.Context, token models.Credential) (models.DocumentList, error)

	// DeleteDocument removes the document keyed by filename. The name is
	// percent-encoded as a single path segment.
	DeleteDocument(ctx context.Context, token models.Credential, filename string) (models.DetailResponse, error)

	// DeleteAllDocuments removes every document.
	DeleteAllDocuments(ctx context.Context, token models.Credential) (models.DetailResponse, error)
}
