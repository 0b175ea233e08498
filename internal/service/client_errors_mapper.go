// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/doc-query/internal/adapter"
	"github.com/MKhiriev/doc-query/internal/app"
)

// failure is an adapter error reduced to what a workflow displays.
type failure struct {
	// network is set when the request never got a response.
	network bool
	// detail is the backend message, the transport cause, or a fallback.
	detail string
	// unauthorized is set when the backend rejected the credential.
	unauthorized bool
}

// describeFailure translates an adapter error into display terms.
func describeFailure(err error) failure {
	var transportErr *adapter.TransportError
	if errors.As(err, &transportErr) {
		return failure{network: true, detail: transportErr.Error()}
	}

	var backendErr *adapter.BackendError
	if errors.As(err, &backendErr) {
		detail := backendErr.Detail
		if detail == "" {
			detail = app.MsgUnknownError
		}
		return failure{detail: detail, unauthorized: errors.Is(err, adapter.ErrUnauthorized)}
	}

	return failure{detail: err.Error()}
}

// text formats the failure with tmpl unless it is a network failure, which
// always uses the network message.
func (f failure) text(tmpl func(detail string) string) string {
	if f.network {
		return app.NetworkError(f.detail)
	}
	return tmpl(f.detail)
}
