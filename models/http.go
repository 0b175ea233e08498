// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DetailResponse is the generic backend reply carrying a human readable
// message. Error replies use the same shape.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AnswerResponse is the body returned by POST /ask.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// SessionResponse is served by the handoff surface to report whether the
// local session is signed in.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	DisplayName   string `json:"display_name,omitempty"`
	Email         string `json:"email,omitempty"`
}
