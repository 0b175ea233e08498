// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Workflow identifies one of the independent user workflows. Each workflow
// owns its own status surface.
type Workflow string

const (
	WorkflowUpload    Workflow = "upload"
	WorkflowQuestion  Workflow = "question"
	WorkflowDocuments Workflow = "documents"
)

// Severity classifies a status message for rendering.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusMessage is the user-visible outcome of a workflow step.
type StatusMessage struct {
	Workflow Workflow
	Text     string
	Severity Severity
}

// Info builds an informational status for w.
func Info(w Workflow, text string) StatusMessage {
	return StatusMessage{Workflow: w, Text: text, Severity: SeverityInfo}
}

// Success builds a success status for w.
func Success(w Workflow, text string) StatusMessage {
	return StatusMessage{Workflow: w, Text: text, Severity: SeveritySuccess}
}

// Failure builds an error status for w.
func Failure(w Workflow, text string) StatusMessage {
	return StatusMessage{Workflow: w, Text: text, Severity: SeverityError}
}

// IsError reports whether the message has error severity.
func (s StatusMessage) IsError() bool {
	return s.Severity == SeverityError
}

// AnswerView is what the question workflow displays: a status line and
// the answer area.
type AnswerView struct {
	Status    StatusMessage
	Answer    string
	HasAnswer bool
}

// RegistryView is what the document registry displays.
type RegistryView struct {
	Status      StatusMessage
	Documents   []DocumentRecord
	Placeholder string
}

// Empty reports whether the registry has no documents to list.
func (v RegistryView) Empty() bool {
	return len(v.Documents) == 0
}
