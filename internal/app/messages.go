// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible status texts shared by the client
// workflows, the login handoff pages and the terminal UI.
//
// Msg* constants are complete messages. Fmt* constants are fmt templates;
// use the helper functions below rather than formatting them by hand so the
// wording stays identical everywhere.
package app

import (
	"fmt"
	"strconv"
)

// Upload workflow.
const (
	MsgNoFileSelected   = "🚫 Please select a PDF file first."
	MsgUploadInProgress = "Uploading and processing... ⏳"
	MsgUploadComplete   = "✅ Upload complete."

	FmtTooManyFiles  = "🚫 Too many files. Maximum is %d."
	FmtFileTooLarge  = "🚫 File %q exceeds %sMB limit."
	FmtFileNotPDF    = "🚫 File %q is not a PDF."
	FmtDropAccepted  = "Accepted %d of %d dropped files."
	FmtFilesSelected = "Selected %d file(s)."
	FmtUploadFailed  = "❌ Upload failed: %s"
)

// Query workflow.
const (
	MsgEmptyQuestion = "🚫 Please type a question."
	MsgAsking        = "Getting an answer... 🧠"
	MsgAnswerReady   = "Answer ready! 🎉"
	MsgNoAnswer      = "No answer returned."

	FmtAskFailed   = "❌ Failed to get answer: %s"
	FmtAnswerError = "Error: %s"
)

// Document registry workflow.
const (
	MsgNoDocuments         = "No documents uploaded yet."
	MsgLoadingDocuments    = "Loading documents... 📄"
	MsgDeletionCancelled   = "Deletion cancelled."
	MsgDocumentDeleted     = "✅ Document deleted."
	MsgAllDocumentsDeleted = "✅ All documents deleted."
	MsgConfirmDeleteAll    = "Delete all documents?"
	MsgDeletingAll         = "Deleting all documents... 🗑️"

	FmtDocumentsLoaded  = "Loaded %d document(s)."
	FmtLoadFailed       = "❌ Failed to load documents: %s"
	FmtConfirmDeleteOne = "Delete %q?"
	FmtDeletingOne      = "Deleting %q... 🗑️"
	FmtDeleteOneFailed  = "❌ Failed to delete document: %s"
	FmtDeleteAllFailed  = "❌ Failed to delete documents: %s"
)

// Shared by every workflow and the handoff surface.
const (
	MsgNotAuthenticated = "🚫 Not authenticated. Please log in."
	MsgUnknownError     = "Unknown error"

	FmtNetworkError = "❌ Network error: %s"
	FmtAuthFailed   = "Authentication failed (%s). Please sign in again."
)

// TooManyFiles formats [FmtTooManyFiles].
func TooManyFiles(limit int) string {
	return fmt.Sprintf(FmtTooManyFiles, limit)
}

// FileTooLarge formats [FmtFileTooLarge] with the ceiling in whole or
// fractional megabytes (MiB).
func FileTooLarge(name string, limitBytes int64) string {
	mb := float64(limitBytes) / (1 << 20)
	return fmt.Sprintf(FmtFileTooLarge, name, strconv.FormatFloat(mb, 'f', -1, 64))
}

// FileNotPDF formats [FmtFileNotPDF].
func FileNotPDF(name string) string {
	return fmt.Sprintf(FmtFileNotPDF, name)
}

// NetworkError formats [FmtNetworkError].
func NetworkError(cause string) string {
	return fmt.Sprintf(FmtNetworkError, cause)
}

// AuthFailed formats [FmtAuthFailed].
func AuthFailed(code string) string {
	return fmt.Sprintf(FmtAuthFailed, code)
}
