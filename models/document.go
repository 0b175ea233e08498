// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DocumentRecord describes one document known to the backend.
type DocumentRecord struct {
	// Filename is the unique key of the document.
	Filename string `json:"filename"`

	// TotalChunks is the number of indexed chunks the backend produced.
	TotalChunks int `json:"total_chunks"`

	// UploadTimestamp is the backend's upload time, passed through as is.
	UploadTimestamp string `json:"upload_timestamp"`
}

// DocumentList is the body of GET /documents.
type DocumentList struct {
	Documents      []DocumentRecord `json:"documents"`
	TotalDocuments int              `json:"total_documents"`
	TotalChunks    int              `json:"total_chunks"`
}
