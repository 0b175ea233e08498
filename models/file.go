// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"strings"
)

// PDFMimeType is the media type accepted by the upload workflow.
const PDFMimeType = "application/pdf"

// SelectionOrigin tells how a batch of files entered the pending selection.
type SelectionOrigin int

const (
	// OriginPicker is an explicit selection. A non-PDF entry rejects the
	// whole batch at submit time.
	OriginPicker SelectionOrigin = iota

	// OriginDrop is a drag-and-drop style selection (a directory in the
	// terminal client). Non-PDF entries are filtered out silently.
	OriginDrop
)

// PendingFile is a local file chosen by the user and not yet uploaded.
type PendingFile struct {
	// Name is the base name sent to the backend as the multipart filename.
	Name string

	// Path is the location of the file on disk.
	Path string

	// Size is the file size in bytes.
	Size int64

	// MIME is the detected media type, possibly empty.
	MIME string
}

// IsPDF reports whether the file is a PDF by extension or detected type.
func (f PendingFile) IsPDF() bool {
	if strings.EqualFold(filepath.Ext(f.Name), ".pdf") {
		return true
	}
	return strings.HasPrefix(f.MIME, PDFMimeType)
}
