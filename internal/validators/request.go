package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/models"
)

// Field names accepted by [RequestValidator].
const (
	// FieldFiles requires at least one file.
	FieldFiles = "files"
	// FieldCount caps the number of files.
	FieldCount = "count"
	// FieldSize caps the size of every file.
	FieldSize = "size"
	// FieldType requires every file to be a PDF.
	FieldType = "type"
	// FieldQuestion requires a question that is not blank.
	FieldQuestion = "question"
)

// RequestValidator validates upload batches and questions.
type RequestValidator struct {
	limits config.ClientUpload
}

func NewRequestValidator(limits config.ClientUpload) Validator {
	return &RequestValidator{limits: limits}
}

// Validate accepts a []models.PendingFile or a models.AskRequest.
//
// For a batch the default order is files, count, size, type: every file is
// checked for size before any file is checked for type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.PendingFile:
		return v.validateFiles(ctx, value, fields...)
	case models.AskRequest:
		return v.validateAsk(ctx, value, fields...)
	case *models.AskRequest:
		return v.validateAsk(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateFiles(_ context.Context, files []models.PendingFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFiles, FieldCount, FieldSize, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldFiles:
			if len(files) == 0 {
				return ErrNoFiles
			}
		case FieldCount:
			if len(files) > v.limits.MaxFileCount {
				return ErrTooManyFiles
			}
		case FieldSize:
			for _, file := range files {
				if file.Size > v.limits.MaxFileSizeBytes {
					return &FileError{Name: file.Name, Err: ErrFileTooLarge}
				}
			}
		case FieldType:
			for _, file := range files {
				if !file.IsPDF() {
					return &FileError{Name: file.Name, Err: ErrFileNotPDF}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAsk(_ context.Context, req models.AskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			if strings.TrimSpace(req.Question) == "" {
				return ErrEmptyQuestion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
