package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFiles       = errors.New("no files selected")
	ErrTooManyFiles  = errors.New("too many files")
	ErrFileTooLarge  = errors.New("file is too large")
	ErrFileNotPDF    = errors.New("file is not a PDF")
	ErrEmptyQuestion = errors.New("question is empty")
)

// FileError names the file that broke a per-file rule.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
