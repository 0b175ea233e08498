package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/doc-query/models"
	"github.com/gabriel-vasile/mimetype"
)

// ErrNotRegularFile is returned by InspectFile for directories, sockets and
// other non-regular paths.
var ErrNotRegularFile = errors.New("not a regular file")

// InspectFile stats the file at path and sniffs its media type from content.
// A file whose type cannot be detected still yields a [models.PendingFile]
// with an empty MIME.
func InspectFile(path string) (models.PendingFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.PendingFile{}, fmt.Errorf("error reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return models.PendingFile{}, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	file := models.PendingFile{
		Name: filepath.Base(path),
		Path: path,
		Size: info.Size(),
	}

	if mtype, err := mimetype.DetectFile(path); err == nil {
		file.MIME = mtype.String()
	}

	return file, nil
}

// InspectDir inspects every regular file directly inside dir, sorted by name.
// Subdirectories are skipped.
func InspectDir(dir string) ([]models.PendingFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	files := make([]models.PendingFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		file, err := InspectFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
