// Package resume loads candidate resume files and extracts plain text from
// them locally, so a doomed upload of an unsupported format can be rejected
// before any network call and skills can be mined without the analyzer.
package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for anything other than pdf and docx.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// File is a resume loaded into memory, ready for upload or local parsing.
type File struct {
	Name    string
	Content []byte
}

// Load reads a resume from disk and validates its extension.
func Load(path string) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".docx" {
		return nil, ErrUnsupportedFormat
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume file %q: %w", path, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("resume file %q is empty", path)
	}

	return &File{
		Name:    filepath.Base(path),
		Content: data,
	}, nil
}
