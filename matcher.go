package unstyle

import (
	"path/filepath"
	"strings"
)

// FileCategory classifies a file by its extension.
type FileCategory int

const (
	// CategoryUnrecognized is any file the tool does not operate on.
	CategoryUnrecognized FileCategory = iota
	// CategoryMarkup covers .html and .htm files, subject to class stripping.
	CategoryMarkup
	// CategoryStylesheet covers .css and .scss files, subject to clearing.
	CategoryStylesheet
)

// String returns a short human-readable name for the category.
func (c FileCategory) String() string {
	switch c {
	case CategoryMarkup:
		return "markup"
	case CategoryStylesheet:
		return "stylesheet"
	default:
		return "unrecognized"
	}
}

// CategorySet is the set of categories a scan should collect.
type CategorySet map[FileCategory]bool

// Classify maps a path to its FileCategory based on the extension,
// case-insensitively. Unknown extensions map to CategoryUnrecognized.
func Classify(path string) FileCategory {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return CategoryMarkup
	case ".css", ".scss":
		return CategoryStylesheet
	default:
		return CategoryUnrecognized
	}
}
