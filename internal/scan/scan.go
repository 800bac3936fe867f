// Package scan lists playable files in the configured library folder.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Filter selects regular files by extension.
type Filter struct {
	extensions map[string]bool
	log        *slog.Logger
}

// NewFilter creates a filter from the accepted extension list.
// Extensions are matched case-insensitively, with or without a leading dot.
func NewFilter(extensions []string, log *slog.Logger) *Filter {
	if log == nil {
		log = slog.Default()
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &Filter{extensions: set, log: log}
}

// List returns the names of regular files in dir whose extension is accepted,
// in directory order. A missing directory is recoverable: it is logged and an
// empty list is returned.
func (f *Filter) List(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		f.log.Warn("library folder not readable", "dir", dir, "error", err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if f.Accepts(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Accepts reports whether the file name has an accepted extension.
func (f *Filter) Accepts(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	return f.extensions[ext]
}
