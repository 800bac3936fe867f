// Package catalog manages the persisted set of discovered local videos.
package catalog

import (
	"path/filepath"
	"strings"
	"time"
)

// genreSeparator joins the genre list for storage in a single column.
const genreSeparator = "|"

// VideoRecord is one playable file in the catalog.
// FullPath is the natural key: records are diffed and deleted by it and it is
// unique across the catalog. Records are never updated in place; a changed
// file is modeled as delete + insert.
type VideoRecord struct {
	ID               int64
	Language         string // display name, e.g. "French"
	Length           string // "HH:MM:SS[.ffffff]"
	ImagePath        string // local artwork file, may not exist
	FullPath         string // absolute media file path, unique
	FullSubPath      string // derived sidecar path, same basename + ".srt"
	Title            string
	Director         string // director for movies, producer for shows
	Year             string
	Overview         string
	Genres           []string
	PosterRemotePath string
	AddedAt          time.Time
}

// SubtitlePath derives the sidecar subtitle path for a media file.
func SubtitlePath(mediaPath string) string {
	ext := filepath.Ext(mediaPath)
	return strings.TrimSuffix(mediaPath, ext) + ".srt"
}

// LengthSeconds parses the stored length into whole seconds.
// Returns 0 on malformed input.
func (r *VideoRecord) LengthSeconds() int {
	parts := strings.SplitN(r.Length, ":", 3)
	if len(parts) != 3 {
		return 0
	}
	var h, m int
	var s float64
	h = atoi(parts[0])
	m = atoi(parts[1])
	if idx := strings.IndexByte(parts[2], '.'); idx >= 0 {
		s = float64(atoi(parts[2][:idx]))
	} else {
		s = float64(atoi(parts[2]))
	}
	return h*3600 + m*60 + int(s)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
