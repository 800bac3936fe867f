// Package probe extracts container-level technical metadata from media files
// by shelling out to ffprobe.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Result holds the technical metadata the pipeline needs: total duration and
// the language code of the first audio track (empty when the container does
// not carry one).
type Result struct {
	Duration time.Duration
	Language string // ISO code as stored in the container, e.g. "fra"
}

// Length formats the duration in the catalog's length format.
func (r Result) Length() string {
	return FormatLength(r.Duration)
}

// Prober runs ffprobe against local files.
type Prober struct {
	binary  string
	timeout time.Duration
}

// NewProber creates a prober. An empty binary defaults to "ffprobe" on PATH.
func NewProber(binary string, timeout time.Duration) *Prober {
	if binary == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Prober{binary: binary, timeout: timeout}
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string            `json:"codec_type"`
		Tags      map[string]string `json:"tags"`
	} `json:"streams"`
}

// Probe extracts duration and audio language from the file at path.
// A corrupt or unsupported file yields an error; callers skip the file and
// continue.
func (p *Prober) Probe(ctx context.Context, path string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var parsed probeOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return Result{}, fmt.Errorf("parse ffprobe output for %s: %w", path, err)
	}

	seconds, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil || seconds <= 0 {
		return Result{}, fmt.Errorf("no duration reported for %s", path)
	}

	res := Result{Duration: time.Duration(seconds * float64(time.Second))}
	for _, stream := range parsed.Streams {
		if stream.CodecType != "audio" {
			continue
		}
		res.Language = stream.Tags["language"]
		break
	}
	return res, nil
}

// FormatLength renders a duration as "HH:MM:SS.ffffff", the format stored in
// the catalog length column.
func FormatLength(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Seconds()
	hours := int(total) / 3600
	minutes := (int(total) % 3600) / 60
	seconds := total - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%09.6f", hours, minutes, seconds)
}
