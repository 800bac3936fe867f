// Package artwork materializes a local poster image for each catalog entry:
// remote poster art when the provider has one, otherwise a representative
// frame sampled from the video itself.
package artwork

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/foyerhq/foyer/internal/tmdb"
)

// Downloader is the provider surface needed for poster downloads.
// *tmdb.Client satisfies it.
type Downloader interface {
	GetConfiguration(ctx context.Context) (*tmdb.Configuration, error)
	DownloadImage(ctx context.Context, size, posterPath string) ([]byte, error)
}

// Resolver fetches or derives artwork files. Missing artwork is tolerated
// everywhere downstream, so both operations are best-effort.
type Resolver struct {
	client  Downloader
	ffmpeg  string
	timeout time.Duration
	log     *slog.Logger
}

// NewResolver creates an artwork resolver. An empty ffmpeg binary defaults to
// "ffmpeg" on PATH.
func NewResolver(client Downloader, ffmpeg string, timeout time.Duration, log *slog.Logger) *Resolver {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Resolver{
		client:  client,
		ffmpeg:  ffmpeg,
		timeout: timeout,
		log:     log.With("component", "artwork"),
	}
}

// Fetch downloads the remote poster at posterPath into localPath unless the
// file already exists. The download size comes from the provider
// configuration. On failure the local file is left absent so the caller can
// fall back to a frame grab.
func (r *Resolver) Fetch(ctx context.Context, posterPath, localPath string) error {
	if posterPath == "" {
		return fmt.Errorf("no remote poster path")
	}
	if _, err := os.Stat(localPath); err == nil {
		return nil
	}

	cfg, err := r.client.GetConfiguration(ctx)
	if err != nil {
		return fmt.Errorf("fetch image configuration: %w", err)
	}

	data, err := r.client.DownloadImage(ctx, cfg.PosterSize(), posterPath)
	if err != nil {
		return fmt.Errorf("download poster %s: %w", posterPath, err)
	}

	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		return fmt.Errorf("write poster to %s: %w", localPath, err)
	}
	r.log.Debug("poster downloaded", "path", localPath)
	return nil
}

// Grab extracts a single frame from the video at a heuristic timestamp and
// writes it to localPath.
func (r *Resolver) Grab(ctx context.Context, videoPath, localPath string, duration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	offset := GrabTimestamp(duration)
	cmd := exec.CommandContext(ctx, r.ffmpeg,
		"-ss", fmt.Sprintf("%.3f", offset.Seconds()),
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		localPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg frame grab %s: %w: %s", videoPath, err, output)
	}
	r.log.Debug("frame grabbed", "path", localPath, "offset", offset)
	return nil
}

// GrabTimestamp picks the sampling point for a frame grab: 30 seconds in for
// anything at least two minutes long, a quarter of the runtime for shorter
// clips.
func GrabTimestamp(duration time.Duration) time.Duration {
	if duration >= 2*time.Minute {
		return 30 * time.Second
	}
	return duration / 4
}
