// Package reconcile aligns the persisted catalog with the current contents
// of the library folder: stale records are deleted, newly discovered files
// are probed, enriched and inserted. Files already cataloged are left alone,
// so in-place modification of a file stays undetected; a changed file is
// only picked up when its path changes.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/foyerhq/foyer/internal/catalog"
	"github.com/foyerhq/foyer/internal/probe"
	"github.com/foyerhq/foyer/internal/resolve"
)

// Scanner lists candidate file names in the library folder.
type Scanner interface {
	List(dir string) []string
}

// Prober extracts technical metadata from a local file.
type Prober interface {
	Probe(ctx context.Context, path string) (probe.Result, error)
}

// Resolver enriches a file name with remote catalog metadata.
type Resolver interface {
	Resolve(ctx context.Context, fileName string, localRuntime time.Duration, embeddedLang string) resolve.Metadata
}

// Artwork materializes a local poster image.
type Artwork interface {
	Fetch(ctx context.Context, posterPath, localPath string) error
	Grab(ctx context.Context, videoPath, localPath string, duration time.Duration) error
}

// Store is the catalog surface the reconciler needs.
type Store interface {
	Paths() (map[string]bool, error)
	Insert(r *catalog.VideoRecord) error
	DeleteByPath(path string) error
}

// Stats summarizes one reconciliation pass.
type Stats struct {
	Scanned  int
	Inserted int
	Deleted  int
	Skipped  int
}

// Reconciler runs the diff-and-repair pass.
type Reconciler struct {
	scanner     Scanner
	prober      Prober
	resolver    Resolver
	artwork     Artwork
	store       Store
	libraryDir  string
	artworkDir  string
	concurrency int
	log         *slog.Logger
}

// New creates a reconciler. concurrency bounds how many files are enriched at
// once; values below one default to four.
func New(scanner Scanner, prober Prober, resolver Resolver, artwork Artwork, store Store, libraryDir, artworkDir string, concurrency int, log *slog.Logger) *Reconciler {
	if concurrency < 1 {
		concurrency = 4
	}
	return &Reconciler{
		scanner:     scanner,
		prober:      prober,
		resolver:    resolver,
		artwork:     artwork,
		store:       store,
		libraryDir:  libraryDir,
		artworkDir:  artworkDir,
		concurrency: concurrency,
		log:         log.With("component", "reconciler"),
	}
}

// Run performs one reconciliation pass and reports what it did. The pass is
// idempotent: a second run against an unchanged folder inserts and deletes
// nothing.
func (r *Reconciler) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	names := r.scanner.List(r.libraryDir)
	stats.Scanned = len(names)

	onDisk := make(map[string]bool, len(names))
	for _, name := range names {
		onDisk[filepath.Join(r.libraryDir, name)] = true
	}

	persisted, err := r.store.Paths()
	if err != nil {
		return stats, fmt.Errorf("load persisted paths: %w", err)
	}

	for path := range persisted {
		if onDisk[path] {
			continue
		}
		if err := r.store.DeleteByPath(path); err != nil {
			return stats, fmt.Errorf("delete stale record: %w", err)
		}
		r.log.Info("stale record removed", "path", path)
		stats.Deleted++
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, name := range names {
		name := name
		fullPath := filepath.Join(r.libraryDir, name)
		if persisted[fullPath] {
			continue
		}
		g.Go(func() error {
			inserted, err := r.admit(ctx, name, fullPath)
			if err != nil {
				return err
			}
			mu.Lock()
			if inserted {
				stats.Inserted++
			} else {
				stats.Skipped++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	r.log.Info("reconciliation complete",
		"scanned", stats.Scanned, "inserted", stats.Inserted,
		"deleted", stats.Deleted, "skipped", stats.Skipped)
	return stats, nil
}

// admit probes, enriches and inserts one newly discovered file. A probe
// failure skips the file; a duplicate path means another pass got there
// first and is not an error.
func (r *Reconciler) admit(ctx context.Context, name, fullPath string) (bool, error) {
	probed, err := r.prober.Probe(ctx, fullPath)
	if err != nil {
		r.log.Warn("probe failed, skipping file", "path", fullPath, "error", err)
		return false, nil
	}

	md := r.resolver.Resolve(ctx, name, probed.Duration, probed.Language)

	record := &catalog.VideoRecord{
		Language:         md.Language,
		Length:           probed.Length(),
		ImagePath:        r.imagePath(name),
		FullPath:         fullPath,
		FullSubPath:      catalog.SubtitlePath(fullPath),
		Title:            md.Title,
		Director:         md.Director,
		Year:             md.Year,
		Overview:         md.Overview,
		Genres:           md.Genres,
		PosterRemotePath: md.PosterRemotePath,
	}

	if err := r.artwork.Fetch(ctx, md.PosterRemotePath, record.ImagePath); err != nil {
		r.log.Debug("poster download failed, grabbing frame", "path", fullPath, "error", err)
		if err := r.artwork.Grab(ctx, fullPath, record.ImagePath, probed.Duration); err != nil {
			r.log.Warn("frame grab failed, entry will have no artwork", "path", fullPath, "error", err)
		}
	}

	if err := r.store.Insert(record); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("insert record for %s: %w", fullPath, err)
	}
	r.log.Info("file cataloged", "path", fullPath, "title", record.Title)
	return true, nil
}

func (r *Reconciler) imagePath(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(r.artworkDir, base+".jpg")
}
