package reconcile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyerhq/foyer/internal/catalog"
	"github.com/foyerhq/foyer/internal/probe"
	"github.com/foyerhq/foyer/internal/resolve"
)

type fakeScanner struct {
	names []string
}

func (f *fakeScanner) List(_ string) []string { return f.names }

type fakeProber struct {
	failFor map[string]bool
}

func (f *fakeProber) Probe(_ context.Context, path string) (probe.Result, error) {
	if f.failFor[filepath.Base(path)] {
		return probe.Result{}, errors.New("corrupt container")
	}
	return probe.Result{Duration: 105 * time.Minute, Language: "fra"}, nil
}

type fakeResolver struct{}

func (f *fakeResolver) Resolve(_ context.Context, fileName string, _ time.Duration, _ string) resolve.Metadata {
	return resolve.Metadata{
		Title:            resolve.GuessTitle(fileName),
		Language:         "French",
		PosterRemotePath: "/poster.jpg",
	}
}

type fakeArtwork struct {
	fetchErr error

	mu        sync.Mutex
	grabCalls int
}

func (f *fakeArtwork) Fetch(_ context.Context, _, _ string) error { return f.fetchErr }

func (f *fakeArtwork) Grab(_ context.Context, _, _ string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grabCalls++
	return nil
}

type fakeStore struct {
	mu      sync.Mutex
	records map[string]*catalog.VideoRecord
}

func newFakeStore(paths ...string) *fakeStore {
	s := &fakeStore{records: make(map[string]*catalog.VideoRecord)}
	for _, p := range paths {
		s.records[p] = &catalog.VideoRecord{FullPath: p}
	}
	return s
}

func (s *fakeStore) Paths() (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make(map[string]bool, len(s.records))
	for p := range s.records {
		paths[p] = true
	}
	return paths, nil
}

func (s *fakeStore) Insert(r *catalog.VideoRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[r.FullPath]; ok {
		return catalog.ErrDuplicate
	}
	s.records[r.FullPath] = r
	return nil
}

func (s *fakeStore) DeleteByPath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, path)
	return nil
}

func (s *fakeStore) paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for p := range s.records {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func newTestReconciler(scanner Scanner, prober Prober, store Store, art Artwork) *Reconciler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(scanner, prober, &fakeResolver{}, art, store, "/library", "/artwork", 2, log)
}

func TestReconciler_DiffCorrectness(t *testing.T) {
	// Catalog holds A and B, disk holds B and C: A is deleted, C inserted,
	// B untouched.
	store := newFakeStore("/library/A.mkv", "/library/B.mkv")
	scanner := &fakeScanner{names: []string{"B.mkv", "C.mkv"}}

	stats, err := newTestReconciler(scanner, &fakeProber{}, store, &fakeArtwork{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Stats{Scanned: 2, Inserted: 1, Deleted: 1}, stats)
	assert.Equal(t, []string{"/library/B.mkv", "/library/C.mkv"}, store.paths())
}

func TestReconciler_Idempotent(t *testing.T) {
	store := newFakeStore()
	scanner := &fakeScanner{names: []string{"A.mkv", "B.mkv"}}
	rec := newTestReconciler(scanner, &fakeProber{}, store, &fakeArtwork{})

	first, err := rec.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	second, err := rec.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 0, second.Deleted)
}

func TestReconciler_ProbeFailureSkipsFile(t *testing.T) {
	store := newFakeStore()
	scanner := &fakeScanner{names: []string{"good.mkv", "bad.mkv"}}
	prober := &fakeProber{failFor: map[string]bool{"bad.mkv": true}}

	stats, err := newTestReconciler(scanner, prober, store, &fakeArtwork{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, []string{"/library/good.mkv"}, store.paths())
}

func TestReconciler_PosterFailureFallsBackToFrameGrab(t *testing.T) {
	store := newFakeStore()
	scanner := &fakeScanner{names: []string{"A.mkv"}}
	art := &fakeArtwork{fetchErr: errors.New("404")}

	stats, err := newTestReconciler(scanner, &fakeProber{}, store, art).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 1, art.grabCalls)
}

func TestReconciler_RecordFields(t *testing.T) {
	store := newFakeStore()
	scanner := &fakeScanner{names: []string{"Some.Movie.mkv"}}

	_, err := newTestReconciler(scanner, &fakeProber{}, store, &fakeArtwork{}).Run(context.Background())
	require.NoError(t, err)

	rec := store.records["/library/Some.Movie.mkv"]
	require.NotNil(t, rec)
	assert.Equal(t, "Some Movie Mkv", rec.Title)
	assert.Equal(t, "01:45:00.000000", rec.Length)
	assert.Equal(t, "/library/Some.Movie.srt", rec.FullSubPath)
	assert.Equal(t, filepath.Join("/artwork", "Some.Movie.jpg"), rec.ImagePath)
	assert.Equal(t, "French", rec.Language)
}
