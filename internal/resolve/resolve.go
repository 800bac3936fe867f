package resolve

import (
	"context"
	"log/slog"
	"time"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/foyerhq/foyer/internal/tmdb"
)

const (
	// runtimeTolerance is the maximum gap between a candidate's reported
	// runtime and the locally probed one for the candidate to be accepted.
	runtimeTolerance = time.Minute

	// similarityFloor is the Jaro-Winkler score below which a search result
	// is dropped before the per-candidate details fetch.
	similarityFloor = 0.70
)

// Metadata is the enrichment payload for one media file. The zero value is a
// valid "nothing resolved" placeholder.
type Metadata struct {
	Title            string
	Director         string
	Year             string
	Overview         string
	Genres           []string
	PosterRemotePath string
	Language         string
}

// Provider is the remote catalog surface the resolver consumes. *tmdb.Client
// satisfies it.
type Provider interface {
	SearchMovies(ctx context.Context, title string) ([]tmdb.SearchResult, error)
	SearchShows(ctx context.Context, title string) ([]tmdb.SearchResult, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.Details, error)
	ShowDetails(ctx context.Context, id int64) (*tmdb.Details, error)
	MovieCredits(ctx context.Context, id int64) ([]tmdb.CrewMember, error)
	ShowCredits(ctx context.Context, id int64) ([]tmdb.CrewMember, error)
}

// Resolver resolves file names to remote catalog metadata. Resolution is
// best-effort enrichment: every failure is logged and yields an empty field,
// never an error.
type Resolver struct {
	provider Provider
	log      *slog.Logger
}

// NewResolver creates a resolver backed by the given provider.
func NewResolver(provider Provider, log *slog.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		log:      log.With("component", "resolver"),
	}
}

// Resolve turns fileName into catalog metadata. localRuntime is the duration
// probed from the file itself; embeddedLang is the container's audio language
// code, empty when absent. The language field always carries a value: the
// embedded code's display name, else the remote original language's, else
// "N/A".
func (r *Resolver) Resolve(ctx context.Context, fileName string, localRuntime time.Duration, embeddedLang string) Metadata {
	show := IsShow(fileName)
	guess := GuessTitle(fileName)

	results, err := r.search(ctx, guess, show)
	if err != nil {
		r.log.Warn("search failed", "file", fileName, "guess", guess, "error", err)
		return Metadata{Language: displayLanguage(embeddedLang, "")}
	}
	if len(results) == 0 {
		r.log.Info("no search results", "file", fileName, "guess", guess)
		return Metadata{Language: displayLanguage(embeddedLang, "")}
	}

	picked := r.pickByRuntime(ctx, guess, results, show, localRuntime)
	if picked == nil {
		r.log.Info("no candidate within runtime tolerance",
			"file", fileName, "guess", guess, "candidates", len(results))
		return Metadata{Language: displayLanguage(embeddedLang, "")}
	}

	return Metadata{
		Title:            picked.Title(show),
		Director:         r.crewName(ctx, picked.ID, show),
		Year:             picked.Year(show),
		Overview:         picked.Overview,
		Genres:           tmdb.GenreNames(picked.GenreIDs, show),
		PosterRemotePath: picked.PosterPath,
		Language:         displayLanguage(embeddedLang, picked.OriginalLanguage),
	}
}

func (r *Resolver) search(ctx context.Context, guess string, show bool) ([]tmdb.SearchResult, error) {
	if show {
		return r.provider.SearchShows(ctx, guess)
	}
	return r.provider.SearchMovies(ctx, guess)
}

// pickByRuntime fetches details for each candidate in order and accepts the
// first one whose reported runtime is within tolerance of the local one. A
// fuzzy title pre-filter bounds the number of detail fetches; it preserves
// the provider's result order and falls back to the full list when nothing
// clears the floor.
func (r *Resolver) pickByRuntime(ctx context.Context, guess string, results []tmdb.SearchResult, show bool, localRuntime time.Duration) *tmdb.SearchResult {
	candidates := filterBySimilarity(guess, results, show)

	for i := range candidates {
		candidate := &candidates[i]

		details, err := r.details(ctx, candidate.ID, show)
		if err != nil {
			r.log.Debug("details fetch failed", "id", candidate.ID, "error", err)
			continue
		}

		reported := time.Duration(details.RuntimeMinutes(show)) * time.Minute
		diff := reported - localRuntime
		if diff < 0 {
			diff = -diff
		}
		if diff <= runtimeTolerance {
			return candidate
		}
	}
	return nil
}

func (r *Resolver) details(ctx context.Context, id int64, show bool) (*tmdb.Details, error) {
	if show {
		return r.provider.ShowDetails(ctx, id)
	}
	return r.provider.MovieDetails(ctx, id)
}

// crewName fetches credits and returns the first crew member holding the
// relevant job: Director for movies, Producer for shows. Absence yields "".
func (r *Resolver) crewName(ctx context.Context, id int64, show bool) string {
	job := "Director"
	fetch := r.provider.MovieCredits
	if show {
		job = "Producer"
		fetch = r.provider.ShowCredits
	}

	crew, err := fetch(ctx, id)
	if err != nil {
		r.log.Debug("credits fetch failed", "id", id, "error", err)
		return ""
	}
	for _, member := range crew {
		if member.Job == job {
			return member.Name
		}
	}
	return ""
}

// filterBySimilarity keeps results whose normalized title scores at least
// similarityFloor against the guess, in provider order. All results survive
// when none do.
func filterBySimilarity(guess string, results []tmdb.SearchResult, show bool) []tmdb.SearchResult {
	normalized := normalizeTitle(guess)

	var kept []tmdb.SearchResult
	for _, result := range results {
		score := float64(edlib.JaroWinklerSimilarity(normalized, normalizeTitle(result.Title(show))))
		if score >= similarityFloor {
			kept = append(kept, result)
		}
	}
	if len(kept) == 0 {
		return results
	}
	return kept
}

// displayLanguage applies the language precedence rule: the embedded code
// wins over the remote one; an unparseable or absent code falls through; no
// usable code at all yields "N/A".
func displayLanguage(embedded, remote string) string {
	for _, code := range []string{embedded, remote} {
		if code == "" {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	return "N/A"
}
