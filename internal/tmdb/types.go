// Package tmdb provides a client for The Movie Database API.
package tmdb

// SearchResult is one candidate returned by the search endpoints. Movie and
// show payloads use different field names for title and release date; both
// are decoded so callers pick by kind.
type SearchResult struct {
	ID               int64   `json:"id"`
	OriginalTitle    string  `json:"original_title"` // movies
	OriginalName     string  `json:"original_name"`  // shows
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`   // movies, "2018-05-15"
	FirstAirDate     string  `json:"first_air_date"` // shows
	PosterPath       string  `json:"poster_path"`    // "/abc123.jpg"
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
	VoteAverage      float64 `json:"vote_average"`
}

// Title returns the original title for the given media kind.
func (r *SearchResult) Title(show bool) string {
	if show {
		return r.OriginalName
	}
	return r.OriginalTitle
}

// Year extracts the release year for the given media kind.
func (r *SearchResult) Year(show bool) string {
	date := r.ReleaseDate
	if show {
		date = r.FirstAirDate
	}
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Details is the full record for a single movie or show. Only the fields the
// resolver needs are decoded; shows report per-episode runtimes.
type Details struct {
	ID              int64  `json:"id"`
	Runtime         int    `json:"runtime"`          // movies, minutes
	EpisodeRunTimes []int  `json:"episode_run_time"` // shows, minutes
	OriginalLang    string `json:"original_language"`
}

// RuntimeMinutes returns the reported runtime for the given media kind, 0
// when the provider has none.
func (d *Details) RuntimeMinutes(show bool) int {
	if !show {
		return d.Runtime
	}
	if len(d.EpisodeRunTimes) == 0 {
		return 0
	}
	return d.EpisodeRunTimes[0]
}

// CrewMember is one entry in a credits response.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type creditsResponse struct {
	Crew []CrewMember `json:"crew"`
}

// Configuration carries the image-serving settings from the global
// configuration endpoint.
type Configuration struct {
	Images struct {
		SecureBaseURL string   `json:"secure_base_url"`
		PosterSizes   []string `json:"poster_sizes"`
	} `json:"images"`
}

// PosterSize picks the download size: the second largest configured size,
// falling back to "original".
func (c *Configuration) PosterSize() string {
	sizes := c.Images.PosterSizes
	if len(sizes) >= 2 {
		return sizes[len(sizes)-2]
	}
	if len(sizes) == 1 {
		return sizes[0]
	}
	return "original"
}

// MovieGenres maps TMDB movie genre ids to display names.
var MovieGenres = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// ShowGenres maps TMDB TV genre ids to display names. The TV table shares
// some ids with the movie table but is a distinct code space.
var ShowGenres = map[int]string{
	10759: "Action & Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	10762: "Kids",
	9648:  "Mystery",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
	37:    "Western",
}

// GenreNames resolves genre ids against the table for the given media kind,
// preserving order and dropping unknown ids.
func GenreNames(ids []int, show bool) []string {
	table := MovieGenres
	if show {
		table = ShowGenres
	}
	var names []string
	for _, id := range ids {
		if name, ok := table[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
