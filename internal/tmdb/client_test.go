package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "Solo A Star", r.URL.Query().Get("query"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		resp := searchResponse{Results: []SearchResult{{
			ID:               348350,
			OriginalTitle:    "Solo: A Star Wars Story",
			Overview:         "A galaxy far, far away...",
			ReleaseDate:      "2018-05-15",
			PosterPath:       "/4oD6VEccFkorEBTEDXtpLAaz0Rl.jpg",
			OriginalLanguage: "en",
			GenreIDs:         []int{28, 12, 878},
		}}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	results, err := client.SearchMovies(context.Background(), "Solo A Star")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Solo: A Star Wars Story", results[0].Title(false))
	assert.Equal(t, "2018", results[0].Year(false))
}

func TestClient_SearchShows_FieldNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/tv", r.URL.Path)
		_, _ = w.Write([]byte(`{"results":[{"id":1396,"original_name":"Breaking Bad","first_air_date":"2008-01-20","genre_ids":[18,80]}]}`))
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	results, err := client.SearchShows(context.Background(), "Breaking Bad")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Breaking Bad", results[0].Title(true))
	assert.Equal(t, "2008", results[0].Year(true))
}

func TestClient_MovieDetails_Runtime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/348350", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":348350,"runtime":135,"original_language":"en"}`))
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	details, err := client.MovieDetails(context.Background(), 348350)
	require.NoError(t, err)
	assert.Equal(t, 135, details.RuntimeMinutes(false))
}

func TestClient_ShowDetails_EpisodeRuntime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1396,"episode_run_time":[47,60]}`))
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	details, err := client.ShowDetails(context.Background(), 1396)
	require.NoError(t, err)
	assert.Equal(t, 47, details.RuntimeMinutes(true))
}

func TestClient_MovieCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/348350/credits", r.URL.Path)
		_, _ = w.Write([]byte(`{"crew":[{"name":"Bradford Young","job":"Director of Photography"},{"name":"Ron Howard","job":"Director"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	crew, err := client.MovieCredits(context.Background(), 348350)
	require.NoError(t, err)
	require.Len(t, crew, 2)
	assert.Equal(t, "Ron Howard", crew[1].Name)
	assert.Equal(t, "Director", crew[1].Job)
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	_, err := client.MovieDetails(context.Background(), 99999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_GetConfiguration_Cached(t *testing.T) {
	callCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		_, _ = w.Write([]byte(`{"images":{"secure_base_url":"https://image.tmdb.org/t/p/","poster_sizes":["w92","w154","w342","w500","w780","original"]}}`))
	}))
	defer server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL))

	cfg, err := client.GetConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "w780", cfg.PosterSize())

	_, err = client.GetConfiguration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, callCount, "should use cache, not call API again")
}

func TestClient_DownloadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w780/abc.jpg", r.URL.Path)
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	client := NewClient("test-token", WithImageURL(server.URL))

	data, err := client.DownloadImage(context.Background(), "w780", "/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestConfiguration_PosterSize_Fallbacks(t *testing.T) {
	var cfg Configuration
	assert.Equal(t, "original", cfg.PosterSize())

	cfg.Images.PosterSizes = []string{"w500"}
	assert.Equal(t, "w500", cfg.PosterSize())
}

func TestGenreNames(t *testing.T) {
	assert.Equal(t, []string{"Action", "Adventure", "Science Fiction"}, GenreNames([]int{28, 12, 878}, false))
	assert.Equal(t, []string{"Action & Adventure", "Drama"}, GenreNames([]int{10759, 18}, true))
	// Unknown ids are dropped, not errors.
	assert.Equal(t, []string{"Drama"}, GenreNames([]int{18, 424242}, false))
}
