package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultImageURL = "https://image.tmdb.org/t/p"
	defaultTimeout  = 10 * time.Second
	configTTL       = 24 * time.Hour
)

// ErrNotFound is returned when the API reports no such resource.
var ErrNotFound = errors.New("not found")

// Client is a TMDB API client authenticating with a bearer token.
type Client struct {
	token      string
	baseURL    string
	imageURL   string
	httpClient *http.Client

	mu           sync.Mutex
	config       *Configuration
	configLoaded time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithImageURL sets a custom image base URL (for testing).
func WithImageURL(url string) Option {
	return func(c *Client) {
		c.imageURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every API call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new TMDB client.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:    token,
		baseURL:  defaultBaseURL,
		imageURL: defaultImageURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) search(ctx context.Context, kind, title string) ([]SearchResult, error) {
	query := url.Values{}
	query.Set("query", title)
	query.Set("include_adult", "false")
	query.Set("language", "en-US")
	query.Set("page", "1")

	var resp searchResponse
	if err := c.get(ctx, "/3/search/"+kind, query, &resp); err != nil {
		return nil, fmt.Errorf("search %s: %w", kind, err)
	}
	return resp.Results, nil
}

// SearchMovies searches the movie catalog by title.
func (c *Client) SearchMovies(ctx context.Context, title string) ([]SearchResult, error) {
	return c.search(ctx, "movie", title)
}

// SearchShows searches the TV catalog by title.
func (c *Client) SearchShows(ctx context.Context, title string) ([]SearchResult, error) {
	return c.search(ctx, "tv", title)
}

// MovieDetails fetches the full movie record by id.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*Details, error) {
	var d Details
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", id), nil, &d); err != nil {
		return nil, fmt.Errorf("movie details %d: %w", id, err)
	}
	return &d, nil
}

// ShowDetails fetches the full show record by id.
func (c *Client) ShowDetails(ctx context.Context, id int64) (*Details, error) {
	var d Details
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", id), nil, &d); err != nil {
		return nil, fmt.Errorf("show details %d: %w", id, err)
	}
	return &d, nil
}

func (c *Client) credits(ctx context.Context, kind string, id int64) ([]CrewMember, error) {
	query := url.Values{}
	query.Set("language", "en-US")

	var resp creditsResponse
	if err := c.get(ctx, fmt.Sprintf("/3/%s/%d/credits", kind, id), query, &resp); err != nil {
		return nil, fmt.Errorf("%s credits %d: %w", kind, id, err)
	}
	return resp.Crew, nil
}

// MovieCredits fetches the crew list for a movie.
func (c *Client) MovieCredits(ctx context.Context, id int64) ([]CrewMember, error) {
	return c.credits(ctx, "movie", id)
}

// ShowCredits fetches the crew list for a show.
func (c *Client) ShowCredits(ctx context.Context, id int64) ([]CrewMember, error) {
	return c.credits(ctx, "tv", id)
}

// GetConfiguration fetches the global image configuration. The result is
// cached in memory; the endpoint changes rarely.
func (c *Client) GetConfiguration(ctx context.Context) (*Configuration, error) {
	c.mu.Lock()
	if c.config != nil && time.Since(c.configLoaded) < configTTL {
		cfg := c.config
		c.mu.Unlock()
		return cfg, nil
	}
	c.mu.Unlock()

	var cfg Configuration
	if err := c.get(ctx, "/3/configuration", nil, &cfg); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	c.mu.Lock()
	c.config = &cfg
	c.configLoaded = time.Now()
	c.mu.Unlock()
	return &cfg, nil
}

// DownloadImage fetches the image at posterPath in the given size and returns
// its bytes. posterPath is the provider-relative path, e.g. "/abc123.jpg".
func (c *Client) DownloadImage(ctx context.Context, size, posterPath string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.imageURL+"/"+size+posterPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download error: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
