package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrUpstream wraps every catalog failure: network faults, non-2xx statuses,
// undecodable bodies. Handlers log the wrapped detail and return a generic
// message to clients.
var ErrUpstream = errors.New("movie catalog unavailable")

// Movie is the stable internal shape of a catalog entry.
type Movie struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Overview string `json:"overview"`
	Year     string `json:"year,omitempty"`
	Poster   string `json:"poster,omitempty"`
}

// Client talks to the remote movie catalog service.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
	logger       *logrus.Logger
}

func NewClient(baseURL, imageBaseURL, apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

// upstreamMovie mirrors the catalog's own JSON schema.
type upstreamMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

type upstreamList struct {
	Results []upstreamMovie `json:"results"`
}

// Search queries the catalog for movies matching the term.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	var payload upstreamList
	params := url.Values{"query": {query}}
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return c.reshapeAll(payload.Results), nil
}

// Trending returns the catalog's weekly trending movies.
func (c *Client) Trending(ctx context.Context) ([]Movie, error) {
	var payload upstreamList
	if err := c.get(ctx, "/trending/movie/week", nil, &payload); err != nil {
		return nil, err
	}
	return c.reshapeAll(payload.Results), nil
}

// Details fetches a single movie by its catalog id.
func (c *Client) Details(ctx context.Context, id int64) (*Movie, error) {
	var payload upstreamMovie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	movie := c.reshape(payload)
	return &movie, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("catalog request %s failed: %v", path, err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warnf("catalog request %s returned status %d", path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warnf("catalog request %s returned malformed body: %v", path, err)
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

func (c *Client) reshapeAll(items []upstreamMovie) []Movie {
	movies := make([]Movie, len(items))
	for i := range items {
		movies[i] = c.reshape(items[i])
	}
	return movies
}

func (c *Client) reshape(item upstreamMovie) Movie {
	movie := Movie{
		ID:       item.ID,
		Title:    item.Title,
		Overview: item.Overview,
	}
	if item.ReleaseDate != "" {
		movie.Year, _, _ = strings.Cut(item.ReleaseDate, "-")
	}
	if item.PosterPath != "" {
		movie.Poster = c.imageBaseURL + "/" + strings.TrimLeft(item.PosterPath, "/")
	}
	return movie
}
