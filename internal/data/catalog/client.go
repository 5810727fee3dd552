package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moview-api/pkg/utils"

	"go.uber.org/zap"
)

// ErrMovieNotFound is returned when the upstream catalog has no movie for the ID
var ErrMovieNotFound = errors.New("movie not found")

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is the normalized catalog shape. List endpoints carry GenreIDs,
// the detail endpoint carries full Genre objects.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	PosterURL    string  `json:"poster_url,omitempty"`
	BackdropURL  string  `json:"backdrop_url,omitempty"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	ReleaseDate  string  `json:"release_date"`
	Adult        bool    `json:"adult"`
}

type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Client talks to the TMDB HTTP API
type Client struct {
	config utils.TMDBConfig
	http   *http.Client
	log    *zap.Logger
}

func NewClient(config utils.TMDBConfig, log *zap.Logger) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		http:   &http.Client{Timeout: timeout},
		log:    log.With(zap.String("catalog", "tmdb")),
	}
}

// Popular fetches a page of popular movies, 1-based
func (c *Client) Popular(ctx context.Context, page int) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	var result Page
	if err := c.get(ctx, "/movie/popular", params, &result); err != nil {
		return nil, fmt.Errorf("fetch popular movies page %d: %w", page, err)
	}

	for i := range result.Results {
		c.deriveImageURLs(&result.Results[i])
	}

	return &result, nil
}

// Search searches movies by title
func (c *Client) Search(ctx context.Context, query string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	var result Page
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, fmt.Errorf("search movies %q page %d: %w", query, page, err)
	}

	for i := range result.Results {
		c.deriveImageURLs(&result.Results[i])
	}

	return &result, nil
}

// Details fetches a single movie by its catalog ID
func (c *Client) Details(ctx context.Context, movieID int64) (*Movie, error) {
	var result Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), url.Values{}, &result); err != nil {
		return nil, fmt.Errorf("fetch movie %d details: %w", movieID, err)
	}

	c.deriveImageURLs(&result)

	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.config.APIKey)
	params.Set("language", "en-US")

	reqURL := c.config.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Catalog request failed",
			zap.Error(err),
			zap.String("path", path),
		)
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrMovieNotFound
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Catalog returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
		return fmt.Errorf("catalog status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	return nil
}

func (c *Client) deriveImageURLs(movie *Movie) {
	if movie.PosterPath != "" {
		movie.PosterURL = c.config.PosterBaseURL + movie.PosterPath
	}
	if movie.BackdropPath != "" {
		movie.BackdropURL = c.config.BackdropBaseURL + movie.BackdropPath
	}
}
