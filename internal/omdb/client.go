// Package omdb resolves a movie title to descriptive metadata via the OMDb
// HTTP API.
package omdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movieweb/pkg/utils"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var (
	// ErrMovieNotFound means the service explicitly reported the title as
	// unknown. Callers should ask the user to retry with different input.
	ErrMovieNotFound = errors.New("movie metadata not found")

	// ErrServiceUnavailable covers transport and protocol failures: timeout,
	// non-2xx status, malformed body, or an open circuit. Callers should
	// retry later or show a generic error. The two conditions must not be
	// collapsed.
	ErrServiceUnavailable = errors.New("metadata service unavailable")
)

type Metadata struct {
	Title    string
	Director string
	Year     int
	Rating   float64
}

// lookupResponse mirrors the OMDb payload. All values arrive as strings.
type lookupResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	IMDbRating string `json:"imdbRating"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

type Client struct {
	apiURL string
	apiKey string
	client *http.Client
	cb     *gobreaker.CircuitBreaker[*Metadata]
	log    *zap.Logger
}

// NewClient builds the lookup client. The HTTP client carries an explicit
// timeout so a hung lookup can never block a request indefinitely. The
// circuit breaker opens after repeated transport failures; a "not found"
// answer from the service counts as success.
func NewClient(cfg utils.OMDBConfig, log *zap.Logger) *Client {
	c := &Client{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With(zap.String("client", "omdb")),
	}

	c.cb = gobreaker.NewCircuitBreaker[*Metadata](gobreaker.Settings{
		Name:        "omdb-api",
		MaxRequests: 2,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMovieNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("Circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return c
}

// Lookup resolves a free-text title. Outcomes: metadata, ErrMovieNotFound,
// or ErrServiceUnavailable. No retries are performed.
func (c *Client) Lookup(ctx context.Context, title string) (*Metadata, error) {
	meta, err := c.cb.Execute(func() (*Metadata, error) {
		return c.lookup(ctx, title)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.log.Warn("Lookup rejected by open circuit", zap.String("title", title))
		return nil, fmt.Errorf("%w: circuit open", ErrServiceUnavailable)
	}
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (c *Client) lookup(ctx context.Context, title string) (*Metadata, error) {
	query := url.Values{}
	query.Set("t", title)
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Lookup request failed", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Lookup returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Error("Lookup returned malformed body", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if body.Response == "False" {
		c.log.Info("Movie not found by metadata service",
			zap.String("title", title),
			zap.String("error", body.Error),
		)
		return nil, fmt.Errorf("%w: %s", ErrMovieNotFound, title)
	}

	return &Metadata{
		Title:    body.Title,
		Director: body.Director,
		Year:     parseYear(body.Year),
		Rating:   parseRating(body.IMDbRating),
	}, nil
}

// parseYear handles values like "2010" and series ranges like "2010-2014".
func parseYear(value string) int {
	if len(value) > 4 {
		value = value[:4]
	}
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return year
}

func parseRating(value string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return rating
}
