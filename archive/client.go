package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response ends up in an APIError
const maxErrorBody = 512

// SearchFields are the document fields requested on data queries
var SearchFields = []string{"identifier", "title", "year", "creator", "collection", "description", "subject"}

// Client talks to the Internet Archive advanced search endpoint
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a new search client
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    o.baseURL,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(o.rateLimit), 1),
		logger:     logger,
	}
}

// Count returns the number of documents matching query
func (c *Client) Count(ctx context.Context, query string) (int, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("rows", "1")
	params.Set("output", "json")

	resp, err := c.search(ctx, params)
	if err != nil {
		return 0, err
	}

	if resp.Response == nil || resp.Response.NumFound == nil {
		return 0, ErrMissingField
	}

	c.logger.Debug().
		Str("query", query).
		Int("num_found", *resp.Response.NumFound).
		Msg("Counted matching items")

	return *resp.Response.NumFound, nil
}

// Fetch returns one page of randomly ordered documents
func (c *Client) Fetch(ctx context.Context, query string, page, rows int) ([]Magazine, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	params := url.Values{}
	params.Set("q", query)
	for _, field := range SearchFields {
		params.Add("fl[]", field)
	}
	params.Set("rows", strconv.Itoa(rows))
	params.Set("page", strconv.Itoa(page))
	params.Set("sort[]", "random")
	params.Set("output", "json")

	resp, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	if resp.Response == nil {
		return nil, nil
	}

	c.logger.Debug().
		Int("page", page).
		Int("rows", rows).
		Int("count", len(resp.Response.Docs)).
		Msg("Fetched search page")

	return resp.Response.Docs, nil
}

// search performs a GET against the search endpoint and decodes the envelope
func (c *Client) search(ctx context.Context, params url.Values) (*searchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	requestURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Trace().Str("url", requestURL).Msg("Making search request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
