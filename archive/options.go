package archive

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the advanced search endpoint
	DefaultBaseURL = "https://archive.org/advancedsearch.php"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 30 * time.Second
	// DefaultRateLimit is the minimum spacing between two requests
	DefaultRateLimit = time.Second
	// DefaultUserAgent identifies the client to archive.org
	DefaultUserAgent = "magroulette (+https://github.com/s0up4200/magroulette)"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	rateLimit  time.Duration
	userAgent  string
	httpClient *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		rateLimit: DefaultRateLimit,
		userAgent: DefaultUserAgent,
	}
}

// WithBaseURL points the client at a different search endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRateLimit sets the minimum interval between requests.
// Zero disables pacing.
func WithRateLimit(interval time.Duration) Option {
	return func(o *clientOptions) {
		if interval >= 0 {
			o.rateLimit = interval
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its timeout wins
// over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
