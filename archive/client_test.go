package archive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(zerolog.Nop(), WithBaseURL(server.URL), WithRateLimit(0))
}

func TestCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, BaseQuery+" AND collection:popsci", q.Get("q"))
		assert.Equal(t, "1", q.Get("rows"))
		assert.Equal(t, "json", q.Get("output"))
		assert.Empty(t, q["fl[]"])
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		fmt.Fprint(w, `{"responseHeader":{"status":0},"response":{"numFound":4321,"start":0,"docs":[{"identifier":"x"}]}}`)
	})

	total, err := client.Count(context.Background(), BuildQuery(Filters{Collection: "popsci"}))
	require.NoError(t, err)
	assert.Equal(t, 4321, total)
}

func TestCountZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"numFound":0,"start":0,"docs":[]}}`)
	})

	total, err := client.Count(context.Background(), BaseQuery)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCountMissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no response object", body: `{"error":"bad query"}`},
		{name: "no numFound", body: `{"response":{"docs":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			total, err := client.Count(context.Background(), BaseQuery)
			require.ErrorIs(t, err, ErrMissingField)
			assert.Zero(t, total)
		})
	}
}

func TestFetch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, SearchFields, q["fl[]"])
		assert.Equal(t, []string{"random"}, q["sort[]"])
		assert.Equal(t, "50", q.Get("rows"))
		assert.Equal(t, "3", q.Get("page"))
		assert.Equal(t, "json", q.Get("output"))

		fmt.Fprint(w, `{"response":{"numFound":2,"docs":[
			{"identifier":"popsci-1975-01","title":"Popular Science","year":"1975","collection":["popsci","magazine_rack"]},
			{"identifier":"wired-1993","title":"Wired","subject":"technology"}
		]}}`)
	})

	docs, err := client.Fetch(context.Background(), BaseQuery, 3, 50)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "popsci-1975-01", docs[0].Identifier)
	assert.Equal(t, List{"popsci", "magazine_rack"}, docs[0].Collection)
	assert.Equal(t, List{"technology"}, docs[1].Subject)
}

func TestFetchWithoutDocs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	docs, err := client.Fetch(context.Background(), BaseQuery, 1, 100)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFetchInvalidPage(t *testing.T) {
	client := NewClient(zerolog.Nop(), WithBaseURL("http://127.0.0.1:1"), WithRateLimit(0))

	_, err := client.Fetch(context.Background(), BaseQuery, 0, 100)
	require.ErrorIs(t, err, ErrInvalidPage)
}

func TestAPIErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, err := client.Count(context.Background(), BaseQuery)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.True(t, apiErr.IsRateLimited())
	assert.False(t, apiErr.IsServerError())
	assert.Contains(t, apiErr.Error(), "status 429")
}

func TestDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	})

	_, err := client.Fetch(context.Background(), BaseQuery, 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(zerolog.Nop(), WithBaseURL(url), WithRateLimit(0), WithTimeout(time.Second))
	_, err := client.Count(context.Background(), BaseQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestCanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"numFound":1}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Count(ctx, BaseQuery)
	require.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client := NewClient(zerolog.Nop(), WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		client := NewClient(zerolog.Nop())
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, DefaultUserAgent, client.userAgent)
		assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client := NewClient(zerolog.Nop(), WithHTTPClient(custom), WithTimeout(time.Second))
		assert.Same(t, custom, client.httpClient)
	})

	t.Run("empty values keep defaults", func(t *testing.T) {
		client := NewClient(zerolog.Nop(), WithBaseURL(""), WithUserAgent(""))
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, DefaultUserAgent, client.userAgent)
	})
}
