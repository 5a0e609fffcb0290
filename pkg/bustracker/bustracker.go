// Package bustracker is a client for the CTA BusTracker (BusTime v1) XML
// API. Each accessor performs one blocking HTTP GET against the API,
// retrying transient transport failures with exponential backoff, and
// parses the XML response into the records defined in pkg/bustime.
package bustracker

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// APIRoot is the base URL every request is built against.
	APIRoot = "http://www.ctabustracker.com/bustime/api"

	// APIVersion is the API revision this client speaks.
	APIVersion = "v1"
)

const requestTimeout = 5 * time.Second

// Defaults applied by New when the matching option is not given.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 3 * time.Second
	DefaultRetryBackoff  = 2.0
)

// Client talks to the BusTracker API on behalf of a single API key.
// A Client is safe for use from multiple goroutines.
type Client struct {
	apiKey string

	retryURLs     bool
	retryAttempts int
	retryDelay    time.Duration
	retryBackoff  float64

	root       string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithRetryURLs enables or disables retrying of failed requests. With
// retries disabled every accessor makes exactly one attempt.
func WithRetryURLs(retry bool) Option {
	return func(client *Client) {
		client.retryURLs = retry
	}
}

// WithRetryAttempts sets the total number of attempts made per request,
// including the first. Values below one behave as a single attempt.
func WithRetryAttempts(attempts int) Option {
	return func(client *Client) {
		client.retryAttempts = attempts
	}
}

// WithRetryDelay sets the wait before the first retry.
func WithRetryDelay(delay time.Duration) Option {
	return func(client *Client) {
		client.retryDelay = delay
	}
}

// WithRetryBackoff sets the multiplier applied to the wait after each
// failed attempt.
func WithRetryBackoff(backoff float64) Option {
	return func(client *Client) {
		client.retryBackoff = backoff
	}
}

// WithLogger replaces the global zerolog logger the Client reports retry
// and skip events through.
func WithLogger(logger zerolog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// New returns a Client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey: apiKey,

		retryURLs:     true,
		retryAttempts: DefaultRetryAttempts,
		retryDelay:    DefaultRetryDelay,
		retryBackoff:  DefaultRetryBackoff,

		root:   APIRoot,
		logger: log.Logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = &http.Client{
		Timeout: requestTimeout,
		// Every attempt opens a fresh connection, nothing is pooled
		// between calls.
		Transport: &http.Transport{
			DisableKeepAlives: true,
		},
	}

	return client
}

func (c *Client) buildURL(method string, params map[string]string) string {
	values := url.Values{}
	for name, value := range params {
		values.Set(name, value)
	}
	values.Set("key", c.apiKey)

	return fmt.Sprintf("%s/%s/%s?%s", c.root, APIVersion, method, values.Encode())
}
