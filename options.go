package visuallayer

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	baseURL   string
	apiKey    string
	apiSecret string

	httpClient *http.Client
	timeout    time.Duration
	userAgent  string

	pollInterval time.Duration
	maxWait      time.Duration

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithCredentials sets the API key pair used to sign requests.
// Required unless both VISUAL_LAYER_API_KEY and VISUAL_LAYER_API_SECRET
// are set in the environment.
func WithCredentials(apiKey, apiSecret string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = apiKey
		c.apiSecret = apiSecret
	})
}

// WithBaseURL overrides the API endpoint. Defaults to the production
// endpoint; point it at a staging or on-prem deployment as needed.
func WithBaseURL(baseURL string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = baseURL
	})
}

// WithHTTPClient supplies a custom HTTP client, for example with a
// proxy or custom TLS configuration. Overrides WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithTimeout sets the per-request timeout. Default: 30s.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return optionFunc(func(c *clientConfig) {
		c.userAgent = ua
	})
}

// WithPollInterval sets the delay between search job status checks.
// Default: 2s. Must be positive.
func WithPollInterval(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.pollInterval = d
	})
}

// WithMaxWait sets the total wait budget for a search job. A job still
// running past the budget is reported as TIMED_OUT, not as an error.
// Default: 5m. Must be positive.
func WithMaxWait(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxWait = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
