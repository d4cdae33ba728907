// Package transport implements the signed HTTP core of the SDK. It builds
// requests, attaches per-request bearer tokens, and converts non-2xx
// responses into typed API errors. Everything above it works with parsed
// JSON and domain types only.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/visual-layer/visuallayer-go/internal/domain"
	"github.com/visual-layer/visuallayer-go/internal/logger"
)

const defaultTimeout = 30 * time.Second

// Config holds transport settings.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string

	// HTTPClient overrides the default client (timeout 30s).
	HTTPClient *http.Client
	UserAgent  string
	Logger     *zap.Logger
}

// Client performs signed HTTP calls against the Visual Layer API.
type Client struct {
	base   string
	http   *http.Client
	signer *signer
	ua     string
	log    *zap.Logger
}

// New creates a transport client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", domain.ErrConfiguration)
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("%w: API key and secret are required", domain.ErrConfiguration)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", domain.ErrConfiguration, err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   hc,
		signer: newSigner(cfg.APIKey, cfg.APISecret),
		ua:     cfg.UserAgent,
		log:    log,
	}, nil
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, "", out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	var rd io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.do(ctx, http.MethodPost, path, nil, rd, contentType, out)
}

// PostForm performs a POST request with url-encoded form data.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(
		ctx, http.MethodPost, path, nil,
		strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", out,
	)
}

// Upload performs a multipart POST with a single file part.
func (c *Client) Upload(
	ctx context.Context, path, field, filename string, file io.Reader, out any,
) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out)
}

func (c *Client) do(
	ctx context.Context, method, path string,
	params url.Values, body io.Reader, contentType string, out any,
) error {
	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	token, err := c.signer.token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	log := c.log
	if ctxLog := logger.FromContext(ctx); ctxLog != nil {
		log = ctxLog
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Network failure: surfaced unchanged, the poller treats it as fatal.
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(data),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractDetail pulls a human-readable message out of a JSON error body.
// The API uses "detail" for FastAPI-style errors and "message" elsewhere.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Detail != "" {
			return parsed.Detail
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(body))
}
