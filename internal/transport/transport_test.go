package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/visual-layer/visuallayer-go/internal/domain"
)

const (
	testKey    = "test-key"
	testSecret = "test-secret"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(Config{
		BaseURL:    srv.URL + "/api/v1",
		APIKey:     testKey,
		APISecret:  testSecret,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// requireAuth verifies the bearer token on every request the fake API sees.
func requireAuth(t *testing.T) func(http.Handler) http.Handler {
	t.Helper()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
				return []byte(testSecret), nil
			})
			if err != nil || !tok.Valid {
				t.Errorf("request carried an invalid token: %v", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if tok.Header["kid"] != testKey {
				t.Errorf("kid = %v, want %q", tok.Header["kid"], testKey)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func TestGet_SignedAndDecoded(t *testing.T) {
	r := chi.NewRouter()
	r.Use(requireAuth(t))
	r.Get("/api/v1/healthcheck", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("verbose") != "1" {
			t.Error("query params not forwarded")
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv)
	var out struct {
		Status string `json:"status"`
	}
	params := url.Values{"verbose": {"1"}}
	if err := c.Get(context.Background(), "/healthcheck", params, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Status != "ok" {
		t.Errorf("status = %q, want ok", out.Status)
	}
}

func TestPostForm_Encoding(t *testing.T) {
	r := chi.NewRouter()
	r.Use(requireAuth(t))
	r.Post("/api/v1/dataset", func(w http.ResponseWriter, req *http.Request) {
		if ct := req.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %q", ct)
		}
		if err := req.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if req.PostForm.Get("dataset_name") != "my dataset" {
			t.Errorf("dataset_name = %q", req.PostForm.Get("dataset_name"))
		}
		_, _ = w.Write([]byte(`{"id":"ds-1"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv)
	var out struct {
		ID string `json:"id"`
	}
	form := url.Values{"dataset_name": {"my dataset"}}
	if err := c.PostForm(context.Background(), "/dataset", form, &out); err != nil {
		t.Fatalf("PostForm: %v", err)
	}
	if out.ID != "ds-1" {
		t.Errorf("id = %q, want ds-1", out.ID)
	}
}

func TestUpload_Multipart(t *testing.T) {
	r := chi.NewRouter()
	r.Use(requireAuth(t))
	r.Post("/api/v1/ingestion/ds-1/data_files/tx-1", func(w http.ResponseWriter, req *http.Request) {
		file, header, err := req.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer func() { _ = file.Close() }()
		if header.Filename != "cat.jpg" {
			t.Errorf("filename = %q, want cat.jpg", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "jpegbytes" {
			t.Errorf("file content = %q", data)
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv)
	err := c.Upload(
		context.Background(), "/ingestion/ds-1/data_files/tx-1",
		"file", "cat.jpg", strings.NewReader("jpegbytes"), nil,
	)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
}

func TestDo_APIErrorDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/dataset/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"dataset does not exist"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv)
	err := c.Get(context.Background(), "/dataset/missing", nil, nil)
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *domain.APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Detail != "dataset does not exist" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Error("404 does not unwrap to ErrNotFound")
	}
}

func TestDo_MessageFallbackAndRawBody(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/message", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad filter"}`))
	})
	r.Get("/api/v1/plain", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream broke"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv)

	var apiErr *domain.APIError
	if err := c.Get(context.Background(), "/message", nil, nil); !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	} else if apiErr.Detail != "bad filter" {
		t.Errorf("detail = %q, want bad filter", apiErr.Detail)
	}

	if err := c.Get(context.Background(), "/plain", nil, nil); !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	} else if apiErr.Detail != "upstream broke" {
		t.Errorf("detail = %q, want raw body", apiErr.Detail)
	}
}

func TestDo_NetworkErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c, err := New(Config{BaseURL: srv.URL, APIKey: testKey, APISecret: testSecret})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = c.Get(context.Background(), "/healthcheck", nil, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		t.Error("network failure should not be an APIError")
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{APIKey: "k", APISecret: "s"}); !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("missing base URL: err = %v, want ErrConfiguration", err)
	}
	if _, err := New(Config{BaseURL: "http://x"}); !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("missing credentials: err = %v, want ErrConfiguration", err)
	}
}
