package search

import (
	"context"
	"io"
	"net/url"
)

// mockAPI implements the consumer interface for tests.
type mockAPI struct {
	getFn    func(ctx context.Context, path string, params url.Values, out any) error
	postFn   func(ctx context.Context, path string, body any, out any) error
	uploadFn func(ctx context.Context, path, field, filename string, file io.Reader, out any) error
}

func (m *mockAPI) Get(ctx context.Context, path string, params url.Values, out any) error {
	if m.getFn != nil {
		return m.getFn(ctx, path, params, out)
	}
	return nil
}

func (m *mockAPI) Post(ctx context.Context, path string, body any, out any) error {
	if m.postFn != nil {
		return m.postFn(ctx, path, body, out)
	}
	return nil
}

func (m *mockAPI) Upload(
	ctx context.Context, path, field, filename string, file io.Reader, out any,
) error {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, path, field, filename, file, out)
	}
	return nil
}
