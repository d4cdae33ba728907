package datasets

import (
	"context"
	"net/url"
)

// mockAPI implements the consumer interface for tests.
type mockAPI struct {
	getFn      func(ctx context.Context, path string, params url.Values, out any) error
	postFormFn func(ctx context.Context, path string, form url.Values, out any) error
	deleteFn   func(ctx context.Context, path string, out any) error
}

func (m *mockAPI) Get(ctx context.Context, path string, params url.Values, out any) error {
	if m.getFn != nil {
		return m.getFn(ctx, path, params, out)
	}
	return nil
}

func (m *mockAPI) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	if m.postFormFn != nil {
		return m.postFormFn(ctx, path, form, out)
	}
	return nil
}

func (m *mockAPI) Delete(ctx context.Context, path string, out any) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, path, out)
	}
	return nil
}
