package ingestion

import (
	"context"
	"io"
	"net/url"
	"strings"
	"testing"
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

func TestBeginTransaction(t *testing.T) {
	api := &mockAPI{
		postFn: func(_ context.Context, path string, body any, out any) error {
			if path != "/ingestion/ds-1/data_files" {
				t.Errorf("path = %q", path)
			}
			if body != nil {
				t.Errorf("unexpected body: %v", body)
			}
			*(out.(*transactionDTO)) = transactionDTO{TransactionID: "tx-1"}
			return nil
		},
	}

	tx, err := New(api).BeginTransaction(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("BeginTransaction: %v", err)
	}
	if tx != "tx-1" {
		t.Errorf("tx = %q, want tx-1", tx)
	}
}

func TestBeginTransaction_MissingID(t *testing.T) {
	api := &mockAPI{}
	if _, err := New(api).BeginTransaction(context.Background(), "ds-1"); err == nil {
		t.Fatal("expected error for missing transaction id")
	}
}

func TestUploadFile(t *testing.T) {
	api := &mockAPI{
		uploadFn: func(_ context.Context, path, field, filename string, file io.Reader, _ any) error {
			if path != "/ingestion/ds-1/data_files/tx-1" {
				t.Errorf("path = %q", path)
			}
			if field != "file" || filename != "cat.jpg" {
				t.Errorf("part = %q/%q", field, filename)
			}
			data, _ := io.ReadAll(file)
			if string(data) != "bytes" {
				t.Errorf("content = %q", data)
			}
			return nil
		},
	}

	err := New(api).UploadFile(context.Background(), "ds-1", "tx-1", "cat.jpg", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
}

func TestProcessFilesAndStatus(t *testing.T) {
	var paths []string
	api := &mockAPI{
		postFn: func(_ context.Context, path string, _, _ any) error {
			paths = append(paths, path)
			return nil
		},
		getFn: func(_ context.Context, path string, _ url.Values, out any) error {
			paths = append(paths, path)
			*(out.(*map[string]any)) = map[string]any{"status": "PROCESSING"}
			return nil
		},
	}
	repo := New(api)
	ctx := context.Background()

	if err := repo.ProcessFiles(ctx, "ds-1", "tx-1"); err != nil {
		t.Fatalf("ProcessFiles: %v", err)
	}
	status, err := repo.TransactionStatus(ctx, "ds-1", "tx-1")
	if err != nil {
		t.Fatalf("TransactionStatus: %v", err)
	}
	if status["status"] != "PROCESSING" {
		t.Errorf("status = %v", status)
	}

	want := []string{"/ingestion/ds-1/process_files/tx-1", "/ingestion/ds-1/data_files/tx-1"}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("call %d path = %q, want %q", i, paths[i], p)
		}
	}
}
