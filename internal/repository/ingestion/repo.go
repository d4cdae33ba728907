package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// httpAPI is the consumer interface over the transport (ISP).
type httpAPI interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error
}

// Repo binds the ingestion (upload transaction) endpoints.
type Repo struct {
	api httpAPI
}

// New creates an ingestion repository.
func New(api httpAPI) *Repo {
	return &Repo{api: api}
}

// BeginTransaction opens an upload transaction on a dataset.
func (r *Repo) BeginTransaction(ctx context.Context, datasetID string) (string, error) {
	var dto transactionDTO
	path := fmt.Sprintf("/ingestion/%s/data_files", datasetID)
	if err := r.api.Post(ctx, path, nil, &dto); err != nil {
		return "", fmt.Errorf("begin upload transaction: %w", err)
	}
	if dto.TransactionID == "" {
		return "", fmt.Errorf("transaction response missing id")
	}
	return dto.TransactionID, nil
}

// UploadFile attaches one file to an open transaction.
func (r *Repo) UploadFile(
	ctx context.Context, datasetID, transactionID, filename string, file io.Reader,
) error {
	path := fmt.Sprintf("/ingestion/%s/data_files/%s", datasetID, transactionID)
	if err := r.api.Upload(ctx, path, "file", filename, file, nil); err != nil {
		return fmt.Errorf("upload file %s: %w", filename, err)
	}
	return nil
}

// ProcessFiles commits the transaction and starts server-side processing.
func (r *Repo) ProcessFiles(ctx context.Context, datasetID, transactionID string) error {
	path := fmt.Sprintf("/ingestion/%s/process_files/%s", datasetID, transactionID)
	if err := r.api.Post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("process files: %w", err)
	}
	return nil
}

// TransactionStatus reads the state of an upload transaction. The shape
// is defined by the API and handed back as-is.
func (r *Repo) TransactionStatus(
	ctx context.Context, datasetID, transactionID string,
) (map[string]any, error) {
	var status map[string]any
	path := fmt.Sprintf("/ingestion/%s/data_files/%s", datasetID, transactionID)
	if err := r.api.Get(ctx, path, nil, &status); err != nil {
		return nil, fmt.Errorf("upload status: %w", err)
	}
	return status, nil
}
