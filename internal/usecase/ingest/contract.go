package ingest

import (
	"context"
	"io"
)

// Repository is the consumer interface over the ingestion endpoints.
type Repository interface {
	BeginTransaction(ctx context.Context, datasetID string) (string, error)
	UploadFile(ctx context.Context, datasetID, transactionID, filename string, file io.Reader) error
	ProcessFiles(ctx context.Context, datasetID, transactionID string) error
	TransactionStatus(ctx context.Context, datasetID, transactionID string) (map[string]any, error)
}
