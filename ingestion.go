package visuallayer

import (
	"context"
	"time"
)

// IngestionService uploads local images into one dataset. Uploads run
// inside a server-side transaction: files are attached one by one and
// processing starts only after the final commit.
type IngestionService struct {
	datasetID string
	svc       ingestUseCase
	obs       *observer
}

// UploadImages uploads the given local image files and starts
// processing. Paths are validated before any network call. Returns the
// transaction id for status tracking.
func (s *IngestionService) UploadImages(ctx context.Context, paths ...string) (string, error) {
	start := time.Now()
	tx, err := s.svc.UploadImages(ctx, s.datasetID, paths)
	s.obs.observe("ingestion.upload_images", start, err)
	return tx, err
}

// Status reads the state of an upload transaction.
func (s *IngestionService) Status(ctx context.Context, transactionID string) (map[string]any, error) {
	start := time.Now()
	out, err := s.svc.Status(ctx, s.datasetID, transactionID)
	s.obs.observe("ingestion.status", start, err)
	return out, err
}
