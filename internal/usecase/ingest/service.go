package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/visual-layer/visuallayer-go/internal/domain"
	"github.com/visual-layer/visuallayer-go/internal/domain/dataset"
)

// Service runs the upload transaction workflow: open a transaction,
// attach files one by one, then commit for processing.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates an ingest service.
func New(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// UploadImages uploads local image files into a dataset and starts
// processing. Paths are validated before any network call. Returns the
// transaction id for status tracking.
func (s *Service) UploadImages(ctx context.Context, datasetID string, paths []string) (string, error) {
	if err := dataset.ValidateID(datasetID); err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("%w: at least one image path is required", domain.ErrValidation)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("%w: image file not found: %s", domain.ErrValidation, p)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%w: %s is a directory", domain.ErrValidation, p)
		}
	}

	tx, err := s.repo.BeginTransaction(ctx, datasetID)
	if err != nil {
		return "", err
	}
	s.log.Debug("upload transaction opened",
		zap.String("dataset_id", datasetID),
		zap.String("transaction_id", tx),
		zap.Int("files", len(paths)),
	)

	for _, p := range paths {
		if err := s.uploadOne(ctx, datasetID, tx, p); err != nil {
			return "", err
		}
	}

	if err := s.repo.ProcessFiles(ctx, datasetID, tx); err != nil {
		return "", err
	}
	return tx, nil
}

func (s *Service) uploadOne(ctx context.Context, datasetID, tx, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return s.repo.UploadFile(ctx, datasetID, tx, filepath.Base(path), f)
}

// Status reads the state of an upload transaction.
func (s *Service) Status(ctx context.Context, datasetID, transactionID string) (map[string]any, error) {
	if err := dataset.ValidateID(datasetID); err != nil {
		return nil, err
	}
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction id is required", domain.ErrValidation)
	}
	return s.repo.TransactionStatus(ctx, datasetID, transactionID)
}
