package dataset

import (
	"context"

	"go.uber.org/zap"

	domds "github.com/visual-layer/visuallayer-go/internal/domain/dataset"
)

// Service handles dataset management.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates a dataset service.
func New(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Create registers a new dataset after validating the parameters.
func (s *Service) Create(ctx context.Context, p domds.CreateParams) (domds.Dataset, error) {
	if err := p.Validate(); err != nil {
		return domds.Dataset{}, err
	}
	ds, err := s.repo.Create(ctx, p)
	if err != nil {
		return domds.Dataset{}, err
	}
	s.log.Info("dataset created",
		zap.String("dataset_id", ds.ID()),
		zap.String("name", ds.Name()),
	)
	return ds, nil
}

// Get fetches one dataset's details.
func (s *Service) Get(ctx context.Context, id string) (domds.Dataset, error) {
	if err := domds.ValidateID(id); err != nil {
		return domds.Dataset{}, err
	}
	return s.repo.Get(ctx, id)
}

// List fetches all datasets visible to the caller.
func (s *Service) List(ctx context.Context) ([]domds.Dataset, error) {
	return s.repo.List(ctx)
}

// SampleData fetches the shared sample datasets.
func (s *Service) SampleData(ctx context.Context) ([]domds.Dataset, error) {
	return s.repo.SampleData(ctx)
}

// Stats fetches dataset statistics.
func (s *Service) Stats(ctx context.Context, id string) (map[string]any, error) {
	if err := domds.ValidateID(id); err != nil {
		return nil, err
	}
	return s.repo.Stats(ctx, id)
}

// Explore fetches the dataset exploration view.
func (s *Service) Explore(ctx context.Context, id string) (map[string]any, error) {
	if err := domds.ValidateID(id); err != nil {
		return nil, err
	}
	return s.repo.Explore(ctx, id)
}

// Delete removes a dataset.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := domds.ValidateID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("dataset deleted", zap.String("dataset_id", id))
	return nil
}
