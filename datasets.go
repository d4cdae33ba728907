package visuallayer

import (
	"context"
	"time"

	domds "github.com/visual-layer/visuallayer-go/internal/domain/dataset"
)

// DatasetService manages datasets.
type DatasetService struct {
	svc datasetUseCase
	obs *observer
}

// Create registers a new dataset. Only Name is required; the remaining
// params configure server-side import sources.
func (s *DatasetService) Create(ctx context.Context, p CreateDatasetParams) (Dataset, error) {
	start := time.Now()
	d, err := s.svc.Create(ctx, domds.CreateParams{
		Name:             p.Name,
		VLDatasetID:      p.VLDatasetID,
		BucketPath:       p.BucketPath,
		UploadedFilename: p.UploadedFilename,
		ConfigURL:        p.ConfigURL,
		PipelineType:     p.PipelineType,
	})
	s.obs.observe("datasets.create", start, err)
	if err != nil {
		return Dataset{}, err
	}
	return datasetFromDomain(d), nil
}

// Get fetches one dataset's details.
func (s *DatasetService) Get(ctx context.Context, id string) (Dataset, error) {
	start := time.Now()
	d, err := s.svc.Get(ctx, id)
	s.obs.observe("datasets.get", start, err)
	if err != nil {
		return Dataset{}, err
	}
	return datasetFromDomain(d), nil
}

// List fetches all datasets visible to the caller.
func (s *DatasetService) List(ctx context.Context) ([]Dataset, error) {
	start := time.Now()
	ds, err := s.svc.List(ctx)
	s.obs.observe("datasets.list", start, err)
	if err != nil {
		return nil, err
	}
	return datasetsFromDomain(ds), nil
}

// SampleData fetches the shared sample datasets available to every
// account.
func (s *DatasetService) SampleData(ctx context.Context) ([]Dataset, error) {
	start := time.Now()
	ds, err := s.svc.SampleData(ctx)
	s.obs.observe("datasets.sample_data", start, err)
	if err != nil {
		return nil, err
	}
	return datasetsFromDomain(ds), nil
}

// Stats fetches dataset statistics as returned by the API.
func (s *DatasetService) Stats(ctx context.Context, id string) (map[string]any, error) {
	start := time.Now()
	out, err := s.svc.Stats(ctx, id)
	s.obs.observe("datasets.stats", start, err)
	return out, err
}

// Explore fetches the dataset exploration view.
func (s *DatasetService) Explore(ctx context.Context, id string) (map[string]any, error) {
	start := time.Now()
	out, err := s.svc.Explore(ctx, id)
	s.obs.observe("datasets.explore", start, err)
	return out, err
}

// Delete removes a dataset. Irreversible.
func (s *DatasetService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.svc.Delete(ctx, id)
	s.obs.observe("datasets.delete", start, err)
	return err
}
