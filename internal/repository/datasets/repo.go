package datasets

import (
	"context"
	"fmt"
	"net/url"

	"github.com/visual-layer/visuallayer-go/internal/domain/dataset"
)

// httpAPI is the consumer interface over the transport (ISP).
type httpAPI interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	PostForm(ctx context.Context, path string, form url.Values, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Repo binds the dataset CRUD and health endpoints.
type Repo struct {
	api httpAPI
}

// New creates a dataset repository.
func New(api httpAPI) *Repo {
	return &Repo{api: api}
}

// Create registers a new dataset. The endpoint accepts form-encoded
// fields; empty optional fields are omitted.
func (r *Repo) Create(ctx context.Context, p dataset.CreateParams) (dataset.Dataset, error) {
	form := url.Values{}
	form.Set("dataset_name", p.Name)
	setIfPresent(form, "vl_dataset_id", p.VLDatasetID)
	setIfPresent(form, "bucket_path", p.BucketPath)
	setIfPresent(form, "uploaded_filename", p.UploadedFilename)
	setIfPresent(form, "config_url", p.ConfigURL)
	setIfPresent(form, "pipeline_type", p.PipelineType)

	var dto datasetDTO
	if err := r.api.PostForm(ctx, "/dataset", form, &dto); err != nil {
		return dataset.Dataset{}, fmt.Errorf("create dataset: %w", err)
	}
	return dto.toDomain(), nil
}

// Get fetches one dataset's details.
func (r *Repo) Get(ctx context.Context, id string) (dataset.Dataset, error) {
	var dto datasetDTO
	if err := r.api.Get(ctx, "/dataset/"+id, nil, &dto); err != nil {
		return dataset.Dataset{}, fmt.Errorf("get dataset: %w", err)
	}
	return dto.toDomain(), nil
}

// List fetches all datasets visible to the caller.
func (r *Repo) List(ctx context.Context) ([]dataset.Dataset, error) {
	var dtos []datasetDTO
	if err := r.api.Get(ctx, "/datasets", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	out := make([]dataset.Dataset, len(dtos))
	for i, d := range dtos {
		out[i] = d.toDomain()
	}
	return out, nil
}

// SampleData fetches the shared sample datasets.
func (r *Repo) SampleData(ctx context.Context) ([]dataset.Dataset, error) {
	var dtos []sampleDatasetDTO
	if err := r.api.Get(ctx, "/datasets/sample_data", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list sample datasets: %w", err)
	}
	out := make([]dataset.Dataset, len(dtos))
	for i, d := range dtos {
		out[i] = d.toDomain()
	}
	return out, nil
}

// Stats fetches dataset statistics. The shape is defined by the API
// and handed back as-is.
func (r *Repo) Stats(ctx context.Context, id string) (map[string]any, error) {
	var stats map[string]any
	if err := r.api.Get(ctx, fmt.Sprintf("/dataset/%s/stats", id), nil, &stats); err != nil {
		return nil, fmt.Errorf("dataset stats: %w", err)
	}
	return stats, nil
}

// Explore fetches the dataset exploration view.
func (r *Repo) Explore(ctx context.Context, id string) (map[string]any, error) {
	var doc map[string]any
	if err := r.api.Get(ctx, "/explore/"+id, nil, &doc); err != nil {
		return nil, fmt.Errorf("explore dataset: %w", err)
	}
	return doc, nil
}

// Delete removes a dataset.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.api.Delete(ctx, "/dataset/"+id, nil); err != nil {
		return fmt.Errorf("delete dataset: %w", err)
	}
	return nil
}

// Healthcheck verifies API availability.
func (r *Repo) Healthcheck(ctx context.Context) error {
	if err := r.api.Get(ctx, "/healthcheck", nil, nil); err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	return nil
}

func setIfPresent(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}
