package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/visual-layer/visuallayer-go/internal/domain"
	"github.com/visual-layer/visuallayer-go/internal/domain/anchor"
	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
)

// httpAPI is the consumer interface over the transport (ISP).
type httpAPI interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error
}

// Repo binds the search, job-status, export, and anchor endpoints.
type Repo struct {
	api httpAPI
}

// New creates a search repository.
func New(api httpAPI) *Repo {
	return &Repo{api: api}
}

// Submit sends a query document and returns the created job snapshot.
// 4xx rejections are reported as ErrSubmission; a dataset that is still
// processing maps to ErrDatasetNotReady via the API error.
func (r *Repo) Submit(ctx context.Context, datasetID string, q query.Query) (job.Job, error) {
	body := submitRequest{
		EntityType: string(q.Entity()),
		Filters:    q.Document(),
	}

	var dto jobDTO
	err := r.api.Post(ctx, fmt.Sprintf("/dataset/%s/search", datasetID), body, &dto)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && !errors.Is(err, domain.ErrDatasetNotReady) &&
			apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return job.Job{}, fmt.Errorf("%w: %w", domain.ErrSubmission, err)
		}
		return job.Job{}, fmt.Errorf("submit search: %w", err)
	}

	return dto.toDomain(datasetID, q.Entity())
}

// Status reads the current status of a search job. A pure idempotent read.
func (r *Repo) Status(ctx context.Context, datasetID, jobID string) (job.Status, error) {
	var dto jobDTO
	path := fmt.Sprintf("/dataset/%s/search/%s", datasetID, jobID)
	if err := r.api.Get(ctx, path, nil, &dto); err != nil {
		return "", fmt.Errorf("job status: %w", err)
	}
	st, err := job.ParseStatus(dto.Status)
	if err != nil {
		return "", fmt.Errorf("job status: %w", err)
	}
	return st, nil
}

// Export fetches the completed job's raw export document.
func (r *Repo) Export(ctx context.Context, datasetID, jobID string) (map[string]any, error) {
	var doc map[string]any
	path := fmt.Sprintf("/dataset/%s/search/%s/export", datasetID, jobID)
	if err := r.api.Get(ctx, path, nil, &doc); err != nil {
		return nil, fmt.Errorf("fetch export: %w", err)
	}
	return doc, nil
}

// UploadAnchor uploads a similarity probe image and returns its reference.
func (r *Repo) UploadAnchor(
	ctx context.Context, datasetID, filename string, file io.Reader,
) (anchor.Reference, error) {
	var dto anchorDTO
	path := fmt.Sprintf("/dataset/%s/search/anchor", datasetID)
	if err := r.api.Upload(ctx, path, "file", filename, file, &dto); err != nil {
		return anchor.Reference{}, fmt.Errorf("upload anchor: %w", err)
	}
	ref, err := anchor.New(dto.AnchorMediaID, dto.AnchorType)
	if err != nil {
		return anchor.Reference{}, fmt.Errorf("anchor response: %w", err)
	}
	return ref, nil
}
