package search

import (
	"context"

	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
)

// Repository is the consumer interface over the search endpoints.
type Repository interface {
	Submit(ctx context.Context, datasetID string, q query.Query) (job.Job, error)
	Status(ctx context.Context, datasetID, jobID string) (job.Status, error)
}
