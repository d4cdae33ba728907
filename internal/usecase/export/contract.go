package export

import "context"

// Repository is the consumer interface over the export endpoint.
type Repository interface {
	Export(ctx context.Context, datasetID, jobID string) (map[string]any, error)
}
