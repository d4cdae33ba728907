package search

import (
	"fmt"
	"time"

	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
)

// submitRequest is the body of the job submission endpoint.
type submitRequest struct {
	EntityType string         `json:"entity_type"`
	Filters    query.Document `json:"filters"`
}

// jobDTO is the wire shape of a search job.
type jobDTO struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (d jobDTO) toDomain(datasetID string, entity query.EntityType) (job.Job, error) {
	if d.ID == "" {
		return job.Job{}, fmt.Errorf("submission response missing job id")
	}

	st := job.StatusPending
	if d.Status != "" {
		parsed, err := job.ParseStatus(d.Status)
		if err != nil {
			return job.Job{}, err
		}
		st = parsed
	}

	var createdAt time.Time
	if d.CreatedAt != "" {
		// Non-RFC3339 timestamps are tolerated; the local snapshot is disposable.
		if ts, err := time.Parse(time.RFC3339, d.CreatedAt); err == nil {
			createdAt = ts
		}
	}

	return job.New(d.ID, datasetID, entity, st, createdAt), nil
}

// anchorDTO is the wire shape of the anchor upload response.
type anchorDTO struct {
	AnchorMediaID string `json:"anchor_media_id"`
	AnchorType    string `json:"anchor_type"`
}
