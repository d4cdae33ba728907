package datasets

import (
	"time"

	"github.com/visual-layer/visuallayer-go/internal/domain/dataset"
)

// datasetDTO is the wire shape of a dataset.
type datasetDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	NImages     int    `json:"n_images"`
	CreatedAt   string `json:"created_at"`
	Sample      bool   `json:"sample"`
}

func (d datasetDTO) toDomain() dataset.Dataset {
	var createdAt time.Time
	if ts, err := time.Parse(time.RFC3339, d.CreatedAt); err == nil {
		createdAt = ts
	}
	return dataset.Reconstruct(
		d.ID, d.DisplayName, d.Description, dataset.Status(d.Status),
		d.NImages, createdAt, d.Sample,
	)
}

// sampleDatasetDTO is the wire shape of the sample-data listing, which
// names its fields differently from the dataset endpoints.
type sampleDatasetDTO struct {
	DatasetID   string `json:"dataset_id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	NImages     int    `json:"n_images"`
}

func (d sampleDatasetDTO) toDomain() dataset.Dataset {
	return dataset.Reconstruct(
		d.DatasetID, d.DisplayName, d.Description, dataset.StatusReady,
		d.NImages, time.Time{}, true,
	)
}
