package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/visual-layer/visuallayer-go/internal/domain"
)

// Status is the processing state of a dataset.
type Status string

// Dataset status constants.
const (
	StatusUploading  Status = "UPLOADING"
	StatusProcessing Status = "PROCESSING"
	StatusReady      Status = "READY"
	StatusFailed     Status = "FAILED"
)

// Ready reports whether the dataset accepts searches.
func (s Status) Ready() bool { return s == StatusReady }

// Dataset is remote dataset metadata.
type Dataset struct {
	id          string
	name        string
	description string
	status      Status
	mediaCount  int
	createdAt   time.Time
	sample      bool
}

// Reconstruct builds a Dataset from values already validated by the API.
func Reconstruct(
	id, name, description string, status Status,
	mediaCount int, createdAt time.Time, sample bool,
) Dataset {
	return Dataset{
		id:          id,
		name:        name,
		description: description,
		status:      status,
		mediaCount:  mediaCount,
		createdAt:   createdAt,
		sample:      sample,
	}
}

// ID returns the dataset identifier.
func (d Dataset) ID() string { return d.id }

// Name returns the display name.
func (d Dataset) Name() string { return d.name }

// Description returns the dataset description.
func (d Dataset) Description() string { return d.description }

// Status returns the processing state.
func (d Dataset) Status() Status { return d.status }

// MediaCount returns the number of media items.
func (d Dataset) MediaCount() int { return d.mediaCount }

// CreatedAt returns the creation time.
func (d Dataset) CreatedAt() time.Time { return d.createdAt }

// Sample reports whether this is a shared sample dataset.
func (d Dataset) Sample() bool { return d.sample }

// CreateParams are the form fields accepted by the dataset creation endpoint.
// Only Name is required; empty optional fields are omitted from the request.
type CreateParams struct {
	Name             string
	VLDatasetID      string
	BucketPath       string
	UploadedFilename string
	ConfigURL        string
	PipelineType     string
}

// Validate checks the creation parameters.
func (p CreateParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: dataset name is required", domain.ErrValidation)
	}
	return nil
}

// ValidateID checks that a dataset identifier is a well-formed UUID.
// The API rejects anything else, so this fails before a network call.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: dataset id %q is not a valid UUID", domain.ErrValidation, id)
	}
	return nil
}
