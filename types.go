package visuallayer

import "time"

// EntityType is the scope of a search.
type EntityType string

// Entity type constants.
const (
	EntityImages  EntityType = "IMAGES"
	EntityObjects EntityType = "OBJECTS"
)

// JobStatus is the lifecycle state of a search job.
type JobStatus string

// Job status constants. JobReady and JobCompleted are both success
// terminals; the API uses the two terms interchangeably.
const (
	JobPending   JobStatus = "PENDING"
	JobRunning   JobStatus = "RUNNING"
	JobReady     JobStatus = "READY"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
	JobTimedOut  JobStatus = "TIMED_OUT"
)

// Succeeded reports whether results are available for the job.
func (s JobStatus) Succeeded() bool {
	return s == JobReady || s == JobCompleted
}

// Terminal reports whether no further transition occurs from this status.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobReady, JobCompleted, JobFailed, JobTimedOut:
		return true
	default:
		return false
	}
}

// Job is a snapshot of a server-side search job. The server copy is
// authoritative; check Status before materializing results.
type Job struct {
	ID        string
	DatasetID string
	Entity    EntityType
	Status    JobStatus
	CreatedAt time.Time
}

// Dataset is remote dataset metadata.
type Dataset struct {
	ID          string
	Name        string
	Description string
	Status      string
	MediaCount  int
	CreatedAt   time.Time
	Sample      bool
}

// CreateDatasetParams are the fields accepted by dataset creation.
// Only Name is required.
type CreateDatasetParams struct {
	Name             string
	VLDatasetID      string
	BucketPath       string
	UploadedFilename string
	ConfigURL        string
	PipelineType     string
}

// Anchor references an uploaded similarity-search probe image. It may
// be reused across queries.
type Anchor struct {
	MediaID string
	Type    string
}

// Row is one flattened result row: named fields with opaque values.
type Row map[string]any

// ResultSet is an ordered set of result rows with a deterministic
// column order. Converting it to a dataframe or CSV is the caller's
// responsibility.
type ResultSet struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (rs ResultSet) Len() int { return len(rs.Rows) }
