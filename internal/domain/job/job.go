package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/visual-layer/visuallayer-go/internal/domain/query"
)

// Status is the lifecycle state of a search job.
type Status string

// Job status constants. READY and COMPLETED are both success terminals:
// the remote API uses the two terms interchangeably.
const (
	StatusPending   Status = "PENDING"
	StatusRunning   Status = "RUNNING"
	StatusReady     Status = "READY"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusTimedOut  Status = "TIMED_OUT"
)

// ParseStatus normalizes a status string reported by the API.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusRunning, StatusReady, StatusCompleted, StatusFailed, StatusTimedOut:
		return st, nil
	default:
		return "", fmt.Errorf("unknown job status %q", s)
	}
}

// Terminal reports whether no further transition occurs from this status.
func (s Status) Terminal() bool {
	switch s {
	case StatusReady, StatusCompleted, StatusFailed, StatusTimedOut:
		return true
	default:
		return false
	}
}

// Succeeded reports whether the job finished with results available.
func (s Status) Succeeded() bool {
	return s == StatusReady || s == StatusCompleted
}

// Job is a local snapshot of a server-side search job. The server copy is
// authoritative; this record is disposable and never reconciled.
type Job struct {
	id        string
	datasetID string
	entity    query.EntityType
	status    Status
	createdAt time.Time
}

// New creates a job snapshot as returned by the submission endpoint.
func New(id, datasetID string, entity query.EntityType, status Status, createdAt time.Time) Job {
	return Job{
		id:        id,
		datasetID: datasetID,
		entity:    entity,
		status:    status,
		createdAt: createdAt,
	}
}

// ID returns the job identifier.
func (j Job) ID() string { return j.id }

// DatasetID returns the owning dataset identifier.
func (j Job) DatasetID() string { return j.datasetID }

// Entity returns the search scope the job was submitted with.
func (j Job) Entity() query.EntityType { return j.entity }

// Status returns the last observed status.
func (j Job) Status() Status { return j.status }

// CreatedAt returns the submission time.
func (j Job) CreatedAt() time.Time { return j.createdAt }

// WithStatus returns a copy of the job with an updated status.
func (j Job) WithStatus(s Status) Job {
	j.status = s
	return j
}
