package visuallayer

import "github.com/visual-layer/visuallayer-go/internal/domain"

// Sentinel errors. Match with errors.Is.
var (
	// ErrValidation signals malformed caller input (empty labels,
	// confidence bounds out of range, bad dataset id).
	ErrValidation = domain.ErrValidation
	// ErrConfiguration signals invalid client or polling parameters.
	// It is returned before any network call is made.
	ErrConfiguration = domain.ErrConfiguration
	// ErrSubmission signals that the API rejected a search query.
	// Submission rejections are never retried.
	ErrSubmission = domain.ErrSubmission
	// ErrNotFound signals a missing remote resource.
	ErrNotFound = domain.ErrNotFound
	// ErrDatasetNotReady signals a dataset that does not accept
	// searches yet (still uploading or processing).
	ErrDatasetNotReady = domain.ErrDatasetNotReady
)

// APIError carries a non-2xx response from the Visual Layer API.
// Retrieve it with errors.As to inspect the status code.
type APIError = domain.APIError
