package anchor

import (
	"fmt"

	"github.com/visual-layer/visuallayer-go/internal/domain"
)

// Reference points at an uploaded similarity-search probe image.
// It is produced by the anchor upload endpoint, is not owned by any
// search job, and may be reused across queries.
type Reference struct {
	mediaID    string
	anchorType string
}

// New validates and creates an anchor Reference.
func New(mediaID, anchorType string) (Reference, error) {
	if mediaID == "" {
		return Reference{}, fmt.Errorf("%w: anchor media id is required", domain.ErrValidation)
	}
	if anchorType == "" {
		return Reference{}, fmt.Errorf("%w: anchor type is required", domain.ErrValidation)
	}
	return Reference{mediaID: mediaID, anchorType: anchorType}, nil
}

// MediaID returns the opaque media identifier assigned by the API.
func (r Reference) MediaID() string { return r.mediaID }

// Type returns the anchor-type tag.
func (r Reference) Type() string { return r.anchorType }

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool { return r.mediaID == "" }
