package query

import (
	"fmt"
	"strings"

	"github.com/visual-layer/visuallayer-go/internal/domain"
	"github.com/visual-layer/visuallayer-go/internal/domain/anchor"
)

// EntityType is the scope of a search: whole images or sub-image objects.
type EntityType string

// Entity type constants.
const (
	EntityImages  EntityType = "IMAGES"
	EntityObjects EntityType = "OBJECTS"
)

// IsValid reports whether the entity type is a known value.
func (e EntityType) IsValid() bool {
	return e == EntityImages || e == EntityObjects
}

// Filter is a single VQL filter object. Its shape is defined by the
// remote API and treated as opaque beyond the keys set here.
type Filter map[string]any

// Document is the VQL query document: an ordered list of filter objects.
type Document []Filter

// LabelsOperator is the set-intersection operator used by label filters.
const LabelsOperator = "one of"

// Query is a validated search query. Exactly one filter family is
// resolved into the document; the entity type is attached orthogonally.
type Query struct {
	entity EntityType
	doc    Document
}

// Entity returns the search scope.
func (q Query) Entity() EntityType { return q.entity }

// Document returns the VQL document to submit.
func (q Query) Document() Document { return q.doc }

// NewLabels builds a query selecting media whose labels intersect the given set.
func NewLabels(entity EntityType, labels []string) (Query, error) {
	if err := validateEntity(entity); err != nil {
		return Query{}, err
	}
	if len(labels) == 0 {
		return Query{}, fmt.Errorf("%w: at least one label is required", domain.ErrValidation)
	}
	for _, l := range labels {
		if l == "" {
			return Query{}, fmt.Errorf("%w: empty label", domain.ErrValidation)
		}
	}
	value := make([]string, len(labels))
	copy(value, labels)
	return Query{
		entity: entity,
		doc: Document{{
			"type":     "labels",
			"value":    value,
			"operator": LabelsOperator,
		}},
	}, nil
}

// NewCaptions builds a full-text caption query. Fragments are joined with
// a single space in the order given.
func NewCaptions(entity EntityType, fragments []string) (Query, error) {
	if err := validateEntity(entity); err != nil {
		return Query{}, err
	}
	text := strings.Join(fragments, " ")
	if text == "" {
		return Query{}, fmt.Errorf("%w: caption text is required", domain.ErrValidation)
	}
	return Query{
		entity: entity,
		doc: Document{{
			"type":  "captions",
			"value": text,
		}},
	}, nil
}

// NewIssue builds an issue query with a confidence interval [min, max].
// Both bounds must lie in [0, 1] and min must not exceed max.
func NewIssue(entity EntityType, issueType string, confidenceMin, confidenceMax float64) (Query, error) {
	if err := validateEntity(entity); err != nil {
		return Query{}, err
	}
	if issueType == "" {
		return Query{}, fmt.Errorf("%w: issue type is required", domain.ErrValidation)
	}
	if confidenceMin < 0 || confidenceMin > 1 {
		return Query{}, fmt.Errorf("%w: confidence_min %v outside [0, 1]", domain.ErrValidation, confidenceMin)
	}
	if confidenceMax < 0 || confidenceMax > 1 {
		return Query{}, fmt.Errorf("%w: confidence_max %v outside [0, 1]", domain.ErrValidation, confidenceMax)
	}
	if confidenceMin > confidenceMax {
		return Query{}, fmt.Errorf(
			"%w: confidence_min %v greater than confidence_max %v",
			domain.ErrValidation, confidenceMin, confidenceMax,
		)
	}
	return Query{
		entity: entity,
		doc: Document{{
			"type":           "issue",
			"issue_type":     issueType,
			"confidence_min": confidenceMin,
			"confidence_max": confidenceMax,
		}},
	}, nil
}

// NewSimilarity builds a visual-similarity query anchored at an uploaded
// probe image. The threshold is passed to the API as a string.
func NewSimilarity(entity EntityType, ref anchor.Reference, threshold string) (Query, error) {
	if err := validateEntity(entity); err != nil {
		return Query{}, err
	}
	if ref.IsZero() {
		return Query{}, fmt.Errorf("%w: anchor reference is required", domain.ErrValidation)
	}
	if threshold == "" {
		return Query{}, fmt.Errorf("%w: similarity threshold is required", domain.ErrValidation)
	}
	return Query{
		entity: entity,
		doc: Document{{
			"type":        "similarity",
			"media_id":    ref.MediaID(),
			"anchor_type": ref.Type(),
			"threshold":   threshold,
		}},
	}, nil
}

// NewRaw wraps a caller-supplied filter list unchanged. This is the escape
// hatch for API features not otherwise modeled; no validation is applied
// to the filters themselves.
func NewRaw(entity EntityType, filters []Filter) (Query, error) {
	if err := validateEntity(entity); err != nil {
		return Query{}, err
	}
	return Query{entity: entity, doc: Document(filters)}, nil
}

func validateEntity(entity EntityType) error {
	if !entity.IsValid() {
		return fmt.Errorf("%w: unknown entity type %q", domain.ErrValidation, entity)
	}
	return nil
}
