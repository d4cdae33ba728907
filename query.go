package visuallayer

import "github.com/visual-layer/visuallayer-go/internal/domain/query"

// Query is a built search query. Construct one with Labels, Captions,
// Issue, Similarity, or RawFilters. A construction error is carried
// inside and surfaced when the query is submitted.
type Query struct {
	q   query.Query
	err error
}

// Labels builds a query matching media tagged with any of the labels.
func Labels(entity EntityType, labels ...string) Query {
	q, err := query.NewLabels(query.EntityType(entity), labels)
	return Query{q: q, err: err}
}

// Captions builds a free-text caption query. Fragments are joined with
// single spaces into one search phrase.
func Captions(entity EntityType, fragments ...string) Query {
	q, err := query.NewCaptions(query.EntityType(entity), fragments)
	return Query{q: q, err: err}
}

// Issue builds a quality-issue query (duplicates, mislabels, blur and
// the like) with an inclusive confidence range. Bounds must satisfy
// 0 <= min <= max <= 1.
func Issue(entity EntityType, issueType string, confidenceMin, confidenceMax float64) Query {
	q, err := query.NewIssue(query.EntityType(entity), issueType, confidenceMin, confidenceMax)
	return Query{q: q, err: err}
}

// Similarity builds a visual-similarity query against a previously
// uploaded anchor. Threshold is passed through verbatim, e.g. "0.8".
func Similarity(entity EntityType, a Anchor, threshold string) Query {
	ref, err := anchorToDomain(a)
	if err != nil {
		return Query{err: err}
	}
	q, err := query.NewSimilarity(query.EntityType(entity), ref, threshold)
	return Query{q: q, err: err}
}

// RawFilters builds a query from caller-supplied filter documents,
// passed to the API verbatim. The escape hatch for filters the typed
// constructors do not cover.
func RawFilters(entity EntityType, filters []map[string]any) Query {
	fs := make([]query.Filter, 0, len(filters))
	for _, f := range filters {
		fs = append(fs, query.Filter(f))
	}
	q, err := query.NewRaw(query.EntityType(entity), fs)
	return Query{q: q, err: err}
}

// Err returns the construction error, if any.
func (q Query) Err() error { return q.err }
