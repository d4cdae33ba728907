package visuallayer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SearchService runs search queries against one dataset. The common
// path is a convenience method (ByLabels, ByCaptions, ByIssue, Similar,
// Raw) that submits, waits, and materializes in one call; Submit, Wait,
// and Results expose the individual steps for callers that track jobs
// themselves.
type SearchService struct {
	datasetID string

	search  searchUseCase
	export  exportUseCase
	anchors anchorAPI

	interval time.Duration
	maxWait  time.Duration
	obs      *observer
}

// Run submits the query, polls it to a terminal state, and materializes
// the results. A FAILED or TIMED_OUT job yields an empty ResultSet and
// a nil error; inspect the job with Submit/Wait when the distinction
// matters.
func (s *SearchService) Run(ctx context.Context, q Query) (ResultSet, error) {
	start := time.Now()
	rs, err := s.run(ctx, q)
	s.obs.observe("search.run", start, err)
	return rs, err
}

func (s *SearchService) run(ctx context.Context, q Query) (ResultSet, error) {
	if q.err != nil {
		return ResultSet{}, q.err
	}
	j, err := s.search.SubmitAndWait(ctx, s.datasetID, q.q, s.interval, s.maxWait)
	if err != nil {
		return ResultSet{}, err
	}
	rs, err := s.export.Materialize(ctx, j)
	if err != nil {
		return ResultSet{}, err
	}
	return resultSetFromDomain(rs), nil
}

// ByLabels searches for media tagged with any of the labels.
func (s *SearchService) ByLabels(ctx context.Context, entity EntityType, labels ...string) (ResultSet, error) {
	return s.Run(ctx, Labels(entity, labels...))
}

// ByCaptions searches captions for the given text fragments.
func (s *SearchService) ByCaptions(ctx context.Context, entity EntityType, fragments ...string) (ResultSet, error) {
	return s.Run(ctx, Captions(entity, fragments...))
}

// ByIssue searches for media flagged with a quality issue within the
// inclusive confidence range.
func (s *SearchService) ByIssue(
	ctx context.Context, entity EntityType, issueType string, confidenceMin, confidenceMax float64,
) (ResultSet, error) {
	return s.Run(ctx, Issue(entity, issueType, confidenceMin, confidenceMax))
}

// Similar searches for media visually similar to an uploaded anchor.
func (s *SearchService) Similar(
	ctx context.Context, entity EntityType, a Anchor, threshold string,
) (ResultSet, error) {
	return s.Run(ctx, Similarity(entity, a, threshold))
}

// Raw searches with caller-supplied filter documents.
func (s *SearchService) Raw(
	ctx context.Context, entity EntityType, filters []map[string]any,
) (ResultSet, error) {
	return s.Run(ctx, RawFilters(entity, filters))
}

// Submit sends the query and returns the job without waiting.
func (s *SearchService) Submit(ctx context.Context, q Query) (Job, error) {
	start := time.Now()
	j, err := s.submit(ctx, q)
	s.obs.observe("search.submit", start, err)
	return j, err
}

func (s *SearchService) submit(ctx context.Context, q Query) (Job, error) {
	if q.err != nil {
		return Job{}, q.err
	}
	j, err := s.search.Submit(ctx, s.datasetID, q.q)
	if err != nil {
		return Job{}, err
	}
	return jobFromDomain(j), nil
}

// Wait submits the query and polls until a terminal state or the wait
// budget runs out. FAILED and TIMED_OUT come back as job states, not
// errors.
func (s *SearchService) Wait(ctx context.Context, q Query) (Job, error) {
	start := time.Now()
	j, err := s.wait(ctx, q)
	s.obs.observe("search.wait", start, err)
	return j, err
}

func (s *SearchService) wait(ctx context.Context, q Query) (Job, error) {
	if q.err != nil {
		return Job{}, q.err
	}
	j, err := s.search.SubmitAndWait(ctx, s.datasetID, q.q, s.interval, s.maxWait)
	if err != nil {
		return Job{}, err
	}
	return jobFromDomain(j), nil
}

// Results materializes a finished job into a ResultSet. Non-success
// jobs yield an empty ResultSet with a nil error. The call is a pure
// read and may be repeated.
func (s *SearchService) Results(ctx context.Context, j Job) (ResultSet, error) {
	start := time.Now()
	rs, err := s.export.Materialize(ctx, jobToDomain(j))
	s.obs.observe("search.results", start, err)
	if err != nil {
		return ResultSet{}, err
	}
	return resultSetFromDomain(rs), nil
}

// UploadAnchor uploads a local image as a similarity probe. The
// returned Anchor can be reused across Similar queries.
func (s *SearchService) UploadAnchor(ctx context.Context, path string) (Anchor, error) {
	start := time.Now()
	a, err := s.uploadAnchor(ctx, path)
	s.obs.observe("search.upload_anchor", start, err)
	return a, err
}

func (s *SearchService) uploadAnchor(ctx context.Context, path string) (Anchor, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Anchor{}, fmt.Errorf("%w: open anchor image: %v", ErrValidation, err)
	}
	defer func() { _ = f.Close() }()

	ref, err := s.anchors.UploadAnchor(ctx, s.datasetID, filepath.Base(path), f)
	if err != nil {
		return Anchor{}, err
	}
	return anchorFromDomain(ref), nil
}
