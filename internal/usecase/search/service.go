package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/visual-layer/visuallayer-go/internal/domain"
	"github.com/visual-layer/visuallayer-go/internal/domain/dataset"
	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
)

// Service drives the asynchronous search workflow: submit a query, then
// poll the job until a terminal state or the wait budget runs out.
type Service struct {
	repo Repository
	log  *zap.Logger

	// Injected for tests; real time and a context-aware sleep otherwise.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a search service.
func New(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:  repo,
		log:   log,
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Submit sends a query and returns the job snapshot without waiting.
func (s *Service) Submit(ctx context.Context, datasetID string, q query.Query) (job.Job, error) {
	if err := dataset.ValidateID(datasetID); err != nil {
		return job.Job{}, err
	}
	return s.repo.Submit(ctx, datasetID, q)
}

// SubmitAndWait submits a query and polls the job status every interval
// until a terminal state. FAILED and TIMED_OUT are reported as job states,
// not errors: callers are expected to check the status before materializing.
// A transport error on any status check terminates the poll with that error;
// a single missed check is not retried, so a broken backend is never masked
// as a slow one.
func (s *Service) SubmitAndWait(
	ctx context.Context, datasetID string, q query.Query,
	interval, maxWait time.Duration,
) (job.Job, error) {
	if interval <= 0 {
		return job.Job{}, fmt.Errorf(
			"%w: poll interval must be positive, got %s", domain.ErrConfiguration, interval,
		)
	}
	if maxWait <= 0 {
		return job.Job{}, fmt.Errorf(
			"%w: max wait must be positive, got %s", domain.ErrConfiguration, maxWait,
		)
	}

	j, err := s.Submit(ctx, datasetID, q)
	if err != nil {
		return job.Job{}, err
	}
	s.log.Debug("search job submitted",
		zap.String("dataset_id", datasetID),
		zap.String("job_id", j.ID()),
	)
	if j.Status().Terminal() {
		return j, nil
	}

	deadline := s.now().Add(maxWait)
	for {
		st, err := s.repo.Status(ctx, datasetID, j.ID())
		if err != nil {
			return job.Job{}, err
		}
		j = j.WithStatus(st)

		if st.Terminal() {
			s.log.Debug("search job finished",
				zap.String("job_id", j.ID()),
				zap.String("status", string(st)),
			)
			return j, nil
		}

		if err := s.sleep(ctx, interval); err != nil {
			return j, err
		}
		if !s.now().Before(deadline) {
			s.log.Warn("search job timed out",
				zap.String("job_id", j.ID()),
				zap.Duration("max_wait", maxWait),
			)
			return j.WithStatus(job.StatusTimedOut), nil
		}
	}
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
