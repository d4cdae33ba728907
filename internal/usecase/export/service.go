package export

import (
	"context"

	"go.uber.org/zap"

	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/resultset"
)

// Service materializes a finished search job into a tabular ResultSet.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates an export service.
func New(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Materialize fetches and flattens the export payload of a successful job.
// A FAILED or TIMED_OUT job degrades to an empty ResultSet instead of an
// error, so chained analysis code stays branch-free. The operation is a
// pure read and may be repeated.
func (s *Service) Materialize(ctx context.Context, j job.Job) (resultset.ResultSet, error) {
	if !j.Status().Succeeded() {
		s.log.Debug("materializing non-success job as empty result set",
			zap.String("job_id", j.ID()),
			zap.String("status", string(j.Status())),
		)
		return resultset.Empty(), nil
	}

	doc, err := s.repo.Export(ctx, j.DatasetID(), j.ID())
	if err != nil {
		return resultset.Empty(), err
	}

	rs := resultset.FromExport(doc)
	s.log.Debug("export materialized",
		zap.String("job_id", j.ID()),
		zap.Int("rows", rs.Len()),
	)
	return rs, nil
}
