package visuallayer

import (
	"github.com/visual-layer/visuallayer-go/internal/domain/anchor"
	"github.com/visual-layer/visuallayer-go/internal/domain/dataset"
	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
	"github.com/visual-layer/visuallayer-go/internal/domain/resultset"
)

func jobFromDomain(j job.Job) Job {
	return Job{
		ID:        j.ID(),
		DatasetID: j.DatasetID(),
		Entity:    EntityType(j.Entity()),
		Status:    JobStatus(j.Status()),
		CreatedAt: j.CreatedAt(),
	}
}

func jobToDomain(j Job) job.Job {
	return job.New(j.ID, j.DatasetID, query.EntityType(j.Entity), job.Status(j.Status), j.CreatedAt)
}

func datasetFromDomain(d dataset.Dataset) Dataset {
	return Dataset{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Status:      string(d.Status()),
		MediaCount:  d.MediaCount(),
		CreatedAt:   d.CreatedAt(),
		Sample:      d.Sample(),
	}
}

func datasetsFromDomain(ds []dataset.Dataset) []Dataset {
	out := make([]Dataset, 0, len(ds))
	for _, d := range ds {
		out = append(out, datasetFromDomain(d))
	}
	return out
}

func anchorFromDomain(r anchor.Reference) Anchor {
	return Anchor{MediaID: r.MediaID(), Type: r.Type()}
}

func anchorToDomain(a Anchor) (anchor.Reference, error) {
	return anchor.New(a.MediaID, a.Type)
}

func resultSetFromDomain(rs resultset.ResultSet) ResultSet {
	rows := make([]Row, 0, rs.Len())
	for _, r := range rs.Rows() {
		rows = append(rows, Row(r))
	}
	return ResultSet{Columns: rs.Columns(), Rows: rows}
}
