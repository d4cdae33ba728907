package visuallayer

import (
	"context"
	"io"
	"time"

	"github.com/visual-layer/visuallayer-go/internal/domain/anchor"
	domds "github.com/visual-layer/visuallayer-go/internal/domain/dataset"
	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
	"github.com/visual-layer/visuallayer-go/internal/domain/resultset"
)

type mockSearchUC struct {
	submitFn func(ctx context.Context, datasetID string, q query.Query) (job.Job, error)
	waitFn   func(ctx context.Context, datasetID string, q query.Query, interval, maxWait time.Duration) (job.Job, error)
}

func (m *mockSearchUC) Submit(ctx context.Context, datasetID string, q query.Query) (job.Job, error) {
	return m.submitFn(ctx, datasetID, q)
}

func (m *mockSearchUC) SubmitAndWait(
	ctx context.Context, datasetID string, q query.Query, interval, maxWait time.Duration,
) (job.Job, error) {
	return m.waitFn(ctx, datasetID, q, interval, maxWait)
}

type mockExportUC struct {
	fn func(ctx context.Context, j job.Job) (resultset.ResultSet, error)
}

func (m *mockExportUC) Materialize(ctx context.Context, j job.Job) (resultset.ResultSet, error) {
	return m.fn(ctx, j)
}

type mockDatasetUC struct {
	createFn  func(ctx context.Context, p domds.CreateParams) (domds.Dataset, error)
	getFn     func(ctx context.Context, id string) (domds.Dataset, error)
	listFn    func(ctx context.Context) ([]domds.Dataset, error)
	sampleFn  func(ctx context.Context) ([]domds.Dataset, error)
	statsFn   func(ctx context.Context, id string) (map[string]any, error)
	exploreFn func(ctx context.Context, id string) (map[string]any, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockDatasetUC) Create(ctx context.Context, p domds.CreateParams) (domds.Dataset, error) {
	return m.createFn(ctx, p)
}
func (m *mockDatasetUC) Get(ctx context.Context, id string) (domds.Dataset, error) {
	return m.getFn(ctx, id)
}
func (m *mockDatasetUC) List(ctx context.Context) ([]domds.Dataset, error) { return m.listFn(ctx) }
func (m *mockDatasetUC) SampleData(ctx context.Context) ([]domds.Dataset, error) {
	return m.sampleFn(ctx)
}
func (m *mockDatasetUC) Stats(ctx context.Context, id string) (map[string]any, error) {
	return m.statsFn(ctx, id)
}
func (m *mockDatasetUC) Explore(ctx context.Context, id string) (map[string]any, error) {
	return m.exploreFn(ctx, id)
}
func (m *mockDatasetUC) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

type mockIngestUC struct {
	uploadFn func(ctx context.Context, datasetID string, paths []string) (string, error)
	statusFn func(ctx context.Context, datasetID, transactionID string) (map[string]any, error)
}

func (m *mockIngestUC) UploadImages(ctx context.Context, datasetID string, paths []string) (string, error) {
	return m.uploadFn(ctx, datasetID, paths)
}

func (m *mockIngestUC) Status(ctx context.Context, datasetID, transactionID string) (map[string]any, error) {
	return m.statusFn(ctx, datasetID, transactionID)
}

type mockAnchorAPI struct {
	fn func(ctx context.Context, datasetID, filename string, file io.Reader) (anchor.Reference, error)
}

func (m *mockAnchorAPI) UploadAnchor(
	ctx context.Context, datasetID, filename string, file io.Reader,
) (anchor.Reference, error) {
	return m.fn(ctx, datasetID, filename, file)
}
