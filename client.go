package visuallayer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/visual-layer/visuallayer-go/internal/config"
	"github.com/visual-layer/visuallayer-go/internal/domain/anchor"
	domds "github.com/visual-layer/visuallayer-go/internal/domain/dataset"
	"github.com/visual-layer/visuallayer-go/internal/domain/job"
	"github.com/visual-layer/visuallayer-go/internal/domain/query"
	"github.com/visual-layer/visuallayer-go/internal/domain/resultset"
	datasetsrepo "github.com/visual-layer/visuallayer-go/internal/repository/datasets"
	ingestionrepo "github.com/visual-layer/visuallayer-go/internal/repository/ingestion"
	searchrepo "github.com/visual-layer/visuallayer-go/internal/repository/search"
	"github.com/visual-layer/visuallayer-go/internal/transport"
	datasetuc "github.com/visual-layer/visuallayer-go/internal/usecase/dataset"
	exportuc "github.com/visual-layer/visuallayer-go/internal/usecase/export"
	ingestuc "github.com/visual-layer/visuallayer-go/internal/usecase/ingest"
	searchuc "github.com/visual-layer/visuallayer-go/internal/usecase/search"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultMaxWait      = 5 * time.Minute
)

// Consumer interfaces over the internal use cases. Narrow on purpose
// so tests can substitute hand mocks.
type searchUseCase interface {
	Submit(ctx context.Context, datasetID string, q query.Query) (job.Job, error)
	SubmitAndWait(ctx context.Context, datasetID string, q query.Query, interval, maxWait time.Duration) (job.Job, error)
}

type exportUseCase interface {
	Materialize(ctx context.Context, j job.Job) (resultset.ResultSet, error)
}

type datasetUseCase interface {
	Create(ctx context.Context, p domds.CreateParams) (domds.Dataset, error)
	Get(ctx context.Context, id string) (domds.Dataset, error)
	List(ctx context.Context) ([]domds.Dataset, error)
	SampleData(ctx context.Context) ([]domds.Dataset, error)
	Stats(ctx context.Context, id string) (map[string]any, error)
	Explore(ctx context.Context, id string) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type ingestUseCase interface {
	UploadImages(ctx context.Context, datasetID string, paths []string) (string, error)
	Status(ctx context.Context, datasetID, transactionID string) (map[string]any, error)
}

type anchorAPI interface {
	UploadAnchor(ctx context.Context, datasetID, filename string, file io.Reader) (anchor.Reference, error)
}

type healthAPI interface {
	Healthcheck(ctx context.Context) error
}

// Client is the Visual Layer SDK entry point.
type Client struct {
	searchSvc  searchUseCase
	exportSvc  exportUseCase
	datasetSvc datasetUseCase
	ingestSvc  ingestUseCase
	anchors    anchorAPI
	health     healthAPI

	pollInterval time.Duration
	maxWait      time.Duration
	obs          *observer
}

// New creates a Visual Layer client. Credentials come from
// WithCredentials or, if absent, from the VISUAL_LAYER_API_KEY and
// VISUAL_LAYER_API_SECRET environment variables.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		pollInterval: defaultPollInterval,
		maxWait:      defaultMaxWait,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv("VISUAL_LAYER_API_KEY")
	}
	if cfg.apiSecret == "" {
		cfg.apiSecret = os.Getenv("VISUAL_LAYER_API_SECRET")
	}
	if cfg.baseURL == "" {
		cfg.baseURL = config.DefaultBaseURL
	}
	if cfg.pollInterval <= 0 {
		return nil, fmt.Errorf("%w: poll interval must be positive", ErrConfiguration)
	}
	if cfg.maxWait <= 0 {
		return nil, fmt.Errorf("%w: max wait must be positive", ErrConfiguration)
	}

	httpClient := cfg.httpClient
	if httpClient == nil && cfg.timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	tc, err := transport.New(transport.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		APISecret:  cfg.apiSecret,
		HTTPClient: httpClient,
		UserAgent:  cfg.userAgent,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return wireClient(tc, cfg, obs), nil
}

func wireClient(tc *transport.Client, cfg *clientConfig, obs *observer) *Client {
	srepo := searchrepo.New(tc)
	dsrepo := datasetsrepo.New(tc)
	inrepo := ingestionrepo.New(tc)

	log := cfg.logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		searchSvc:    searchuc.New(srepo, log),
		exportSvc:    exportuc.New(srepo, log),
		datasetSvc:   datasetuc.New(dsrepo, log),
		ingestSvc:    ingestuc.New(inrepo, log),
		anchors:      srepo,
		health:       dsrepo,
		pollInterval: cfg.pollInterval,
		maxWait:      cfg.maxWait,
		obs:          obs,
	}
}

// Healthcheck verifies API connectivity and credentials.
func (c *Client) Healthcheck(ctx context.Context) error {
	start := time.Now()
	err := c.health.Healthcheck(ctx)
	c.obs.observe("healthcheck", start, err)
	return err
}

// Datasets returns the dataset management service.
func (c *Client) Datasets() *DatasetService {
	return &DatasetService{svc: c.datasetSvc, obs: c.obs}
}

// Search returns the search service for a given dataset.
func (c *Client) Search(datasetID string) *SearchService {
	return &SearchService{
		datasetID: datasetID,
		search:    c.searchSvc,
		export:    c.exportSvc,
		anchors:   c.anchors,
		interval:  c.pollInterval,
		maxWait:   c.maxWait,
		obs:       c.obs,
	}
}

// Ingestion returns the image-upload service for a given dataset.
func (c *Client) Ingestion(datasetID string) *IngestionService {
	return &IngestionService{datasetID: datasetID, svc: c.ingestSvc, obs: c.obs}
}
