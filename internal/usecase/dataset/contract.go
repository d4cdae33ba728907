package dataset

import (
	"context"

	domds "github.com/visual-layer/visuallayer-go/internal/domain/dataset"
)

// Repository is the consumer interface over the dataset endpoints.
type Repository interface {
	Create(ctx context.Context, p domds.CreateParams) (domds.Dataset, error)
	Get(ctx context.Context, id string) (domds.Dataset, error)
	List(ctx context.Context) ([]domds.Dataset, error)
	SampleData(ctx context.Context) ([]domds.Dataset, error)
	Stats(ctx context.Context, id string) (map[string]any, error)
	Explore(ctx context.Context, id string) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}
