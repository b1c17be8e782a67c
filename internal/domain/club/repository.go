package club

import (
	"context"

	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

// Repository describes club persistence needs from use cases. SearchWithinBounds
// is a coarse prefilter: callers apply the exact great-circle cut themselves.
type Repository interface {
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	SearchWithinBounds(ctx context.Context, bounds geo.Bounds, filter Filter) ([]Club, error)
	Create(ctx context.Context, c Club) error
	Update(ctx context.Context, c Club) error
	Delete(ctx context.Context, clubID string) error
}
