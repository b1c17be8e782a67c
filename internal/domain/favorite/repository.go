package favorite

import (
	"context"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
)

// Repository describes favorite persistence needs from use cases. Toggle must
// be idempotent under concurrent calls: the store's uniqueness constraint on
// (profile_id, club_id), not application locking, prevents duplicate rows.
type Repository interface {
	Toggle(ctx context.Context, profileID, clubID string) (favorited bool, err error)
	ListClubs(ctx context.Context, profileID string) ([]club.Club, error)
	Exists(ctx context.Context, profileID, clubID string) (bool, error)
}
