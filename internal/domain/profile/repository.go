package profile

import "context"

// Repository describes profile persistence needs from use cases.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Profile, bool, error)
	Upsert(ctx context.Context, p Profile) error
}
