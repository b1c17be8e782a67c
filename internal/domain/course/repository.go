package course

import "context"

// Repository describes course persistence needs from use cases.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Course, error)
	ListTeeBoxes(ctx context.Context, courseID string) ([]TeeBox, error)
	Create(ctx context.Context, c Course) error
	CreateTeeBox(ctx context.Context, t TeeBox) error
	DeleteByClub(ctx context.Context, clubID string) error
}
