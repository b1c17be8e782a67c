package memory

import (
	"context"
	"sync"

	"github.com/fairwayhq/fairway-finder/internal/domain/profile"
)

type ProfileRepository struct {
	mu     sync.RWMutex
	byUser map[string]profile.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{byUser: make(map[string]profile.Profile)}
}

func (r *ProfileRepository) GetByUserID(_ context.Context, userID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUser[userID]
	if !ok {
		return profile.Profile{}, false, nil
	}

	return p, true, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[p.UserID] = p

	return nil
}
