package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/favorite"
)

// FavoriteRepository keeps the ledger in process. The mutex stands in for the
// database uniqueness constraint under concurrent toggles.
type FavoriteRepository struct {
	mu    sync.Mutex
	rows  map[[2]string]favorite.Favorite
	clubs *ClubRepository
}

func NewFavoriteRepository(clubs *ClubRepository) *FavoriteRepository {
	return &FavoriteRepository{
		rows:  make(map[[2]string]favorite.Favorite),
		clubs: clubs,
	}
}

func (r *FavoriteRepository) Toggle(_ context.Context, profileID, clubID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{profileID, clubID}
	if _, exists := r.rows[key]; exists {
		delete(r.rows, key)
		return false, nil
	}

	r.rows[key] = favorite.Favorite{
		ProfileID: profileID,
		ClubID:    clubID,
		CreatedAt: time.Now().UTC(),
	}

	return true, nil
}

func (r *FavoriteRepository) ListClubs(ctx context.Context, profileID string) ([]club.Club, error) {
	r.mu.Lock()
	entries := make([]favorite.Favorite, 0, len(r.rows))
	for _, f := range r.rows {
		if f.ProfileID == profileID {
			entries = append(entries, f)
		}
	}
	r.mu.Unlock()

	// oldest favorite first, matching the database ordering
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ClubID < entries[j].ClubID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	out := make([]club.Club, 0, len(entries))
	for _, f := range entries {
		c, ok, err := r.clubs.GetByID(ctx, f.ClubID)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *FavoriteRepository) Exists(_ context.Context, profileID, clubID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.rows[[2]string{profileID, clubID}]

	return ok, nil
}
