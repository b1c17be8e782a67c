package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

type ClubRepository struct {
	mu     sync.RWMutex
	items  map[string]club.Club
	orders []string
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	items := make(map[string]club.Club, len(clubs))
	orders := make([]string, 0, len(clubs))

	for _, c := range clubs {
		items[c.ID] = c
		orders = append(orders, c.ID)
	}

	return &ClubRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ClubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[clubID]
	if !ok {
		return club.Club{}, false, nil
	}

	return c, true, nil
}

func (r *ClubRepository) SearchWithinBounds(_ context.Context, bounds geo.Bounds, filter club.Filter) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []club.Club
	for _, id := range r.orders {
		c := r.items[id]
		if c.Location == nil || !bounds.Contains(*c.Location) {
			continue
		}
		if !filter.Matches(c) {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}

func (r *ClubRepository) Create(_ context.Context, c club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[c.ID]; exists {
		return fmt.Errorf("club %s already exists", c.ID)
	}
	r.items[c.ID] = c
	r.orders = append(r.orders, c.ID)

	return nil
}

func (r *ClubRepository) Update(_ context.Context, c club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[c.ID]; !exists {
		return fmt.Errorf("club %s not found", c.ID)
	}
	r.items[c.ID] = c

	return nil
}

func (r *ClubRepository) Delete(_ context.Context, clubID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[clubID]; !exists {
		return nil
	}
	delete(r.items, clubID)
	for i, id := range r.orders {
		if id == clubID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
