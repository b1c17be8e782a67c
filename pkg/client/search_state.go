package client

import (
	"context"
	"fmt"
)

const defaultPageSize = 20

// SearchState drives a page-numbered club search. Pages are 1-based and every
// navigation call clamps into [1, TotalPages]. Changing the criteria resets to
// the first page and recomputes the total on the next fetch. Not safe for
// concurrent use.
type SearchState struct {
	client   *Client
	criteria SearchCriteria
	pageSize int
	page     int
	total    int
	loaded   bool
}

// Snapshot captures enough of a search to resume it later. Restoring re-issues
// the query; results are never replayed from a cache.
type Snapshot struct {
	Criteria SearchCriteria
	Page     int
	PageSize int
}

func NewSearchState(c *Client, criteria SearchCriteria, pageSize int) *SearchState {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &SearchState{
		client:   c,
		criteria: criteria,
		pageSize: pageSize,
		page:     1,
	}
}

// Search fetches the current page.
func (s *SearchState) Search(ctx context.Context) (SearchPage, error) {
	return s.fetch(ctx)
}

// SetCriteria replaces the filter and rewinds to the first page. The total is
// recomputed on the next fetch.
func (s *SearchState) SetCriteria(criteria SearchCriteria) {
	s.criteria = criteria
	s.page = 1
	s.total = 0
	s.loaded = false
}

func (s *SearchState) First(ctx context.Context) (SearchPage, error) {
	s.page = 1
	return s.fetch(ctx)
}

func (s *SearchState) Prev(ctx context.Context) (SearchPage, error) {
	if s.page > 1 {
		s.page--
	}
	return s.fetch(ctx)
}

func (s *SearchState) Next(ctx context.Context) (SearchPage, error) {
	if !s.loaded || s.page < s.TotalPages() {
		s.page++
	}
	return s.fetch(ctx)
}

func (s *SearchState) Last(ctx context.Context) (SearchPage, error) {
	if s.loaded {
		s.page = s.TotalPages()
	}
	return s.fetch(ctx)
}

func (s *SearchState) Criteria() SearchCriteria { return s.criteria }
func (s *SearchState) Page() int                { return s.page }
func (s *SearchState) PageSize() int            { return s.pageSize }

// Total is the result count reported by the most recent fetch.
func (s *SearchState) Total() int { return s.total }

// TotalPages is at least 1: an empty result still has one (empty) page.
func (s *SearchState) TotalPages() int {
	if !s.loaded || s.total <= 0 {
		return 1
	}

	pages := s.total / s.pageSize
	if s.total%s.pageSize != 0 {
		pages++
	}

	return pages
}

// Snapshot returns a restorable copy of the current position.
func (s *SearchState) Snapshot() Snapshot {
	return Snapshot{
		Criteria: s.criteria,
		Page:     s.page,
		PageSize: s.pageSize,
	}
}

// Restore resumes a snapshotted search by re-issuing the query. A page that no
// longer exists (the catalog shrank in the meantime) clamps to the last page.
func (s *SearchState) Restore(ctx context.Context, snap Snapshot) (SearchPage, error) {
	if snap.PageSize <= 0 {
		return SearchPage{}, fmt.Errorf("snapshot page size must be > 0")
	}
	if snap.Page < 1 {
		snap.Page = 1
	}

	s.criteria = snap.Criteria
	s.pageSize = snap.PageSize
	s.page = snap.Page
	s.total = 0
	s.loaded = false

	return s.fetch(ctx)
}

func (s *SearchState) fetch(ctx context.Context) (SearchPage, error) {
	if s.page < 1 {
		s.page = 1
	}

	page, err := s.client.FindClubs(ctx, s.criteria, Page{
		Limit:  s.pageSize,
		Offset: (s.page - 1) * s.pageSize,
	})
	if err != nil {
		return SearchPage{}, err
	}
	s.total = page.Total
	s.loaded = true

	// A stale page number can run past the end of a shrunken result set.
	// Clamp to the last page and fetch once more.
	if last := s.TotalPages(); s.page > last {
		s.page = last
		page, err = s.client.FindClubs(ctx, s.criteria, Page{
			Limit:  s.pageSize,
			Offset: (s.page - 1) * s.pageSize,
		})
		if err != nil {
			return SearchPage{}, err
		}
		s.total = page.Total
	}

	return page, nil
}
