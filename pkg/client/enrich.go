package client

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

const enrichMaxConcurrency = 4

// EnrichCourses fills each result's Courses field by fetching the club's
// course listing over a bounded concurrent pool. A failed lookup leaves only
// that result without course data; siblings are unaffected.
func (c *Client) EnrichCourses(ctx context.Context, results []SearchResult) {
	if len(results) == 0 {
		return
	}

	p := pool.New().WithMaxGoroutines(enrichMaxConcurrency)
	for i := range results {
		i := i
		p.Go(func() {
			courses, err := c.ListClubCourses(ctx, results[i].ID)
			if err != nil {
				return
			}
			results[i].Courses = courses
		})
	}
	p.Wait()
}
