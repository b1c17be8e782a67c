package favorite

import "time"

// Favorite links a profile to a club. It stores identity only, never a
// denormalized copy of the club.
type Favorite struct {
	ProfileID string
	ClubID    string
	CreatedAt time.Time
}
