package course

import "fmt"

// Course is a playable 9/18-hole layout belonging to a club.
type Course struct {
	ID           string
	ClubID       string
	Name         string
	Holes        int
	HasGPS       bool
	CourseRating float64
	SlopeRating  int
}

func (c Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("course id is required")
	}
	if c.ClubID == "" {
		return fmt.Errorf("course club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("course name is required")
	}
	if c.Holes != 9 && c.Holes != 18 {
		return fmt.Errorf("course holes must be 9 or 18, got %d", c.Holes)
	}
	if c.SlopeRating < 0 {
		return fmt.Errorf("slope rating must not be negative")
	}

	return nil
}

// TeeBox is a starting-distance configuration on a course.
type TeeBox struct {
	ID           string
	CourseID     string
	Color        string
	Yardage      int
	Par          int
	SlopeRating  int
	CourseRating float64
}

func (t TeeBox) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tee box id is required")
	}
	if t.CourseID == "" {
		return fmt.Errorf("tee box course id is required")
	}
	if t.Color == "" {
		return fmt.Errorf("tee box color is required")
	}
	if t.Yardage <= 0 {
		return fmt.Errorf("tee box yardage must be greater than zero")
	}
	if t.Par <= 0 {
		return fmt.Errorf("tee box par must be greater than zero")
	}

	return nil
}
