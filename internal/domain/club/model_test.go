package club

import "testing"

func validClub() Club {
	return Club{
		ID:         "pebble-beach-golf-links",
		Name:       "Pebble Beach Golf Links",
		City:       "Pebble Beach",
		State:      "CA",
		Zip:        "93953",
		PriceTier:  PriceTierPremium,
		Difficulty: DifficultyHard,
		Holes:      18,
		Membership: MembershipPublic,
	}
}

func TestClubValidate(t *testing.T) {
	t.Parallel()

	if err := validClub().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Club)
	}{
		{"missing id", func(c *Club) { c.ID = "" }},
		{"missing name", func(c *Club) { c.Name = "" }},
		{"short zip", func(c *Club) { c.Zip = "9395" }},
		{"alpha zip", func(c *Club) { c.Zip = "9395a" }},
		{"bad price tier", func(c *Club) { c.PriceTier = "$$$$" }},
		{"bad difficulty", func(c *Club) { c.Difficulty = "Impossible" }},
		{"bad membership", func(c *Club) { c.Membership = "secret" }},
		{"negative holes", func(c *Club) { c.Holes = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := validClub()
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestFilterMatchesIsConjunctive(t *testing.T) {
	t.Parallel()

	c := validClub()
	c.Amenities.DrivingRange = true
	c.Amenities.Restaurant = true

	if !(Filter{}).Matches(c) {
		t.Fatal("empty filter must match everything")
	}
	if !(Filter{PriceTier: PriceTierPremium, Amenities: []Amenity{AmenityDrivingRange}}).Matches(c) {
		t.Fatal("satisfied criteria must match")
	}
	if (Filter{PriceTier: PriceTierPremium, Amenities: []Amenity{AmenityPullCart}}).Matches(c) {
		t.Fatal("one unmet amenity must reject the club")
	}
	if (Filter{PriceTier: PriceTierBudget}).Matches(c) {
		t.Fatal("mismatched price tier must reject the club")
	}
	if (Filter{Holes: 9}).Matches(c) {
		t.Fatal("mismatched holes count must reject the club")
	}
}

func TestFilterIsMonotonicallyNarrowing(t *testing.T) {
	t.Parallel()

	clubs := []Club{validClub()}
	second := validClub()
	second.ID = "spyglass-hill"
	second.Name = "Spyglass Hill"
	second.PriceTier = PriceTierMid
	clubs = append(clubs, second)

	count := func(f Filter) int {
		n := 0
		for _, c := range clubs {
			if f.Matches(c) {
				n++
			}
		}
		return n
	}

	base := count(Filter{})
	narrowed := count(Filter{PriceTier: PriceTierMid})
	if narrowed > base {
		t.Fatalf("adding a filter grew the result: %d > %d", narrowed, base)
	}
}

func TestAmenitiesSetAndDesired(t *testing.T) {
	t.Parallel()

	var a Amenities
	for _, flag := range AllAmenities {
		if !a.Set(flag, true) {
			t.Fatalf("flag %s not recognized", flag)
		}
		if !a.Has(flag) {
			t.Fatalf("flag %s not set", flag)
		}
	}
	if a.Set("spa", true) {
		t.Fatal("unknown flag must be rejected")
	}
	if got := len(a.Desired()); got != len(AllAmenities) {
		t.Fatalf("expected %d desired flags, got %d", len(AllAmenities), got)
	}
}
