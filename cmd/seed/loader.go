package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
	"github.com/fairwayhq/fairway-finder/internal/domain/geo"
)

// clubRecord is one CSV row lifted into the domain model. A nil Location means
// the row carried no coordinates and must be geocoded from its ZIP before
// insert. HasGPS describes the club's default course.
type clubRecord struct {
	Club   club.Club
	HasGPS bool
	Line   int
}

// parseClubsCSV reads a header-driven club export. Recognized columns: id,
// name, street, city, state, zip, country, lat, lng, price_tier, difficulty,
// holes, membership, has_gps, and one column per amenity flag. Unrecognized
// columns are ignored so exports with extra bookkeeping fields load unchanged.
func parseClubsCSV(r io.Reader) ([]clubRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "zip"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []clubRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		c := club.Club{
			ID:         cell(row, "id"),
			Name:       cell(row, "name"),
			Street:     cell(row, "street"),
			City:       cell(row, "city"),
			State:      cell(row, "state"),
			Zip:        cell(row, "zip"),
			Country:    cell(row, "country"),
			PriceTier:  club.PriceTier(cell(row, "price_tier")),
			Difficulty: club.Difficulty(cell(row, "difficulty")),
			Membership: club.Membership(cell(row, "membership")),
		}
		if c.ID == "" {
			c.ID = slugify(c.Name)
		}

		if raw := cell(row, "holes"); raw != "" {
			holes, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: parse holes %q: %w", line, raw, err)
			}
			c.Holes = holes
		}

		latRaw, lngRaw := cell(row, "lat"), cell(row, "lng")
		if latRaw != "" && lngRaw != "" {
			lat, err := strconv.ParseFloat(latRaw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: parse lat %q: %w", line, latRaw, err)
			}
			lng, err := strconv.ParseFloat(lngRaw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: parse lng %q: %w", line, lngRaw, err)
			}
			c.Location = &geo.Point{Lat: lat, Lng: lng}
		}

		for _, flag := range club.AllAmenities {
			raw := cell(row, string(flag))
			if raw == "" {
				continue
			}
			value, err := parseCSVBool(raw)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: parse %s %q: %w", line, flag, raw, err)
			}
			c.Amenities.Set(flag, value)
		}

		hasGPS := false
		if raw := cell(row, "has_gps"); raw != "" {
			hasGPS, err = parseCSVBool(raw)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: parse has_gps %q: %w", line, raw, err)
			}
		}

		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}

		records = append(records, clubRecord{Club: c, HasGPS: hasGPS, Line: line})
	}

	return records, nil
}

// slugify derives a stable club ID from its name: lowercase, alphanumeric
// runs joined by single dashes.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func parseCSVBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	}

	return false, fmt.Errorf("not a boolean value")
}
