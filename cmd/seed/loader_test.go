package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwayhq/fairway-finder/internal/domain/club"
)

func TestParseClubsCSV(t *testing.T) {
	const input = `id,name,street,city,state,zip,country,lat,lng,price_tier,difficulty,holes,membership,has_gps,driving_range,lodging_on_site,notes
pebble-beach-golf-links,Pebble Beach Golf Links,1700 17-Mile Drive,Pebble Beach,CA,93953,USA,36.5681,-121.9500,$$$,Hard,18,public,true,true,yes,host of six US Opens
,Monterey Pines Golf Course,1250 Garden Road,Monterey,CA,93940,USA,,,$,Easy,18,military,,0,no,
`

	records, err := parseClubsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	pebble := records[0].Club
	assert.Equal(t, "pebble-beach-golf-links", pebble.ID)
	assert.Equal(t, club.PriceTierPremium, pebble.PriceTier)
	assert.Equal(t, club.MembershipPublic, pebble.Membership)
	require.NotNil(t, pebble.Location)
	assert.InDelta(t, 36.5681, pebble.Location.Lat, 1e-9)
	assert.True(t, pebble.Amenities.DrivingRange)
	assert.True(t, pebble.Amenities.LodgingOnSite)
	assert.True(t, records[0].HasGPS)
	assert.Equal(t, 2, records[0].Line)

	monterey := records[1].Club
	assert.Equal(t, "monterey-pines-golf-course", monterey.ID, "missing id falls back to a name slug")
	assert.Nil(t, monterey.Location, "rows without coordinates wait for the geocoder")
	assert.False(t, monterey.Amenities.DrivingRange)
	assert.False(t, records[1].HasGPS)
}

func TestParseClubsCSV_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "missing required column",
			input: "id,name\nx,Club X\n",
			want:  `missing required column "zip"`,
		},
		{
			name:  "bad zip",
			input: "name,zip\nClub X,123\n",
			want:  "zip code must be 5 digits",
		},
		{
			name:  "bad price tier",
			input: "name,zip,price_tier\nClub X,93940,$$$$\n",
			want:  "invalid price tier",
		},
		{
			name:  "bad amenity flag",
			input: "name,zip,driving_range\nClub X,93940,maybe\n",
			want:  "not a boolean value",
		},
		{
			name:  "bad latitude",
			input: "name,zip,lat,lng\nClub X,93940,north,-121.9\n",
			want:  "parse lat",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseClubsCSV(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDefaultCourse(t *testing.T) {
	c := defaultCourse(clubRecord{Club: club.Club{ID: "oddball", Name: "Oddball GC", Holes: 27}, HasGPS: true})
	assert.Equal(t, "oddball-main", c.ID)
	assert.Equal(t, "Oddball GC", c.Name)
	assert.Equal(t, 18, c.Holes, "a hole count that is not a playable layout falls back to 18")
	assert.True(t, c.HasGPS)

	c = defaultCourse(clubRecord{Club: club.Club{ID: "nine", Name: "Nine", Holes: 9}})
	assert.Equal(t, 9, c.Holes)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pebble-beach-golf-links", slugify("Pebble Beach Golf Links"))
	assert.Equal(t, "torrey-pines-golf-course-south", slugify("Torrey Pines Golf Course (South)"))
	assert.Equal(t, "augusta-national", slugify("  Augusta  National "))
}
