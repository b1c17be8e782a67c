package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := sonic.ConfigDefault.NewEncoder(w).Encode(map[string]any{
		"apiVersion": "2.0",
		"data":       data,
	})
	require.NoError(t, err)
}

func writeErrorEnvelope(t *testing.T, w http.ResponseWriter, status int, apiStatus, reason, message string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := sonic.ConfigDefault.NewEncoder(w).Encode(map[string]any{
		"apiVersion": "2.0",
		"error": map[string]any{
			"code":    status,
			"message": message,
			"status":  apiStatus,
			"errors": []map[string]any{
				{"domain": "fairway-finder", "reason": reason, "message": message},
			},
		},
	})
	require.NoError(t, err)
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: ""})
	require.Error(t, err)

	_, err = New(Config{BaseURL: "ftp://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme")
}

func TestFindClubs_EncodesCriteria(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/find_clubs", r.URL.Path)
		gotQuery = r.URL.Query()
		writeEnvelope(t, w, http.StatusOK, SearchPage{
			Results: []SearchResult{{Club: Club{ID: "pebble-beach-golf-links"}, DistanceMiles: 0}},
			Total:   1,
		})
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	page, err := c.FindClubs(context.Background(), SearchCriteria{
		ZipCode:        "93953",
		RadiusMiles:    10,
		PriceTier:      "$$$",
		Amenities:      []string{"driving_range", "lodging_on_site"},
		IncludeWeather: true,
	}, Page{Limit: 5, Offset: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"93953"}, gotQuery["zip_code"])
	assert.Equal(t, []string{"10"}, gotQuery["radius"])
	assert.Equal(t, []string{"$$$"}, gotQuery["price_tier"])
	assert.Equal(t, []string{"true"}, gotQuery["driving_range"])
	assert.Equal(t, []string{"true"}, gotQuery["lodging_on_site"])
	assert.Equal(t, []string{"true"}, gotQuery["include_weather"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
	assert.Equal(t, []string{"10"}, gotQuery["offset"])

	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "pebble-beach-golf-links", page.Results[0].ID)
}

func TestDo_DecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(t, w, http.StatusNotFound, "NOT_FOUND", "notFound", "club nope does not exist")
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.GetClub(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", apiErr.Status)
	assert.Equal(t, "notFound", apiErr.Reason)
	assert.True(t, IsNotFound(err))
}

func TestUpdateProfile_SendsTokenAndBody(t *testing.T) {
	var gotAuth string
	var gotBody ProfileUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/profiles/current", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(t, w, http.StatusOK, Profile{
			UserID:              "user-alice",
			PreferredPriceRange: gotBody.PreferredPriceRange,
			DesiredAmenities:    gotBody.DesiredAmenities,
		})
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL, Token: "token-alice"})
	require.NoError(t, err)

	profile, err := c.UpdateProfile(context.Background(), ProfileUpdate{
		PreferredPriceRange: "$",
		DesiredAmenities:    []string{"putting_green"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-alice", gotAuth)
	assert.Equal(t, "$", gotBody.PreferredPriceRange)
	assert.Equal(t, "user-alice", profile.UserID)
	assert.Equal(t, []string{"putting_green"}, profile.DesiredAmenities)
}

func TestToggleFavorite_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/favorites/augusta-national/toggle", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, FavoriteToggle{ClubID: "augusta-national", Favorited: true})
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL, Token: "token-alice"})
	require.NoError(t, err)

	toggle, err := c.ToggleFavorite(context.Background(), "augusta-national")
	require.NoError(t, err)
	assert.Equal(t, "augusta-national", toggle.ClubID)
	assert.True(t, toggle.Favorited)
}

func TestEnrichCourses_IsolatesFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/clubs/pebble-beach-golf-links/courses":
			writeEnvelope(t, w, http.StatusOK, []Course{
				{ID: "pebble-beach-main", ClubID: "pebble-beach-golf-links", Name: "Pebble Beach Golf Links", Holes: 18},
			})
		default:
			writeErrorEnvelope(t, w, http.StatusInternalServerError, "INTERNAL", "internalError", "boom")
		}
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	results := []SearchResult{
		{Club: Club{ID: "pebble-beach-golf-links"}},
		{Club: Club{ID: "spyglass-hill"}},
	}
	c.EnrichCourses(context.Background(), results)

	require.Len(t, results[0].Courses, 1)
	assert.Equal(t, "pebble-beach-main", results[0].Courses[0].ID)
	assert.Nil(t, results[1].Courses, "a failed lookup degrades only its own result")
}
