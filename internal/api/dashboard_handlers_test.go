package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary_DefaultWindow(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/summary")
	require.Equal(t, http.StatusOK, code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	// The 1965 title falls outside the default year window.
	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, float64(2), data["movies"])
	assert.Equal(t, float64(1), data["tv_shows"])
	assert.Equal(t, "R", data["most_common_rating"])
}

func TestDashboardSummary_ExplicitWindow(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/summary?year_lo=1960&year_hi=1970")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1965), data["earliest_year"])
}

func TestDashboardSummary_ExplicitEmptyTypes(t *testing.T) {
	server := setupTestServer(t)

	// A present but empty types parameter selects nothing; an absent
	// one selects every observed type.
	code, envelope := doGet(t, server, "/api/v1/dashboard/summary?types=")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), data["total"])
}

func TestDashboardSummary_TypeFilter(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/summary?types=TV%20Show")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["tv_shows"])
}

func TestDashboardOverview(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/overview")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	types, ok := data["types"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pie", types["kind"])

	durations, ok := data["movie_durations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "histogram", durations["kind"])
}

func TestDashboardGenres(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/genres")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	top, ok := data["top_genres"].(map[string]any)
	require.True(t, ok)
	labels, ok := top["labels"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, labels)
	assert.Equal(t, "Dramas", labels[0])
}

func TestDashboardGeography(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/geography")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	worldMap, ok := data["map"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "choropleth", worldMap["kind"])
}

func TestDashboardTrends(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/dashboard/trends")
	require.Equal(t, http.StatusOK, code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	monthly, ok := data["monthly"].(map[string]any)
	require.True(t, ok)
	labels, ok := monthly["labels"].([]any)
	require.True(t, ok)
	assert.Len(t, labels, 12)
}
