package api

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/config"
	"github.com/streamlens/streamlens-server/internal/search"
	"github.com/streamlens/streamlens-server/internal/service"
)

const fixtureCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,The Irishman,Martin Scorsese,"Robert De Niro, Al Pacino",United States,"November 27, 2019",2019,R,209 min,Dramas,A hitman looks back.
s2,TV Show,Dark,,"Louis Hofmann",Germany,"December 1, 2017",2017,TV-MA,3 Seasons,"International TV Shows, Sci-Fi",Time travel in Winden.
s3,Movie,Roma,Alfonso Cuaron,"Yalitza Aparicio",Mexico,"December 14, 2018",2018,R,135 min,Dramas,A year in Mexico City.
s4,Movie,Old Classic,Jane Smith,"John Smith",United States,"January 5, 2016",1965,PG,95 min,Classic Movies,Black and white.
`

// setupTestServer creates a test server backed by a temp catalog file.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

	logger := slog.New(slog.DiscardHandler)

	store, err := catalog.New(path, logger)
	require.NoError(t, err)

	index, err := search.New(logger)
	require.NoError(t, err)
	require.NoError(t, index.Rebuild(store.Snapshot().Titles))

	cfg := &config.Config{
		App: config.AppConfig{Environment: "development"},
		Server: config.ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Charts: config.ChartsConfig{
			TopRatings:        10,
			TopGenres:         15,
			TrendGenres:       8,
			TopDirectors:      10,
			TopCast:           10,
			TopCountries:      20,
			BubbleCountries:   15,
			RatingsPerCountry: 5,
			CountryTypeSplit:  10,
			SeasonLimit:       15,
			HistogramBins:     30,
			TrendFloorYear:    1990,
			DefaultYearLo:     2010,
			DefaultYearHi:     2021,
			DropdownTokens:    50,
			DetailPageSize:    100,
		},
	}

	dashboards := service.NewDashboardService(store, cfg.Charts, logger)
	titles := service.NewTitlesService(store, index, cfg.Charts, logger)

	server := NewServer(cfg, store, index, dashboards, titles, logger)
	t.Cleanup(func() {
		server.Close()
		_ = index.Close()
	})

	return server
}

// doGet performs a request against the test server and decodes the envelope.
func doGet(t *testing.T, server *Server, path string) (int, APIEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	var envelope APIEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w.Code, envelope
}

func TestHealthCheck(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/health")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, envelope.Success)
	assert.Equal(t, EnvelopeVersion, envelope.Version)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])

	components, ok := data["components"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, components, "catalog")
	assert.Contains(t, components, "search")
}

func TestFilterOptions(t *testing.T) {
	server := setupTestServer(t)

	code, envelope := doGet(t, server, "/api/v1/filters")
	require.Equal(t, http.StatusOK, code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, []any{"Movie", "TV Show"}, data["types"])
	assert.Equal(t, []any{"R", "TV-MA", "PG"}, data["ratings"])

	genres, ok := data["genres"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, genres)
	assert.Equal(t, "All", genres[0])

	// Default window clamps to the observed latest year.
	assert.Equal(t, float64(2010), data["default_year_lo"])
	assert.Equal(t, float64(2019), data["default_year_hi"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
