package service

import (
	"log/slog"
	"time"

	"github.com/streamlens/streamlens-server/internal/aggregate"
	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/charts"
	"github.com/streamlens/streamlens-server/internal/config"
)

// DashboardService computes the dashboard's aggregate views. Every
// method works on the snapshot current at call time, so a reload mid
// sequence gives each request a consistent view rather than a mix.
type DashboardService struct {
	store  *catalog.Store
	charts config.ChartsConfig
	logger *slog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(store *catalog.Store, charts config.ChartsConfig, logger *slog.Logger) *DashboardService {
	return &DashboardService{store: store, charts: charts, logger: logger}
}

// view applies the resolved filter to the current snapshot.
func (s *DashboardService) view(q FilterQuery) catalog.View {
	snap := s.store.Snapshot()
	return snap.Apply(resolve(snap, q, s.charts))
}

// Summary returns the filtered view's headline numbers.
func (s *DashboardService) Summary(q FilterQuery) aggregate.Summary {
	return aggregate.Summarize(s.view(q))
}

// OverviewCharts is the content-mix tab: what the catalog is made of.
type OverviewCharts struct {
	Types          charts.Spec `json:"types"`
	Ratings        charts.Spec `json:"ratings"`
	Decades        charts.Spec `json:"decades"`
	DecadeTypes    charts.Spec `json:"decade_types"`
	MovieDurations charts.Spec `json:"movie_durations"`
	Seasons        charts.Spec `json:"seasons"`
}

// Overview builds the content-mix charts for the filtered view.
func (s *DashboardService) Overview(q FilterQuery) OverviewCharts {
	view := s.view(q)
	return OverviewCharts{
		Types:          charts.TypeBreakdown(view),
		Ratings:        charts.TopRatings(view, s.charts.TopRatings),
		Decades:        charts.DecadeDonut(view),
		DecadeTypes:    charts.DecadeTypeStack(view),
		MovieDurations: charts.MovieDurations(view, s.charts.HistogramBins),
		Seasons:        charts.SeasonLengths(view, s.charts.SeasonLimit),
	}
}

// GenreCharts is the genres-and-people tab.
type GenreCharts struct {
	TopGenres  charts.Spec `json:"top_genres"`
	Treemap    charts.Spec `json:"treemap"`
	Trend      charts.Spec `json:"trend"`
	Directors  charts.Spec `json:"directors"`
	CastMember charts.Spec `json:"cast"`
}

// Genres builds the genre and people charts for the filtered view.
func (s *DashboardService) Genres(q FilterQuery) GenreCharts {
	view := s.view(q)
	return GenreCharts{
		TopGenres:  charts.TopGenres(view, s.charts.TopGenres),
		Treemap:    charts.GenreTreemap(view),
		Trend:      charts.GenreTrendLines(view, s.charts.TrendGenres),
		Directors:  charts.TopDirectors(view, s.charts.TopDirectors),
		CastMember: charts.TopCast(view, s.charts.TopCast),
	}
}

// GeographyCharts is the production-countries tab.
type GeographyCharts struct {
	TopCountries   charts.Spec `json:"top_countries"`
	Map            charts.Spec `json:"map"`
	CountryRatings charts.Spec `json:"country_ratings"`
	CountryTypes   charts.Spec `json:"country_types"`
}

// Geography builds the country charts for the filtered view.
func (s *DashboardService) Geography(q FilterQuery) GeographyCharts {
	view := s.view(q)
	return GeographyCharts{
		TopCountries:   charts.TopCountries(view, s.charts.TopCountries),
		Map:            charts.Choropleth(view),
		CountryRatings: charts.CountryRatingBubble(view, s.charts.BubbleCountries, s.charts.RatingsPerCountry),
		CountryTypes:   charts.CountryTypeSplit(view, s.charts.CountryTypeSplit),
	}
}

// TrendCharts is the time-series tab.
type TrendCharts struct {
	Releases     charts.Spec `json:"releases"`
	Added        charts.Spec `json:"added"`
	AddedHeatmap charts.Spec `json:"added_heatmap"`
	Monthly      charts.Spec `json:"monthly"`
	MonthlyPolar charts.Spec `json:"monthly_polar"`
}

// Trends builds the time-series charts for the filtered view.
func (s *DashboardService) Trends(q FilterQuery) TrendCharts {
	view := s.view(q)
	return TrendCharts{
		Releases:     charts.ReleaseTrendLine(view, s.charts.TrendFloorYear),
		Added:        charts.AddedTrendArea(view),
		AddedHeatmap: charts.AddedHeatmap(view),
		Monthly:      charts.MonthlyBar(view),
		MonthlyPolar: charts.MonthlyPolar(view),
	}
}

// dropdownAll is the no-constraint sentinel the dropdowns carry.
const dropdownAll = "All"

// FilterOptions describes what the filter controls should offer.
type FilterOptions struct {
	Types         []string `json:"types"`
	Ratings       []string `json:"ratings"`
	YearMin       int      `json:"year_min"`
	YearMax       int      `json:"year_max"`
	DefaultYearLo int      `json:"default_year_lo"`
	DefaultYearHi int      `json:"default_year_hi"`
	Genres        []string `json:"genres"`
	Countries     []string `json:"countries"`
}

// Options returns the filter controls for the current snapshot. The
// dropdown lists lead with the "All" sentinel followed by the first
// distinct tokens in file order, the way the source dashboard filled
// its selects.
func (s *DashboardService) Options() FilterOptions {
	snap := s.store.Snapshot()
	lo, hi := defaultWindow(snap, s.charts)
	yearMin, yearMax, ok := snap.YearBounds()
	if !ok {
		yearMin, yearMax = lo, hi
	}
	return FilterOptions{
		Types:         snap.Types(),
		Ratings:       snap.Ratings(),
		YearMin:       yearMin,
		YearMax:       yearMax,
		DefaultYearLo: lo,
		DefaultYearHi: hi,
		Genres:        withAll(snap.GenreTokens(s.charts.DropdownTokens)),
		Countries:     withAll(snap.CountryTokens(s.charts.DropdownTokens)),
	}
}

func withAll(tokens []string) []string {
	return append([]string{dropdownAll}, tokens...)
}

// Health reports the catalog snapshot's vitals for the health endpoint.
type Health struct {
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	LoadedAt string `json:"loaded_at"`
}

// Health returns the current snapshot's vitals.
func (s *DashboardService) Health() Health {
	snap := s.store.Snapshot()
	return Health{
		Path:     snap.Path,
		Rows:     len(snap.Titles),
		LoadedAt: snap.LoadedAt.UTC().Format(time.RFC3339),
	}
}
