package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streamlens/streamlens-server/internal/aggregate"
	"github.com/streamlens/streamlens-server/internal/service"
)

func (s *Server) registerDashboardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboardSummary",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/summary",
		Summary:     "Catalog summary",
		Description: "Headline statistics for the filtered catalog view",
		Tags:        []string{"Dashboard"},
	}, s.handleSummary)

	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboardOverview",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/overview",
		Summary:     "Content mix charts",
		Description: "Type, rating, decade, duration, and season distributions",
		Tags:        []string{"Dashboard"},
	}, s.handleOverview)

	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboardGenres",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/genres",
		Summary:     "Genre and people charts",
		Description: "Genre rankings and trends plus top directors and cast",
		Tags:        []string{"Dashboard"},
	}, s.handleGenres)

	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboardGeography",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/geography",
		Summary:     "Geography charts",
		Description: "Country rankings, the world map, and country crosstabs",
		Tags:        []string{"Dashboard"},
	}, s.handleGeography)

	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboardTrends",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/trends",
		Summary:     "Time trend charts",
		Description: "Release and catalog-addition trends over time",
		Tags:        []string{"Dashboard"},
	}, s.handleTrends)
}

// DashboardInput carries the shared filter controls for chart endpoints.
type DashboardInput struct {
	FilterParams
}

// SummaryOutput wraps the summary statistics for huma.
type SummaryOutput struct {
	Body aggregate.Summary
}

// OverviewOutput wraps the content-mix charts for huma.
type OverviewOutput struct {
	Body service.OverviewCharts
}

// GenresOutput wraps the genre and people charts for huma.
type GenresOutput struct {
	Body service.GenreCharts
}

// GeographyOutput wraps the geography charts for huma.
type GeographyOutput struct {
	Body service.GeographyCharts
}

// TrendsOutput wraps the time-trend charts for huma.
type TrendsOutput struct {
	Body service.TrendCharts
}

func (s *Server) handleSummary(_ context.Context, input *DashboardInput) (*SummaryOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	return &SummaryOutput{Body: s.dashboards.Summary(input.filterQuery())}, nil
}

func (s *Server) handleOverview(_ context.Context, input *DashboardInput) (*OverviewOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	return &OverviewOutput{Body: s.dashboards.Overview(input.filterQuery())}, nil
}

func (s *Server) handleGenres(_ context.Context, input *DashboardInput) (*GenresOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	return &GenresOutput{Body: s.dashboards.Genres(input.filterQuery())}, nil
}

func (s *Server) handleGeography(_ context.Context, input *DashboardInput) (*GeographyOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	return &GeographyOutput{Body: s.dashboards.Geography(input.filterQuery())}, nil
}

func (s *Server) handleTrends(_ context.Context, input *DashboardInput) (*TrendsOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	return &TrendsOutput{Body: s.dashboards.Trends(input.filterQuery())}, nil
}
