package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streamlens/streamlens-server/internal/service"
)

func (s *Server) registerFilterRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getFilterOptions",
		Method:      http.MethodGet,
		Path:        "/api/v1/filters",
		Summary:     "Filter options",
		Description: "Values the filter controls should offer for the current catalog",
		Tags:        []string{"Filters"},
	}, s.handleFilterOptions)
}

// FilterOptionsOutput wraps the filter control values for huma.
type FilterOptionsOutput struct {
	Body service.FilterOptions
}

func (s *Server) handleFilterOptions(_ context.Context, _ *struct{}) (*FilterOptionsOutput, error) {
	return &FilterOptionsOutput{Body: s.dashboards.Options()}, nil
}
