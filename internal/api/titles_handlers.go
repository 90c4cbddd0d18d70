package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streamlens/streamlens-server/internal/service"
)

func (s *Server) registerTitleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "browseTitles",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles",
		Summary:     "Browse titles",
		Description: "Paged title cards with match-set statistics",
		Tags:        []string{"Titles"},
	}, s.handleBrowseTitles)
}

// TitlesInput contains parameters for browsing the catalog.
type TitlesInput struct {
	FilterParams
	Query    string `query:"q" validate:"omitempty,max=200" doc:"Substring match across title, director, and cast"`
	Genre    string `query:"genre" validate:"omitempty,max=100" doc:"Genre cell substring. Empty or All means no constraint."`
	Country  string `query:"country" validate:"omitempty,max=100" doc:"Country cell substring. Empty or All means no constraint."`
	Page     int    `query:"page" validate:"omitempty,gte=1" doc:"1-based page number (default 1)"`
	PageSize int    `query:"page_size" validate:"omitempty,gte=1,lte=500" doc:"Cards per page (default 100)"`
}

// TitlesOutput wraps one browse page for huma.
type TitlesOutput struct {
	Body service.BrowseResult
}

func (s *Server) handleBrowseTitles(ctx context.Context, input *TitlesInput) (*TitlesOutput, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	result, err := s.titles.Browse(ctx, service.BrowseQuery{
		Filter:   input.filterQuery(),
		Query:    input.Query,
		Genre:    input.Genre,
		Country:  input.Country,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		s.logger.Error("Browse failed", "error", err, "query", input.Query)
		return nil, err
	}

	return &TitlesOutput{Body: *result}, nil
}
