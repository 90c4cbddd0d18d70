package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streamlens/streamlens-server/internal/service"
)

// FilterParams are the catalog-wide filter controls shared by every
// dashboard and browse endpoint.
type FilterParams struct {
	Types   string `query:"types" doc:"Comma-separated title types. Omit to include every observed type; pass empty to select nothing."`
	Ratings string `query:"ratings" doc:"Comma-separated maturity ratings. Omit to include every observed rating; pass empty to select nothing."`
	YearLo  int    `query:"year_lo" validate:"omitempty,gte=0" doc:"Release-year window start. Omit both bounds for the default window."`
	YearHi  int    `query:"year_hi" validate:"omitempty,gte=0" doc:"Release-year window end."`

	hasTypes   bool
	hasRatings bool
}

var _ huma.Resolver = (*FilterParams)(nil)

// Resolve records which list parameters were present on the request.
// An absent list selects everything observed; an explicitly empty one
// selects nothing, so the two must stay distinguishable after parsing.
func (p *FilterParams) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	q := u.Query()
	_, p.hasTypes = q["types"]
	_, p.hasRatings = q["ratings"]
	return nil
}

func (p *FilterParams) filterQuery() service.FilterQuery {
	return service.FilterQuery{
		Types:      splitCSV(p.Types),
		HasTypes:   p.hasTypes,
		Ratings:    splitCSV(p.Ratings),
		HasRatings: p.hasRatings,
		YearLo:     p.YearLo,
		YearHi:     p.YearHi,
	}
}

// splitCSV splits a comma-separated parameter, dropping empty tokens.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for t := range strings.SplitSeq(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
