package search

import (
	"context"
	"math"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	apperrors "github.com/streamlens/streamlens-server/internal/errors"
)

// Params configures one catalog lookup. All criteria are ANDed.
type Params struct {
	// Substring criteria, matched case-insensitively against whole
	// cells. Query spans title, director, and cast; Genre and Country
	// match their own cells.
	Query   string
	Genre   string
	Country string

	// Exact-match filters, ORed within each list. Empty lists add no
	// constraint here; callers that want "select nothing" semantics
	// short-circuit before querying.
	Types   []string
	Ratings []string

	// Release year window, inclusive. Active when either bound is set;
	// rows without a release year fall outside any active window.
	YearLo int
	YearHi int

	// Pagination over the matched rows in file-encounter order.
	From int
	Size int
}

// Page is one page of matching row IDs, ordered as the rows appear in
// the source file.
type Page struct {
	Total uint64   `json:"total"`
	IDs   []string `json:"ids"`
}

// Search executes the lookup and returns the requested page.
func (ix *Index) Search(ctx context.Context, p Params) (*Page, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	req := bleve.NewSearchRequestOptions(buildQuery(p), p.Size, p.From, false)
	req.SortBy([]string{"row"})

	res, err := ix.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "execute search")
	}

	page := &Page{Total: res.Total, IDs: make([]string, 0, len(res.Hits))}
	for _, hit := range res.Hits {
		page.IDs = append(page.IDs, hit.ID)
	}
	return page, nil
}

func buildQuery(p Params) query.Query {
	var queries []query.Query

	// Free-text criterion spans the people-facing cells.
	if p.Query != "" {
		pattern := substringPattern(p.Query)
		fields := []query.Query{}
		for _, field := range []string{"title", "director", "cast"} {
			wq := bleve.NewWildcardQuery(pattern)
			wq.SetField(field)
			fields = append(fields, wq)
		}
		queries = append(queries, bleve.NewDisjunctionQuery(fields...))
	}

	if p.Genre != "" {
		wq := bleve.NewWildcardQuery(substringPattern(p.Genre))
		wq.SetField("listed_in")
		queries = append(queries, wq)
	}
	if p.Country != "" {
		wq := bleve.NewWildcardQuery(substringPattern(p.Country))
		wq.SetField("country")
		queries = append(queries, wq)
	}

	if len(p.Types) > 0 {
		queries = append(queries, termDisjunction("type", p.Types))
	}
	if len(p.Ratings) > 0 {
		queries = append(queries, termDisjunction("rating", p.Ratings))
	}

	if p.YearLo > 0 || p.YearHi > 0 {
		lo := float64(p.YearLo)
		hi := float64(p.YearHi)
		if p.YearHi == 0 {
			hi = math.MaxFloat64
		}
		inclusive := true
		rq := bleve.NewNumericRangeInclusiveQuery(&lo, &hi, &inclusive, &inclusive)
		rq.SetField("release_year")
		queries = append(queries, rq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

func termDisjunction(field string, terms []string) query.Query {
	qs := make([]query.Query, len(terms))
	for i, term := range terms {
		tq := bleve.NewTermQuery(term)
		tq.SetField(field)
		qs[i] = tq
	}
	return bleve.NewDisjunctionQuery(qs...)
}
