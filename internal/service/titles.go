package service

import (
	"context"
	"log/slog"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/config"
	"github.com/streamlens/streamlens-server/internal/domain"
	"github.com/streamlens/streamlens-server/internal/search"
)

// castPreviewLen bounds the cast string on a detail card.
const castPreviewLen = 200

// TitlesService answers the detail browser: free-text search plus
// single-select genre/country narrowing over the filtered catalog.
type TitlesService struct {
	store  *catalog.Store
	index  *search.Index
	charts config.ChartsConfig
	logger *slog.Logger
}

// NewTitlesService creates a new titles service.
func NewTitlesService(store *catalog.Store, index *search.Index, charts config.ChartsConfig, logger *slog.Logger) *TitlesService {
	return &TitlesService{store: store, index: index, charts: charts, logger: logger}
}

// BrowseQuery is one detail-browser request.
type BrowseQuery struct {
	Filter FilterQuery

	// Query matches title, director, and cast by substring.
	Query string
	// Genre and Country narrow by their cells; empty or "All" means no
	// constraint.
	Genre   string
	Country string

	Page     int // 1-based; 0 means first page
	PageSize int // 0 means the configured default
}

// TitleCard is one row of the detail browser.
type TitleCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	ReleaseYear int      `json:"release_year,omitempty"`
	Duration    string   `json:"duration"`
	Rating      string   `json:"rating"`
	AddedOn     string   `json:"added_on,omitempty"`
	Country     string   `json:"country"`
	Director    string   `json:"director,omitempty"`
	Cast        string   `json:"cast,omitempty"`
	Genres      []string `json:"genres"`
	Description string   `json:"description"`
}

// BrowseStats summarizes the whole match set, not just the page.
type BrowseStats struct {
	Count              int `json:"count"`
	Movies             int `json:"movies"`
	TVShows            int `json:"tv_shows"`
	AverageReleaseYear int `json:"average_release_year"`
}

// BrowseResult is one page of detail cards plus match-set statistics.
type BrowseResult struct {
	Stats    BrowseStats `json:"stats"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Titles   []TitleCard `json:"titles"`
}

// Browse runs the detail query against the current snapshot.
func (s *TitlesService) Browse(ctx context.Context, q BrowseQuery) (*BrowseResult, error) {
	snap := s.store.Snapshot()
	f := resolve(snap, q.Filter, s.charts)

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = s.charts.DetailPageSize
	}

	result := &BrowseResult{Page: page, PageSize: size, Titles: []TitleCard{}}

	// An explicitly empty type or rating set selects nothing; skip the
	// index round trip.
	if len(f.Types) == 0 || len(f.Ratings) == 0 {
		return result, nil
	}

	params := search.Params{
		Query:   q.Query,
		Genre:   dropdownValue(q.Genre),
		Country: dropdownValue(q.Country),
		Types:   f.Types,
		Ratings: f.Ratings,
		YearLo:  f.YearLo,
		YearHi:  f.YearHi,
		// Fetch the full match set; statistics cover all matches and
		// the page is sliced locally.
		From: 0,
		Size: len(snap.Titles),
	}
	found, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Title, 0, len(found.IDs))
	for _, id := range found.IDs {
		if t, ok := snap.Title(id); ok {
			matches = append(matches, t)
		}
	}

	result.Stats = browseStats(matches)

	lo := (page - 1) * size
	if lo < len(matches) {
		hi := min(lo+size, len(matches))
		for i := lo; i < hi; i++ {
			result.Titles = append(result.Titles, card(&matches[i]))
		}
	}
	return result, nil
}

// dropdownValue maps the dropdown's "All" sentinel to no constraint.
func dropdownValue(v string) string {
	if v == dropdownAll {
		return ""
	}
	return v
}

func browseStats(matches []domain.Title) BrowseStats {
	st := BrowseStats{Count: len(matches)}
	var yearSum, yearN int
	for i := range matches {
		switch matches[i].Type {
		case domain.TypeMovie:
			st.Movies++
		case domain.TypeTVShow:
			st.TVShows++
		}
		if y := matches[i].ReleaseYear; y > 0 {
			yearSum += y
			yearN++
		}
	}
	if yearN > 0 {
		st.AverageReleaseYear = yearSum / yearN
	}
	return st
}

func card(t *domain.Title) TitleCard {
	c := TitleCard{
		ID:          t.ID,
		Title:       t.Title,
		Type:        string(t.Type),
		ReleaseYear: t.ReleaseYear,
		Duration:    t.Duration,
		Rating:      t.Rating,
		Country:     t.Country,
		Director:    t.Director,
		Cast:        t.Cast,
		Genres:      t.Genres(),
		Description: t.Description,
	}
	if t.DateAdded != nil {
		c.AddedOn = t.DateAdded.Format("2006-01-02")
	}
	if len(c.Cast) > castPreviewLen {
		c.Cast = c.Cast[:castPreviewLen] + "..."
	}
	return c
}
