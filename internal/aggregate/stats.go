package aggregate

import (
	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/domain"
)

// Summary holds the headline numbers of a view.
type Summary struct {
	Total              int    `json:"total"`
	Movies             int    `json:"movies"`
	TVShows            int    `json:"tv_shows"`
	EarliestYear       int    `json:"earliest_year"`
	LatestYear         int    `json:"latest_year"`
	AverageReleaseYear int    `json:"average_release_year"`
	UniqueCountries    int    `json:"unique_countries"`
	UniqueDirectors    int    `json:"unique_directors"`
	MostCommonRating   string `json:"most_common_rating"`
}

// Summarize computes the view's headline numbers. Year figures cover
// rows with a present release year; the unique counts are over whole
// cells, not split tokens, so a multi-country cell counts once. Rating
// ties resolve to the first-encountered rating.
func Summarize(view catalog.View) Summary {
	s := Summary{Total: len(view)}

	countries := make(map[string]bool)
	directors := make(map[string]bool)
	var yearSum, yearN int
	for i := range view {
		t := &view[i]
		switch t.Type {
		case domain.TypeMovie:
			s.Movies++
		case domain.TypeTVShow:
			s.TVShows++
		}
		if y := t.ReleaseYear; y > 0 {
			yearSum += y
			yearN++
			if s.EarliestYear == 0 || y < s.EarliestYear {
				s.EarliestYear = y
			}
			if y > s.LatestYear {
				s.LatestYear = y
			}
		}
		if t.Country != "" {
			countries[t.Country] = true
		}
		if t.Director != "" {
			directors[t.Director] = true
		}
	}
	if yearN > 0 {
		s.AverageReleaseYear = yearSum / yearN
	}
	s.UniqueCountries = len(countries)
	s.UniqueDirectors = len(directors)

	if ratings := TopTokens(view, FieldRating, 1); len(ratings) > 0 {
		s.MostCommonRating = ratings[0].Token
	}
	return s
}
