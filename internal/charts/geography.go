package charts

import (
	"fmt"
	"strings"

	"github.com/streamlens/streamlens-server/internal/aggregate"
	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/domain"
)

// TopCountries is the most producing countries bar. The "Unknown"
// sentinel never charts.
func TopCountries(view catalog.View, n int) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldCountry, n,
		aggregate.WithExclude(domain.SentinelUnknown))
	return barOf(KindBar, "Top Producing Countries", table.Tokens(), counts(table))
}

// Choropleth maps per-country production counts onto ISO-3 locations.
// Countries without a known code are left off the map and named in the
// notice, so a rendering gap is visible instead of silent.
func Choropleth(view catalog.View) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldCountry, 0,
		aggregate.WithExclude(domain.SentinelUnknown))

	var labels []string
	var values []int
	var unmapped []string
	for _, tc := range table {
		code, ok := geocode(tc.Token)
		if !ok {
			unmapped = append(unmapped, tc.Token)
			continue
		}
		labels = append(labels, code)
		values = append(values, tc.Count)
	}

	spec := barOf(KindChoropleth, "Production by Country", labels, values)
	if len(unmapped) > 0 {
		spec.Notice = fmt.Sprintf("not shown on map: %s", strings.Join(unmapped, ", "))
	}
	return spec
}

// CountryRatingBubble plots each top country's most common ratings.
func CountryRatingBubble(view catalog.View, topCountries, ratingsPer int) Spec {
	bubbles := aggregate.CountryRatingCounts(view, topCountries, ratingsPer)
	spec := Spec{
		Kind:   KindBubble,
		Title:  "Ratings by Country",
		Points: make([]Point, len(bubbles)),
	}
	for i, b := range bubbles {
		spec.Points[i] = Point{X: b.Country, Y: b.Rating, Value: b.Count}
	}
	return spec
}

// CountryTypeSplit is the movies-vs-TV grouped bar for the top
// producing countries.
func CountryTypeSplit(view catalog.View, topN int) Spec {
	split := aggregate.CountryTypeCounts(view, topN)
	spec := Spec{
		Kind:   KindGroupedBar,
		Title:  "Movies vs TV Shows by Country",
		Labels: make([]string, len(split)),
		Series: []Series{
			{Name: string(domain.TypeMovie), Values: make([]int, len(split))},
			{Name: string(domain.TypeTVShow), Values: make([]int, len(split))},
		},
	}
	for i, ctc := range split {
		spec.Labels[i] = ctc.Country
		spec.Series[0].Values[i] = ctc.Movies
		spec.Series[1].Values[i] = ctc.TVShows
	}
	return spec
}
