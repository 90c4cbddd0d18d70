package charts

import (
	"strconv"

	"github.com/streamlens/streamlens-server/internal/aggregate"
	"github.com/streamlens/streamlens-server/internal/catalog"
)

// TopGenres is the most frequent genres bar.
func TopGenres(view catalog.View, n int) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldGenre, n)
	return barOf(KindBar, "Top Genres", table.Tokens(), counts(table))
}

// GenreTreemap maps the full genre distribution.
func GenreTreemap(view catalog.View) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldGenre, 0)
	return barOf(KindTreemap, "Genre Distribution", table.Tokens(), counts(table))
}

// GenreTrendLines charts the top genres' title counts over release
// years, one line per genre on a shared year axis.
func GenreTrendLines(view catalog.View, topK int) Spec {
	trend := aggregate.GenreTrendOverYears(view, topK)
	spec := Spec{
		Kind:   KindLine,
		Title:  "Genre Popularity Over Time",
		Labels: make([]string, len(trend.Years)),
		Series: make([]Series, len(trend.Series)),
	}
	for i, y := range trend.Years {
		spec.Labels[i] = strconv.Itoa(y)
	}
	for i, gs := range trend.Series {
		spec.Series[i] = Series{Name: gs.Genre, Values: gs.Counts}
	}
	return spec
}

// TopDirectors is the most prolific directors bar. Rows without a
// director contribute nothing.
func TopDirectors(view catalog.View, n int) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldDirector, n)
	return barOf(KindBar, "Top Directors", table.Tokens(), counts(table))
}

// TopCast is the most frequent cast members bar.
func TopCast(view catalog.View, n int) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldCast, n)
	return barOf(KindBar, "Top Cast Members", table.Tokens(), counts(table))
}
