package charts

import (
	"fmt"

	"github.com/streamlens/streamlens-server/internal/aggregate"
	"github.com/streamlens/streamlens-server/internal/catalog"
)

// TypeBreakdown is the movie/TV split pie.
func TypeBreakdown(view catalog.View) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldType, 0)
	return barOf(KindPie, "Content by Type", table.Tokens(), counts(table))
}

// TopRatings is the most common content ratings bar.
func TopRatings(view catalog.View, n int) Spec {
	table := aggregate.TopTokens(view, aggregate.FieldRating, n)
	return barOf(KindBar, "Top Ratings", table.Tokens(), counts(table))
}

// DecadeDonut shows releases per decade.
func DecadeDonut(view catalog.View) Spec {
	decades := aggregate.DecadeCounts(view)
	labels := make([]string, len(decades))
	values := make([]int, len(decades))
	for i, dc := range decades {
		labels[i] = fmt.Sprintf("%ds", dc.Year)
		values[i] = dc.Count
	}
	return barOf(KindDonut, "Releases by Decade", labels, values)
}

// DecadeTypeStack is the decade-by-type stacked bar. Labels are the
// decades; each content type contributes one series.
func DecadeTypeStack(view catalog.View) Spec {
	grid := aggregate.DecadeTypeCrossTab(view)
	spec := Spec{
		Kind:   KindStackedBar,
		Title:  "Type Split by Decade",
		Labels: grid.Rows,
		Series: make([]Series, len(grid.Cols)),
	}
	for c, typ := range grid.Cols {
		values := make([]int, len(grid.Rows))
		for r := range grid.Rows {
			values[r] = grid.Values[r][c]
		}
		spec.Series[c] = Series{Name: typ, Values: values}
	}
	return spec
}

// MovieDurations is the movie runtime histogram.
func MovieDurations(view catalog.View, bins int) Spec {
	hist := aggregate.MovieDurationHistogram(view, bins)
	labels := make([]string, len(hist))
	values := make([]int, len(hist))
	for i, b := range hist {
		labels[i] = fmt.Sprintf("%.0f-%.0f", b.Lo, b.Hi)
		values[i] = b.Count
	}
	return barOf(KindHistogram, "Movie Duration (minutes)", labels, values)
}

// SeasonLengths is the TV shows by season count bar.
func SeasonLengths(view catalog.View, limit int) Spec {
	seasons := aggregate.SeasonCounts(view, limit)
	labels := make([]string, len(seasons))
	values := make([]int, len(seasons))
	for i, sc := range seasons {
		labels[i] = fmt.Sprintf("%d", sc.Seasons)
		values[i] = sc.Count
	}
	return barOf(KindBar, "TV Shows by Seasons", labels, values)
}

func counts(table aggregate.FrequencyTable) []int {
	out := make([]int, len(table))
	for i, tc := range table {
		out[i] = tc.Count
	}
	return out
}
