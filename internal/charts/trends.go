package charts

import (
	"strconv"

	"github.com/streamlens/streamlens-server/internal/aggregate"
	"github.com/streamlens/streamlens-server/internal/catalog"
)

// ReleaseTrendLine charts titles per release year from floorYear on.
func ReleaseTrendLine(view catalog.View, floorYear int) Spec {
	return yearSeries(KindLine, "Releases per Year", aggregate.ReleaseTrend(view, floorYear))
}

// AddedTrendArea charts titles added to the catalog per year.
func AddedTrendArea(view catalog.View) Spec {
	return yearSeries(KindArea, "Titles Added per Year", aggregate.AddedTrend(view))
}

// AddedHeatmap is the month-by-year additions heatmap. Every observed
// year gets all twelve months, zero-filled.
func AddedHeatmap(view catalog.View) Spec {
	grid := aggregate.MonthYearHeatmap(view)
	spec := Spec{
		Kind:   KindHeatmap,
		Title:  "Additions by Month and Year",
		Labels: grid.Cols,
		Series: make([]Series, len(grid.Rows)),
	}
	for m, month := range grid.Rows {
		spec.Series[m] = Series{Name: month, Values: grid.Values[m]}
	}
	return spec
}

// MonthlyBar charts additions per calendar month across all years.
func MonthlyBar(view catalog.View) Spec {
	return monthSpec(KindBar, "Additions by Month", view)
}

// MonthlyPolar is the same monthly tally on a polar axis.
func MonthlyPolar(view catalog.View) Spec {
	return monthSpec(KindPolar, "Monthly Addition Pattern", view)
}

func monthSpec(kind Kind, title string, view catalog.View) Spec {
	monthly := aggregate.MonthlyAdded(view)
	labels := make([]string, len(monthly))
	values := make([]int, len(monthly))
	for i, tc := range monthly {
		labels[i] = tc.Token
		values[i] = tc.Count
	}
	return barOf(kind, title, labels, values)
}

func yearSeries(kind Kind, title string, years []aggregate.YearCount) Spec {
	labels := make([]string, len(years))
	values := make([]int, len(years))
	for i, yc := range years {
		labels[i] = strconv.Itoa(yc.Year)
		values[i] = yc.Count
	}
	return barOf(kind, title, labels, values)
}
