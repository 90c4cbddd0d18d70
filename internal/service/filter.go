// Package service implements the dashboard's use cases on top of the
// catalog store, the aggregators, and the search index. Handlers stay
// thin; everything a view needs is assembled here.
package service

import (
	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/config"
)

// FilterQuery carries the shared dashboard filter parameters as they
// arrived on the request. The Has flags distinguish an absent list
// parameter (select everything observed) from an explicitly empty one
// (select nothing). Year bounds of zero mean absent.
type FilterQuery struct {
	Types      []string
	HasTypes   bool
	Ratings    []string
	HasRatings bool
	YearLo     int
	YearHi     int
}

// resolve turns a FilterQuery into a concrete catalog filter against
// the given snapshot. Absent lists fill with everything the snapshot
// observed; absent year bounds fill with the configured default window
// clamped to the observed bounds.
func resolve(snap *catalog.Snapshot, q FilterQuery, charts config.ChartsConfig) catalog.Filter {
	f := catalog.Filter{
		Types:   q.Types,
		Ratings: q.Ratings,
		YearLo:  q.YearLo,
		YearHi:  q.YearHi,
	}
	if !q.HasTypes {
		f.Types = snap.Types()
	}
	if !q.HasRatings {
		f.Ratings = snap.Ratings()
	}

	defLo, defHi := defaultWindow(snap, charts)
	if f.YearLo == 0 {
		f.YearLo = defLo
	}
	if f.YearHi == 0 {
		f.YearHi = defHi
	}
	return f
}

// defaultWindow clamps the configured default year window to the years
// the snapshot actually contains.
func defaultWindow(snap *catalog.Snapshot, charts config.ChartsConfig) (lo, hi int) {
	lo, hi = charts.DefaultYearLo, charts.DefaultYearHi
	obsLo, obsHi, ok := snap.YearBounds()
	if !ok {
		return lo, hi
	}
	if lo < obsLo {
		lo = obsLo
	}
	if hi > obsHi {
		hi = obsHi
	}
	if lo > hi {
		lo, hi = obsLo, obsHi
	}
	return lo, hi
}
