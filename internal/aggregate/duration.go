package aggregate

import (
	"math"
	"sort"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/domain"
)

// HistogramBin is one bucket of a duration histogram. Lo is inclusive;
// Hi is exclusive except for the last bin, which closes the range.
type HistogramBin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// MovieDurationHistogram buckets movie runtimes (minutes) into at most
// bins equal-width bins spanning the observed range. Rows that are not
// movies or carry an unparseable duration are skipped. Returns nil when
// no runtime survives.
func MovieDurationHistogram(view catalog.View, bins int) []HistogramBin {
	if bins <= 0 {
		bins = 1
	}

	var minutes []int
	for i := range view {
		t := &view[i]
		if t.Type != domain.TypeMovie {
			continue
		}
		if v, ok := t.DurationValue(); ok {
			minutes = append(minutes, v)
		}
	}
	if len(minutes) == 0 {
		return nil
	}

	lo, hi := minutes[0], minutes[0]
	for _, m := range minutes[1:] {
		lo = min(lo, m)
		hi = max(hi, m)
	}
	if lo == hi {
		return []HistogramBin{{Lo: float64(lo), Hi: float64(hi), Count: len(minutes)}}
	}

	width := float64(hi-lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for b := range out {
		out[b].Lo = float64(lo) + float64(b)*width
		out[b].Hi = float64(lo) + float64(b+1)*width
	}
	out[bins-1].Hi = float64(hi)

	for _, m := range minutes {
		b := int(math.Floor(float64(m-lo) / width))
		if b >= bins {
			b = bins - 1
		}
		out[b].Count++
	}
	return out
}

// SeasonCount is one (season length, show count) pair.
type SeasonCount struct {
	Seasons int `json:"seasons"`
	Count   int `json:"count"`
}

// SeasonCounts tallies TV shows by season count, ascending, keeping the
// first limit season lengths (0 keeps all). Shows with an unparseable
// duration are skipped.
func SeasonCounts(view catalog.View, limit int) []SeasonCount {
	counts := make(map[int]int)
	for i := range view {
		t := &view[i]
		if t.Type != domain.TypeTVShow {
			continue
		}
		if v, ok := t.DurationValue(); ok {
			counts[v]++
		}
	}

	out := make([]SeasonCount, 0, len(counts))
	for s, c := range counts {
		out = append(out, SeasonCount{Seasons: s, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seasons < out[j].Seasons })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
