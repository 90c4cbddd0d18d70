package aggregate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/domain"
)

// YearCount is one point of a per-year series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Grid is a two-dimensional count table. Both dimensions are complete:
// a (row, col) combination present in either dimension's domain gets a
// cell, zero-filled when no data lands in it.
type Grid struct {
	Rows   []string `json:"rows"`
	Cols   []string `json:"cols"`
	Values [][]int  `json:"values"` // Values[r][c]
}

// Month display names, January first.
var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthNames returns the three-letter month labels, January first.
func MonthNames() []string {
	return append([]string(nil), monthNames...)
}

// ReleaseTrend counts rows per release year, ascending, skipping rows
// with an absent year and years below floorYear (0 disables the floor).
func ReleaseTrend(view catalog.View, floorYear int) []YearCount {
	counts := make(map[int]int)
	for i := range view {
		y := view[i].ReleaseYear
		if y == 0 || y < floorYear {
			continue
		}
		counts[y]++
	}
	return sortedYearCounts(counts)
}

// AddedTrend counts rows per year added to the catalog, ascending.
// Rows with an absent added date are skipped.
func AddedTrend(view catalog.View) []YearCount {
	counts := make(map[int]int)
	for i := range view {
		if y := view[i].YearAdded; y > 0 {
			counts[y]++
		}
	}
	return sortedYearCounts(counts)
}

// MonthlyAdded tallies additions per calendar month across all years.
// The result always has twelve entries, January first, zero-filled.
func MonthlyAdded(view catalog.View) []TokenCount {
	var perMonth [12]int
	for i := range view {
		if m := view[i].MonthAdded; m >= 1 && m <= 12 {
			perMonth[m-1]++
		}
	}
	out := make([]TokenCount, 12)
	for m := range 12 {
		out[m] = TokenCount{Token: monthNames[m], Count: perMonth[m]}
	}
	return out
}

// MonthYearHeatmap cross-tabulates month added against year added.
// Rows are the twelve months, columns the observed years ascending;
// missing cells are zero, not omitted.
func MonthYearHeatmap(view catalog.View) Grid {
	yearSet := make(map[int]bool)
	type cell struct{ year, month int }
	counts := make(map[cell]int)
	for i := range view {
		t := &view[i]
		if t.YearAdded == 0 || t.MonthAdded == 0 {
			continue
		}
		yearSet[t.YearAdded] = true
		counts[cell{t.YearAdded, t.MonthAdded}]++
	}

	years := sortedKeys(yearSet)
	grid := Grid{
		Rows:   MonthNames(),
		Cols:   yearLabels(years),
		Values: make([][]int, 12),
	}
	for m := range 12 {
		grid.Values[m] = make([]int, len(years))
		for c, y := range years {
			grid.Values[m][c] = counts[cell{y, m + 1}]
		}
	}
	return grid
}

// DecadeCounts counts rows per release decade, ascending.
func DecadeCounts(view catalog.View) []YearCount {
	counts := make(map[int]int)
	for i := range view {
		if d, ok := view[i].Decade(); ok {
			counts[d]++
		}
	}
	return sortedYearCounts(counts)
}

// DecadeTypeCrossTab cross-tabulates release decade against content
// type. Rows are decades ascending, columns the observed types in
// file-encounter order; cells zero-fill.
func DecadeTypeCrossTab(view catalog.View) Grid {
	decadeSet := make(map[int]bool)
	var types []string
	typeSeen := make(map[string]bool)
	type cell struct {
		decade int
		typ    string
	}
	counts := make(map[cell]int)

	for i := range view {
		t := &view[i]
		d, ok := t.Decade()
		if !ok {
			continue
		}
		decadeSet[d] = true
		typ := string(t.Type)
		if !typeSeen[typ] {
			typeSeen[typ] = true
			types = append(types, typ)
		}
		counts[cell{d, typ}]++
	}

	decades := sortedKeys(decadeSet)
	grid := Grid{
		Rows:   yearLabels(decades),
		Cols:   types,
		Values: make([][]int, len(decades)),
	}
	for r, d := range decades {
		grid.Values[r] = make([]int, len(types))
		for c, typ := range types {
			grid.Values[r][c] = counts[cell{d, typ}]
		}
	}
	return grid
}

// GenreSeries is one genre's counts aligned against a shared year axis.
type GenreSeries struct {
	Genre  string `json:"genre"`
	Counts []int  `json:"counts"`
}

// GenreTrend holds per-year title counts for the top genres of a view.
type GenreTrend struct {
	Years  []int         `json:"years"`
	Series []GenreSeries `json:"series"`
}

// GenreTrendOverYears restricts the tally to the view's topK genres and
// counts their titles per release year. Every series spans the full
// year axis with zeros where a genre released nothing; the topK bound
// exists to keep the rendered chart legible, not for data integrity.
func GenreTrendOverYears(view catalog.View, topK int) GenreTrend {
	top := TopTokens(view, FieldGenre, topK)
	wanted := make(map[string]int, len(top))
	for i, tc := range top {
		wanted[tc.Token] = i
	}

	yearSet := make(map[int]bool)
	type cell struct {
		genre string
		year  int
	}
	counts := make(map[cell]int)
	for i := range view {
		t := &view[i]
		if t.ReleaseYear == 0 {
			continue
		}
		for _, g := range t.Genres() {
			if _, ok := wanted[g]; !ok {
				continue
			}
			yearSet[t.ReleaseYear] = true
			counts[cell{g, t.ReleaseYear}]++
		}
	}

	years := sortedKeys(yearSet)
	trend := GenreTrend{Years: years, Series: make([]GenreSeries, len(top))}
	for i, tc := range top {
		series := GenreSeries{Genre: tc.Token, Counts: make([]int, len(years))}
		for c, y := range years {
			series.Counts[c] = counts[cell{tc.Token, y}]
		}
		trend.Series[i] = series
	}
	return trend
}

// CountryRatingCount is one bubble of the country-vs-rating chart.
type CountryRatingCount struct {
	Country string `json:"country"`
	Rating  string `json:"rating"`
	Count   int    `json:"count"`
}

// CountryRatingCounts takes the view's topCountries producing countries
// and, for each, its ratingsPer most common ratings. Country membership
// is substring containment against the raw cell, matching the source
// dashboard's behavior (see detail-search matching semantics).
func CountryRatingCounts(view catalog.View, topCountries, ratingsPer int) []CountryRatingCount {
	top := TopTokens(view, FieldCountry, topCountries, WithExclude(domain.SentinelUnknown))

	var out []CountryRatingCount
	for _, country := range top.Tokens() {
		sub := countryView(view, country)
		for _, rc := range TopTokens(sub, FieldRating, ratingsPer) {
			out = append(out, CountryRatingCount{
				Country: country,
				Rating:  rc.Token,
				Count:   rc.Count,
			})
		}
	}
	return out
}

// CountryTypeCount is one country's movie/TV split.
type CountryTypeCount struct {
	Country string `json:"country"`
	Movies  int    `json:"movies"`
	TVShows int    `json:"tv_shows"`
}

// CountryTypeCounts splits the view's topN producing countries into
// movie and TV show counts.
func CountryTypeCounts(view catalog.View, topN int) []CountryTypeCount {
	top := TopTokens(view, FieldCountry, topN, WithExclude(domain.SentinelUnknown))

	out := make([]CountryTypeCount, 0, len(top))
	for _, country := range top.Tokens() {
		ctc := CountryTypeCount{Country: country}
		for _, t := range countryView(view, country) {
			switch t.Type {
			case domain.TypeMovie:
				ctc.Movies++
			case domain.TypeTVShow:
				ctc.TVShows++
			}
		}
		out = append(out, ctc)
	}
	return out
}

// countryView keeps rows whose country cell contains the given name as
// a substring.
func countryView(view catalog.View, country string) catalog.View {
	out := make(catalog.View, 0, len(view))
	for i := range view {
		if strings.Contains(view[i].Country, country) {
			out = append(out, view[i])
		}
	}
	return out
}

func sortedYearCounts(counts map[int]int) []YearCount {
	out := make([]YearCount, 0, len(counts))
	for y, c := range counts {
		out = append(out, YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func yearLabels(years []int) []string {
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}
