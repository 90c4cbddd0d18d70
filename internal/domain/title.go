// Package domain contains the core entities for the StreamLens catalog.
package domain

import (
	"strconv"
	"strings"
	"time"
)

// ContentType distinguishes the two kinds of catalog entries.
type ContentType string

// Content types present in the source table.
const (
	TypeMovie  ContentType = "Movie"
	TypeTVShow ContentType = "TV Show"
)

// Sentinel values substituted for missing cells in specific columns.
// They distinguish "absent" from an ingestible empty string.
const (
	SentinelUnknown  = "Unknown"
	SentinelNotRated = "Not Rated"
)

// Title is one row of the catalog: a single movie or TV show.
// The catalog is immutable once loaded; downstream consumers work on
// row subsets (views), never on mutated titles.
type Title struct {
	ID          string      `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Director    string      `json:"director,omitempty"` // comma-separated list
	Cast        string      `json:"cast,omitempty"`     // comma-separated list
	Country     string      `json:"country"`            // comma-separated list; "Unknown" when missing
	DateAdded   *time.Time  `json:"date_added,omitempty"`
	YearAdded   int         `json:"year_added,omitempty"`  // derived from DateAdded; 0 when absent
	MonthAdded  int         `json:"month_added,omitempty"` // derived from DateAdded; 0 when absent
	ReleaseYear int         `json:"release_year,omitempty"`
	Rating      string      `json:"rating"`   // "Not Rated" when missing
	Duration    string      `json:"duration"` // minutes for movies, seasons for TV shows
	ListedIn    string      `json:"listed_in"`
	Description string      `json:"description,omitempty"`
}

// HasReleaseYear reports whether the release year parsed successfully.
func (t *Title) HasReleaseYear() bool {
	return t.ReleaseYear > 0
}

// Decade returns the release decade (e.g. 2010 for 2015).
// ok is false when the release year is absent.
func (t *Title) Decade() (decade int, ok bool) {
	if !t.HasReleaseYear() {
		return 0, false
	}
	return (t.ReleaseYear / 10) * 10, true
}

// DurationValue parses the leading integer out of the duration string:
// minutes for movies ("90 min" -> 90), season count for TV shows
// ("3 Seasons" -> 3). ok is false for malformed or sentinel durations;
// the row itself is always retained.
func (t *Title) DurationValue() (n int, ok bool) {
	s := strings.TrimSpace(t.Duration)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Directors returns the individual director names.
func (t *Title) Directors() []string { return SplitList(t.Director) }

// CastMembers returns the individual cast names.
func (t *Title) CastMembers() []string { return SplitList(t.Cast) }

// Countries returns the individual production countries.
func (t *Title) Countries() []string { return SplitList(t.Country) }

// Genres returns the individual genre/category tags.
func (t *Title) Genres() []string { return SplitList(t.ListedIn) }

// SplitList splits a multi-valued cell on commas, trims surrounding
// whitespace from each token, and drops empty tokens. An empty cell
// yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
