// Package aggregate provides the pure tallying functions behind the
// dashboard: frequency tables over multi-valued columns, grouped counts
// with complete dimensions, duration histograms, and summary statistics.
// Every function takes a view (a row subset of the catalog) and returns
// freshly-computed derived data; views are never mutated.
package aggregate

import (
	"sort"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/domain"
)

// Field identifies a catalog column that aggregations tally over.
type Field int

// Aggregatable fields. The multi-valued ones split on commas; Type and
// Rating are single-valued and tally whole cells.
const (
	FieldGenre Field = iota
	FieldCountry
	FieldDirector
	FieldCast
	FieldType
	FieldRating
)

// tokens extracts the field's tokens for one row. Multi-valued fields
// are comma-split and trimmed; empty cells yield nothing, so a row is
// never dropped for having them.
func (f Field) tokens(t *domain.Title) []string {
	switch f {
	case FieldGenre:
		return t.Genres()
	case FieldCountry:
		return t.Countries()
	case FieldDirector:
		return t.Directors()
	case FieldCast:
		return t.CastMembers()
	case FieldType:
		return []string{string(t.Type)}
	case FieldRating:
		if t.Rating == "" {
			return nil
		}
		return []string{t.Rating}
	default:
		return nil
	}
}

// TokenCount is one (token, count) pair of a frequency table.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// FrequencyTable is an ordered sequence of (token, count) pairs sorted
// by count descending; ties keep first-encountered token order.
type FrequencyTable []TokenCount

// Tokens returns just the tokens, in table order.
func (ft FrequencyTable) Tokens() []string {
	out := make([]string, len(ft))
	for i, tc := range ft {
		out[i] = tc.Token
	}
	return out
}

// Option adjusts a TopTokens tally.
type Option func(*tallyOptions)

type tallyOptions struct {
	exclude map[string]bool
}

// WithExclude drops the given tokens from the tally. The geography
// aggregates use it to keep the "Unknown" sentinel off the map.
func WithExclude(tokens ...string) Option {
	return func(o *tallyOptions) {
		if o.exclude == nil {
			o.exclude = make(map[string]bool, len(tokens))
		}
		for _, tok := range tokens {
			o.exclude[tok] = true
		}
	}
}

// TopTokens explodes the field across the view, tallies token
// occurrences, and returns the top n by count descending. n <= 0
// returns the complete table.
func TopTokens(view catalog.View, field Field, n int, opts ...Option) FrequencyTable {
	var o tallyOptions
	for _, opt := range opts {
		opt(&o)
	}

	counts := make(map[string]int)
	var order []string
	for i := range view {
		for _, tok := range field.tokens(&view[i]) {
			if o.exclude[tok] {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	table := make(FrequencyTable, len(order))
	for i, tok := range order {
		table[i] = TokenCount{Token: tok, Count: counts[tok]}
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	if n > 0 && len(table) > n {
		table = table[:n]
	}
	return table
}
