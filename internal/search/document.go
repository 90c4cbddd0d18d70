// Package search provides full-text lookup over the catalog using
// Bleve. The index lives in memory and is rebuilt from each catalog
// snapshot; queries match by whole-field substring containment, the
// same semantics the dashboard's detail explorer exposes.
package search

import (
	"strings"

	"github.com/streamlens/streamlens-server/internal/domain"
)

// Document is the indexed form of one catalog row.
//
// Design note: text fields are indexed as single lowercase terms rather
// than tokenized words. Substring containment over a whole cell ("son"
// matching "Robert Johnson") is the contract, and a wildcard query
// against a one-term field is the cheapest way to honor it.
type Document struct {
	ID          string `json:"id"`
	Row         int    `json:"row"` // file-encounter position, drives result order
	Type        string `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Cast        string `json:"cast"`
	Country     string `json:"country"`
	ListedIn    string `json:"listed_in"`
	Rating      string `json:"rating"`
	ReleaseYear int    `json:"release_year,omitempty"`
}

// FromTitle converts a catalog row to its indexed form. row is the
// row's position in file-encounter order.
func FromTitle(t *domain.Title, row int) *Document {
	return &Document{
		ID:          t.ID,
		Row:         row,
		Type:        string(t.Type),
		Title:       t.Title,
		Director:    t.Director,
		Cast:        t.Cast,
		Country:     t.Country,
		ListedIn:    t.ListedIn,
		Rating:      t.Rating,
		ReleaseYear: t.ReleaseYear,
	}
}

// ToMap converts the document to a map with lowercase field names so
// they line up with the index mapping. A zero release year is omitted,
// which keeps undated rows out of year range queries.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{
		"id":        d.ID,
		"row":       d.Row,
		"type":      d.Type,
		"title":     d.Title,
		"director":  d.Director,
		"cast":      d.Cast,
		"country":   d.Country,
		"listed_in": d.ListedIn,
		"rating":    d.Rating,
	}
	if d.ReleaseYear > 0 {
		m["release_year"] = d.ReleaseYear
	}
	return m
}

// substringPattern turns user text into a wildcard pattern that matches
// any field containing it, case-insensitively. The query text is
// lowercased to line up with the analyzer; literal * and ? keep their
// wildcard meaning.
func substringPattern(q string) string {
	return "*" + strings.ToLower(q) + "*"
}
