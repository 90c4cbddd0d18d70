package search

import (
	"github.com/blevesearch/bleve/v2"
	_ "github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/mapping"
)

// lowercaseKeyword analyzes a field into exactly one lowercase term.
// Wildcard queries against such a field behave like case-insensitive
// substring containment over the whole cell.
const lowercaseKeyword = "lowercase_keyword"

// buildIndexMapping creates the Bleve index mapping for catalog rows.
//
// The mapping serves three query shapes:
//  1. Substring containment on title/director/cast and the genre and
//     country cells (lowercase keyword fields, wildcard queries)
//  2. Exact filtering on type and rating (keyword terms)
//  3. Numeric ranges on release year, plus a row field that sorts
//     results back into file-encounter order
func buildIndexMapping() (mapping.IndexMapping, error) {
	indexMapping := bleve.NewIndexMapping()
	err := indexMapping.AddCustomAnalyzer(lowercaseKeyword, map[string]any{
		"type":      "custom",
		"tokenizer": single.Name,
		"token_filters": []any{
			lowercase.Name,
		},
	})
	if err != nil {
		return nil, err
	}
	indexMapping.DefaultAnalyzer = lowercaseKeyword

	docMapping := bleve.NewDocumentMapping()

	// Substring-searchable cells.
	for _, field := range []string{"title", "director", "cast", "country", "listed_in"} {
		fm := bleve.NewTextFieldMapping()
		fm.Analyzer = lowercaseKeyword
		fm.Store = false
		docMapping.AddFieldMappingsAt(field, fm)
	}

	// Exact-match filter fields.
	for _, field := range []string{"id", "type", "rating"} {
		fm := bleve.NewTextFieldMapping()
		fm.Analyzer = keyword.Name
		fm.Store = false
		docMapping.AddFieldMappingsAt(field, fm)
	}

	// Numerics: year for range filters, row for ordering.
	yearMapping := bleve.NewNumericFieldMapping()
	yearMapping.Store = false
	docMapping.AddFieldMappingsAt("release_year", yearMapping)

	rowMapping := bleve.NewNumericFieldMapping()
	rowMapping.Store = false
	docMapping.AddFieldMappingsAt("row", rowMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping, nil
}
