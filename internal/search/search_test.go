package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/streamlens-server/internal/domain"
)

func newTestIndex(t *testing.T, titles []domain.Title) *Index {
	t.Helper()

	ix, err := New(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })

	require.NoError(t, ix.Rebuild(titles))
	return ix
}

func testTitles() []domain.Title {
	return []domain.Title{
		{ID: "a", Type: domain.TypeMovie, Title: "The Irishman", Director: "Martin Scorsese",
			Cast: "Robert De Niro, Al Pacino", Country: "United States",
			ListedIn: "Dramas", Rating: "R", ReleaseYear: 2019},
		{ID: "b", Type: domain.TypeTVShow, Title: "Dark", Director: "",
			Cast: "Louis Hofmann", Country: "Germany",
			ListedIn: "International TV Shows, Sci-Fi", Rating: "TV-MA", ReleaseYear: 2017},
		{ID: "c", Type: domain.TypeMovie, Title: "Smith & Sons", Director: "Jane Smithson",
			Cast: "John Smith, Jane Doe", Country: "United Kingdom",
			ListedIn: "Comedies", Rating: "PG-13", ReleaseYear: 2005},
	}
}

func search(t *testing.T, ix *Index, p Params) *Page {
	t.Helper()
	if p.Size == 0 {
		p.Size = 10
	}
	page, err := ix.Search(context.Background(), p)
	require.NoError(t, err)
	return page
}

func TestSearch_SubstringAcrossPeopleFields(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	// "smith" lives in c's title, director, and cast; one hit, not three.
	page := search(t, ix, Params{Query: "smith"})
	assert.Equal(t, []string{"c"}, page.IDs)

	// Partial-word containment matches, and case is ignored.
	page = search(t, ix, Params{Query: "SCORSESE"})
	assert.Equal(t, []string{"a"}, page.IDs)

	page = search(t, ix, Params{Query: "pacin"})
	assert.Equal(t, []string{"a"}, page.IDs)
}

func TestSearch_NoCriteriaMatchesAll(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	page := search(t, ix, Params{})

	assert.Equal(t, uint64(3), page.Total)
	assert.Equal(t, []string{"a", "b", "c"}, page.IDs)
}

func TestSearch_GenreAndCountrySubstrings(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	page := search(t, ix, Params{Genre: "sci-fi"})
	assert.Equal(t, []string{"b"}, page.IDs)

	// "United" matches both the States and the Kingdom.
	page = search(t, ix, Params{Country: "united"})
	assert.Equal(t, []string{"a", "c"}, page.IDs)
}

func TestSearch_ExactFilters(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	page := search(t, ix, Params{Types: []string{"TV Show"}})
	assert.Equal(t, []string{"b"}, page.IDs)

	page = search(t, ix, Params{Ratings: []string{"R", "PG-13"}})
	assert.Equal(t, []string{"a", "c"}, page.IDs)
}

func TestSearch_YearWindow(t *testing.T) {
	titles := append(testTitles(), domain.Title{
		ID: "d", Type: domain.TypeMovie, Title: "Undated", Rating: "NR",
	})
	ix := newTestIndex(t, titles)

	// Inclusive on both ends; the undated row never enters a window.
	page := search(t, ix, Params{YearLo: 2017, YearHi: 2019})
	assert.Equal(t, []string{"a", "b"}, page.IDs)

	page = search(t, ix, Params{YearLo: 2018})
	assert.Equal(t, []string{"a"}, page.IDs)
}

func TestSearch_CriteriaAreANDed(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	page := search(t, ix, Params{Query: "smith", Types: []string{"TV Show"}})
	assert.Empty(t, page.IDs)

	page = search(t, ix, Params{Country: "united", Ratings: []string{"R"}})
	assert.Equal(t, []string{"a"}, page.IDs)
}

func TestSearch_PaginationKeepsFileOrder(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	page := search(t, ix, Params{From: 0, Size: 2})
	assert.Equal(t, uint64(3), page.Total)
	assert.Equal(t, []string{"a", "b"}, page.IDs)

	page = search(t, ix, Params{From: 2, Size: 2})
	assert.Equal(t, []string{"c"}, page.IDs)
}

func TestRebuild_ReplacesContents(t *testing.T) {
	ix := newTestIndex(t, testTitles())

	require.NoError(t, ix.Rebuild([]domain.Title{
		{ID: "x", Type: domain.TypeMovie, Title: "Replacement", Rating: "G"},
	}))

	count, err := ix.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	page := search(t, ix, Params{Query: "irishman"})
	assert.Empty(t, page.IDs)
}
