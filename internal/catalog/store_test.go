package catalog

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, rows string) (*Store, string) {
	t.Helper()
	path := writeCatalog(t, rows)
	st, err := New(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return st, path
}

func TestNew_MissingFileIsFatal(t *testing.T) {
	_, err := New("/nonexistent/catalog.csv", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestReload_SkipsWhenUnchanged(t *testing.T) {
	st, _ := testStore(t, `s1,Movie,A,,,,,2020,R,90 min,Drama,x`+"\n")

	before := st.Snapshot()
	require.NoError(t, st.Reload())

	// Same mtime: the snapshot (and its row IDs) must be reused.
	assert.Same(t, before, st.Snapshot())
}

func TestReload_PicksUpChanges(t *testing.T) {
	st, path := testStore(t, `s1,Movie,A,,,,,2020,R,90 min,Drama,x`+"\n")

	var reloaded *Snapshot
	st.OnReload(func(s *Snapshot) { reloaded = s })

	// Backdate then rewrite so the mtime is guaranteed to differ.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))
	require.NoError(t, os.WriteFile(path, []byte(testHeader+
		`s1,Movie,A,,,,,2020,R,90 min,Drama,x`+"\n"+
		`s2,TV Show,B,,,,,2021,TV-MA,2 Seasons,Comedy,y`+"\n"), 0o644))

	require.NoError(t, st.Reload())
	assert.Len(t, st.Snapshot().Titles, 2)
	require.NotNil(t, reloaded)
	assert.Same(t, st.Snapshot(), reloaded)
}

func TestReload_KeepsSnapshotOnFailure(t *testing.T) {
	st, path := testStore(t, `s1,Movie,A,,,,,2020,R,90 min,Drama,x`+"\n")
	before := st.Snapshot()

	require.NoError(t, os.Remove(path))
	assert.Error(t, st.Reload())
	assert.Same(t, before, st.Snapshot())
}

func TestSnapshot_Options(t *testing.T) {
	st, _ := testStore(t,
		`s1,Movie,A,,,"India, France",,2015,PG,90 min,"Drama, Comedy",x`+"\n"+
			`s2,TV Show,B,,,India,,2005,TV-MA,1 Season,"Drama, Kids' TV",y`+"\n"+
			`s3,Movie,C,,,,,2021,PG,100 min,Action,z`+"\n")

	snap := st.Snapshot()

	assert.Equal(t, []string{"Movie", "TV Show"}, snap.Types())
	assert.Equal(t, []string{"PG", "TV-MA"}, snap.Ratings())

	// Tokens surface in file-encounter order, capped by limit.
	assert.Equal(t, []string{"Drama", "Comedy", "Kids' TV", "Action"}, snap.GenreTokens(50))
	assert.Equal(t, []string{"Drama", "Comedy"}, snap.GenreTokens(2))
	assert.Equal(t, []string{"India", "France", "Unknown"}, snap.CountryTokens(50))

	lo, hi, ok := snap.YearBounds()
	require.True(t, ok)
	assert.Equal(t, 2005, lo)
	assert.Equal(t, 2021, hi)
}

func TestSnapshot_TitleLookup(t *testing.T) {
	st, _ := testStore(t, `s1,Movie,A,,,,,2020,R,90 min,Drama,x`+"\n")
	snap := st.Snapshot()

	got, ok := snap.Title(snap.Titles[0].ID)
	require.True(t, ok)
	assert.Equal(t, "A", got.Title)

	_, ok = snap.Title("ttl-missing")
	assert.False(t, ok)
}
