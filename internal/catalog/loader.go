// Package catalog loads the streaming-catalog table from disk and serves
// immutable in-memory snapshots of it to the rest of the application.
package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/streamlens/streamlens-server/internal/domain"
	domainerrors "github.com/streamlens/streamlens-server/internal/errors"
	"github.com/streamlens/streamlens-server/internal/id"
)

// Columns the source file must carry. Extra columns are ignored.
var requiredColumns = []string{
	"type", "title", "director", "cast", "country",
	"date_added", "release_year", "rating", "duration",
	"listed_in", "description",
}

// Date layouts tolerated in the date_added column. The Kaggle export uses
// "September 9, 2019"; ISO dates show up in hand-edited files.
var dateLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
}

// Load reads and cleans the catalog file at path.
//
// A missing or unreadable file is a load failure: the caller gets an error
// and no partial table. Per-row problems (unparsable date or year) are
// localized: the offending field is left absent and the row is retained.
func Load(path string) ([]domain.Title, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeUnavailable, "catalog file %s not readable", path)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]domain.Title, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, guarded per-cell below

	header, err := cr.Read()
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, "catalog file has no header row")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, domainerrors.Validationf("catalog file missing column %q", name)
		}
	}

	var titles []domain.Title
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, "read catalog row")
		}

		cell := func(name string) string {
			i := cols[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		t := domain.Title{
			ID:          id.MustGenerate("ttl"),
			Type:        domain.ContentType(cell("type")),
			Title:       cell("title"),
			Director:    cell("director"),
			Cast:        cell("cast"),
			Country:     fillMissing(cell("country"), domain.SentinelUnknown),
			Rating:      fillMissing(cell("rating"), domain.SentinelNotRated),
			Duration:    fillMissing(cell("duration"), domain.SentinelUnknown),
			ListedIn:    cell("listed_in"),
			Description: cell("description"),
		}

		// Unparsable dates and years stay absent; the row is kept.
		if added, ok := parseDate(cell("date_added")); ok {
			t.DateAdded = &added
			t.YearAdded = added.Year()
			t.MonthAdded = int(added.Month())
		}
		if year, err := strconv.Atoi(cell("release_year")); err == nil && year > 0 {
			t.ReleaseYear = year
		}

		titles = append(titles, t)
	}

	return titles, nil
}

func fillMissing(v, sentinel string) string {
	if v == "" {
		return sentinel
	}
	return v
}

func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
