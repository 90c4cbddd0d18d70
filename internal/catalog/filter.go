package catalog

import (
	"math"

	"github.com/streamlens/streamlens-server/internal/domain"
)

// View is a row subset of the catalog. Views are always fresh slices;
// applying a filter never mutates the snapshot it came from.
type View []domain.Title

// Filter holds the dashboard's shared predicates. The three predicates
// are ANDed. An empty Types or Ratings set is a valid, distinct state
// from "all": it selects nothing. Callers that mean "all" must pass the
// observed values (see Snapshot.Types / Snapshot.Ratings).
type Filter struct {
	Types   []string
	Ratings []string
	YearLo  int // inclusive; 0 means unbounded below
	YearHi  int // inclusive; 0 means unbounded above
}

// yearBounded reports whether the filter constrains the release year at all.
func (f Filter) yearBounded() bool {
	return f.YearLo > 0 || f.YearHi > 0
}

// Apply filters the given rows. Deterministic, idempotent, no side
// effects: re-applying the same filter to its own output returns the
// same row set. Rows with an absent release year are excluded from any
// year-bounded result.
func Apply(titles []domain.Title, f Filter) View {
	types := toSet(f.Types)
	ratings := toSet(f.Ratings)

	hi := f.YearHi
	if f.yearBounded() && hi == 0 {
		hi = math.MaxInt
	}

	out := make(View, 0, len(titles))
	for i := range titles {
		t := &titles[i]
		if !types[string(t.Type)] || !ratings[t.Rating] {
			continue
		}
		if f.yearBounded() {
			if !t.HasReleaseYear() || t.ReleaseYear < f.YearLo || t.ReleaseYear > hi {
				continue
			}
		}
		out = append(out, *t)
	}
	return out
}

// Apply filters the current snapshot's rows.
func (s *Snapshot) Apply(f Filter) View {
	return Apply(s.Titles, f)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
