package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationValue(t *testing.T) {
	tests := []struct {
		name     string
		title    Title
		want     int
		wantOK   bool
	}{
		{"movie minutes", Title{Type: TypeMovie, Duration: "90 min"}, 90, true},
		{"tv seasons", Title{Type: TypeTVShow, Duration: "3 Seasons"}, 3, true},
		{"single season", Title{Type: TypeTVShow, Duration: "1 Season"}, 1, true},
		{"sentinel", Title{Type: TypeMovie, Duration: SentinelUnknown}, 0, false},
		{"empty", Title{Type: TypeMovie, Duration: ""}, 0, false},
		{"leading whitespace", Title{Type: TypeMovie, Duration: "  120 min"}, 120, true},
		{"no leading digits", Title{Type: TypeMovie, Duration: "min 90"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.title.DurationValue()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecade(t *testing.T) {
	title := Title{ReleaseYear: 2015}
	decade, ok := title.Decade()
	assert.True(t, ok)
	assert.Equal(t, 2010, decade)

	missing := Title{}
	_, ok = missing.Decade()
	assert.False(t, ok)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two values", "Drama, Comedy", []string{"Drama", "Comedy"}},
		{"single value", "Drama", []string{"Drama"}},
		{"empty cell", "", nil},
		{"empty tokens discarded", "Drama,, ,Comedy", []string{"Drama", "Comedy"}},
		{"whitespace trimmed", "  United States ,  India ", []string{"United States", "India"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}
