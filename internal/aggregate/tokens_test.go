package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/domain"
)

func TestTopTokens_SplitsAndTallies(t *testing.T) {
	view := catalog.View{
		{ListedIn: "Drama, Comedy"},
		{ListedIn: "Drama"},
		{ListedIn: "Action"},
	}

	got := TopTokens(view, FieldGenre, 0)

	assert.Equal(t, FrequencyTable{
		{Token: "Drama", Count: 2},
		{Token: "Comedy", Count: 1},
		{Token: "Action", Count: 1},
	}, got)
}

func TestTopTokens_TiesKeepEncounterOrder(t *testing.T) {
	view := catalog.View{
		{Country: "France"},
		{Country: "India"},
		{Country: "India, France"},
		{Country: "Japan"},
	}

	got := TopTokens(view, FieldCountry, 3)

	// France and India tie at 2; France was seen first.
	assert.Equal(t, []string{"France", "India", "Japan"}, got.Tokens())
}

func TestTopTokens_TruncatesToN(t *testing.T) {
	view := catalog.View{
		{Cast: "A, B, C, D"},
		{Cast: "A, B"},
		{Cast: "A"},
	}

	got := TopTokens(view, FieldCast, 2)

	assert.Equal(t, FrequencyTable{
		{Token: "A", Count: 3},
		{Token: "B", Count: 2},
	}, got)
}

func TestTopTokens_EmptyCellsDropRowlessly(t *testing.T) {
	view := catalog.View{
		{Director: ""},
		{Director: "Jane Doe"},
	}

	got := TopTokens(view, FieldDirector, 0)

	assert.Equal(t, FrequencyTable{{Token: "Jane Doe", Count: 1}}, got)
}

func TestTopTokens_Exclude(t *testing.T) {
	view := catalog.View{
		{Country: domain.SentinelUnknown},
		{Country: "Spain"},
	}

	got := TopTokens(view, FieldCountry, 0, WithExclude(domain.SentinelUnknown))

	assert.Equal(t, []string{"Spain"}, got.Tokens())
}

func TestTopTokens_SingleValuedFields(t *testing.T) {
	view := catalog.View{
		{Type: domain.TypeMovie, Rating: "PG-13"},
		{Type: domain.TypeMovie, Rating: "TV-MA"},
		{Type: domain.TypeTVShow, Rating: "TV-MA"},
	}

	assert.Equal(t, FrequencyTable{
		{Token: "Movie", Count: 2},
		{Token: "TV Show", Count: 1},
	}, TopTokens(view, FieldType, 0))
	assert.Equal(t, "TV-MA", TopTokens(view, FieldRating, 1)[0].Token)
}
