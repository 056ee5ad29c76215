package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/platform/geo"
)

func entityAt(id string, c geo.Coordinates) Entity {
	return Entity{ID: id, Coordinates: c}
}

func ids(pets []Entity) []string {
	out := make([]string, len(pets))
	for i, p := range pets {
		out[i] = p.ID
	}
	return out
}

func TestSortByDistance_NonDecreasing(t *testing.T) {
	origin := geo.Coordinates{Lat: 0, Lng: 0}
	pets := []Entity{
		entityAt("far", geo.Coordinates{Lat: 30, Lng: 30}),
		entityAt("near", geo.Coordinates{Lat: 1, Lng: 1}),
		entityAt("mid", geo.Coordinates{Lat: 10, Lng: 10}),
	}

	got := SortByDistance(pets, origin)

	assert.Equal(t, []string{"near", "mid", "far"}, ids(got))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t,
			geo.Distance(origin, got[i-1].Coordinates),
			geo.Distance(origin, got[i].Coordinates))
	}
}

func TestSortByDistance_TiesKeepOrder(t *testing.T) {
	same := geo.Coordinates{Lat: 5, Lng: 5}
	pets := []Entity{
		entityAt("b", same),
		entityAt("a", same),
		entityAt("c", same),
	}

	got := SortByDistance(pets, geo.Coordinates{})

	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestSortByDistance_DoesNotMutateInput(t *testing.T) {
	pets := []Entity{
		entityAt("far", geo.Coordinates{Lat: 40, Lng: 0}),
		entityAt("near", geo.Coordinates{Lat: 1, Lng: 0}),
	}

	got := SortByDistance(pets, geo.Coordinates{})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"far", "near"}, ids(pets))
	assert.Equal(t, []string{"near", "far"}, ids(got))
}

func TestSortByDistance_Empty(t *testing.T) {
	assert.Empty(t, SortByDistance(nil, geo.FallbackCoordinates))
}
