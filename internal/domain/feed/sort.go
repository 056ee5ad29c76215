package feed

import (
	"cmp"
	"slices"

	"pet-adoption/internal/platform/geo"
)

// SortByDistance devuelve una copia ordenada por distancia a origin, de menor
// a mayor. Empates conservan el orden original. No modifica pets.
func SortByDistance(pets []Entity, origin geo.Coordinates) []Entity {
	type ranked struct {
		pet  Entity
		dist float64
	}

	tmp := make([]ranked, len(pets))
	for i, p := range pets {
		tmp[i] = ranked{pet: p, dist: geo.Distance(origin, p.Coordinates)}
	}
	slices.SortStableFunc(tmp, func(a, b ranked) int {
		return cmp.Compare(a.dist, b.dist)
	})

	out := make([]Entity, len(tmp))
	for i, r := range tmp {
		out[i] = r.pet
	}
	return out
}
