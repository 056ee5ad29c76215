package listing

import (
	"context"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/domain/pets"
)

// Catalog es la parte del catálogo que necesita el listing local.
type Catalog interface {
	List(ctx context.Context) ([]pets.Pet, error)
}

// Local sirve el listing desde el catálogo en proceso, sin pasar por HTTP.
// Es lo que usa la API cuando no hay listing.base_url configurado.
type Local struct {
	catalog Catalog
}

func NewLocal(c Catalog) *Local {
	return &Local{catalog: c}
}

func (l *Local) List(ctx context.Context) (feed.ListResult, error) {
	items, err := l.catalog.List(ctx)
	if err != nil {
		// Mismo contrato que el endpoint: el fallo del catálogo es un fallo reportado.
		return feed.ListResult{Success: false, Errors: []string{err.Error()}}, nil
	}

	out := make([]feed.Record, 0, len(items))
	for _, p := range items {
		out = append(out, ToRecord(p))
	}
	return feed.ListResult{Success: true, Value: out, Errors: []string{}}, nil
}

func ToRecord(p pets.Pet) feed.Record {
	gender := ""
	if p.Sex != pets.SexUnknown {
		gender = string(p.Sex)
	}
	return feed.Record{
		ID:     p.ID,
		Name:   p.Name,
		Breed:  feed.NamedRef{Name: p.Breed},
		Type:   feed.NamedRef{Name: string(p.Species)},
		Size:   feed.Size(p.Size),
		Age:    p.Age,
		Bio:    p.Bio,
		Gender: gender,
		Images: append([]string(nil), p.Images...),
		Address: feed.Address{
			PostalCode:   p.Address.PostalCode,
			Street:       p.Address.Street,
			Number:       p.Address.Number,
			Complement:   p.Address.Complement,
			Neighborhood: p.Address.Neighborhood,
			City:         p.Address.City,
			State:        p.Address.State,
		},
	}
}
