package feed

import (
	"strings"

	"pet-adoption/internal/platform/geo"
)

// AddressQuery es lo que se le pasa al geocoder para resolver un record.
type AddressQuery struct {
	PostalCode string
	Address    string // calle + número
	City       string
	State      string
}

// Text arma el texto libre "address, city, state" (partes vacías se omiten).
func (q AddressQuery) Text() string {
	return joinNonEmpty(", ", q.Address, q.City, q.State)
}

func QueryFor(r Record) AddressQuery {
	return AddressQuery{
		PostalCode: strings.TrimSpace(r.Address.PostalCode),
		Address:    joinNonEmpty(", ", r.Address.Street, r.Address.Number),
		City:       strings.TrimSpace(r.Address.City),
		State:      strings.TrimSpace(r.Address.State),
	}
}

// ToEntity aplana un record a Entity con las coordenadas ya resueltas.
func ToEntity(r Record, coords geo.Coordinates) Entity {
	gender := strings.TrimSpace(r.Gender)
	if gender == "" {
		gender = DefaultGender
	}

	images := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		images = append(images, img)
	}
	primary := ""
	if len(images) > 0 {
		primary = images[0]
	}

	return Entity{
		ID:          r.ID,
		Name:        r.Name,
		Breed:       r.Breed.Name,
		Type:        r.Type.Name,
		Size:        r.Size.String(),
		Age:         r.Age,
		Gender:      gender,
		Location:    joinNonEmpty(", ", r.Address.City, r.Address.State),
		Coordinates: coords,
		Description: r.Bio,
		Contact:     DefaultContact,
		Image:       primary,
		Images:      images,
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
