package pets

import (
	"strings"
	"time"
)

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

func (s Species) Valid() bool {
	return s == SpeciesDog || s == SpeciesCat
}

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Size es la clasificación de tamaño. En el listing viaja como código numérico.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func ParseSize(s string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return SizeSmall, true
	case "", "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	default:
		return 0, false
	}
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// Status del pet en el catálogo.
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

// Address es una dirección postal brasileña.
type Address struct {
	PostalCode   string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// Pet es un pet publicado para adopción.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species // dog, cat
	Breed   string
	Sex     Sex // male, female, unknown
	Size    Size
	Age     int // años

	Bio     string
	Address Address
	Images  []string

	Status    Status
	AdoptedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
