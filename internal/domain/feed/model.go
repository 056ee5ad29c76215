package feed

import (
	"strconv"
	"time"

	"pet-adoption/internal/platform/geo"
)

// NamedRef es la forma {"name": "..."} en la que el listing manda raza y tipo.
type NamedRef struct {
	Name string `json:"name"`
}

// Address es la dirección postal (formato brasileño) tal como llega del listing.
type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Size es la clasificación de tamaño que manda el listing (código numérico).
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return strconv.Itoa(int(s))
	}
}

// Record es un pet tal como lo devuelve el listing. Solo lectura para el feed.
type Record struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Breed  NamedRef `json:"breed"`
	Type   NamedRef `json:"type"`
	Size   Size     `json:"size"`
	Age    int      `json:"age"`
	Bio    string   `json:"bio"`
	Gender string   `json:"gender,omitempty"`
	Images []string `json:"images,omitempty"`

	Address Address `json:"address"`
}

// ListResult es la respuesta "tagged" del listing.
type ListResult struct {
	Success bool     `json:"success"`
	Value   []Record `json:"value"`
	Errors  []string `json:"errors"`
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Entity es el pet listo para mostrar. Siempre tiene coordenadas
// (reales o FallbackCoordinates).
type Entity struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Breed       string          `json:"breed"`
	Type        string          `json:"type"`
	Size        string          `json:"size"`
	Age         int             `json:"age"`
	Gender      string          `json:"gender"`
	Location    string          `json:"location"`
	Coordinates geo.Coordinates `json:"coordinates"`
	Description string          `json:"description"`
	Contact     Contact         `json:"contact"`
	Image       string          `json:"image"`
	Images      []string        `json:"images"`
}

const (
	DefaultGender = "Não informado"

	MsgFetchFailed = "Failed to fetch pets"
	MsgUnexpected  = "An unexpected error occurred while fetching pets"

	AlertTitle   = "Error"
	AlertMessage = "Could not load pets. Please try again."
)

// DefaultContact se usa hasta que el listing exponga datos de contacto reales.
var DefaultContact = Contact{
	Name:  "Pet owner",
	Phone: "Not provided",
	Email: "Not provided",
}

type ErrorKind string

const (
	ErrorKindNone        ErrorKind = ""
	ErrorKindFetchFailed ErrorKind = "fetch_failed"
	ErrorKindUnexpected  ErrorKind = "unexpected"
)

// State es la foto de lo publicado por el feed.
type State struct {
	Pets      []Entity   `json:"pets"`
	Loading   bool       `json:"loading"`
	Error     string     `json:"error,omitempty"`
	ErrorKind ErrorKind  `json:"error_kind,omitempty"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
}
