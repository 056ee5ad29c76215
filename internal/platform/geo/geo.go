package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm es el radio medio usado por la fórmula de haversine.
const EarthRadiusKm = 6371.0

// Coordinates es un par lat/lng en grados decimales.
// No se valida rango: si upstream devuelve basura, llega tal cual.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// FallbackCoordinates (São Paulo) se usa cuando no se pudo geocodificar una dirección.
var FallbackCoordinates = Coordinates{Lat: -23.5505, Lng: -46.6333}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%f, %f)", c.Lat, c.Lng)
}

// Distance devuelve la distancia great-circle en km entre a y b.
func Distance(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
