package google

import (
	"context"
	"net/url"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Geocoder usa la Geocoding API de Google Maps (o un endpoint compatible).
// Nunca propaga errores: cualquier fallo se loguea y devuelve ok=false.
type Geocoder struct {
	http   *httpclient.Client
	apiKey string
	log    logger.Logger
}

// New espera un httpclient con BaseURL apuntando al endpoint de geocoding.
func New(c *httpclient.Client, apiKey string, log logger.Logger) *Geocoder {
	if log == nil {
		log = logger.NewNop()
	}
	return &Geocoder{
		http:   c,
		apiKey: apiKey,
		log:    log.With(map[string]any{"component": "geocoder"}),
	}
}

type response struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"` // OK, ZERO_RESULTS, REQUEST_DENIED...
	ErrorMessage string `json:"error_message,omitempty"`
}

func (g *Geocoder) Geocode(ctx context.Context, q feed.AddressQuery) (geo.Coordinates, bool) {
	// una dirección vacía se envía igual; la API responde sin resultados
	address := q.Text()

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	var resp response
	if err := g.http.Get(ctx, "", params, &resp); err != nil {
		g.log.Warn("geocode request failed", map[string]any{
			"address": address,
			"err":     err,
		})
		return geo.Coordinates{}, false
	}

	if resp.Status != "OK" {
		g.log.Warn("geocode status not OK", map[string]any{
			"address": address,
			"status":  resp.Status,
			"message": resp.ErrorMessage,
		})
		return geo.Coordinates{}, false
	}
	if len(resp.Results) == 0 {
		g.log.Warn("geocode returned no results", map[string]any{"address": address})
		return geo.Coordinates{}, false
	}

	loc := resp.Results[0].Geometry.Location
	return geo.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, true
}
