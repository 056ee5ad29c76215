package feed

import (
	"context"

	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/logger"
)

// Lister trae los records del listing.
// error => fallo inesperado (red, decode). Success=false => fallo reportado por upstream.
type Lister interface {
	List(ctx context.Context) (ListResult, error)
}

// Geocoder resuelve una dirección. Nunca devuelve error: si no pudo, ok=false.
type Geocoder interface {
	Geocode(ctx context.Context, q AddressQuery) (coords geo.Coordinates, ok bool)
}

// Alerter avisa al usuario de un error inesperado.
type Alerter interface {
	Alert(ctx context.Context, title, message string)
}

// LogAlerter deja la alerta en el log; sirve mientras no haya canal push.
type LogAlerter struct {
	Log logger.Logger
}

func (a LogAlerter) Alert(_ context.Context, title, message string) {
	if a.Log == nil {
		return
	}
	a.Log.Error("user alert", map[string]any{
		"title":   title,
		"message": message,
	})
}

// ListerFunc adapta una función a Lister.
type ListerFunc func(ctx context.Context) (ListResult, error)

func (f ListerFunc) List(ctx context.Context) (ListResult, error) { return f(ctx) }

// GeocoderFunc adapta una función a Geocoder.
type GeocoderFunc func(ctx context.Context, q AddressQuery) (geo.Coordinates, bool)

func (f GeocoderFunc) Geocode(ctx context.Context, q AddressQuery) (geo.Coordinates, bool) {
	return f(ctx, q)
}
