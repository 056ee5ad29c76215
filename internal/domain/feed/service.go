package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
)

// ErrListingFailed: el listing respondió con Success=false.
var ErrListingFailed = errors.New("listing reported failure")

type Deps struct {
	Lister   Lister
	Geocoder Geocoder
	Alerter  Alerter
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

// Service mantiene la lista publicada de pets.
// Cada Fetch reemplaza la lista entera; si falla, la lista anterior queda.
type Service struct {
	lister   Lister
	geocoder Geocoder
	alerter  Alerter
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	mu        sync.RWMutex
	pets      []Entity
	inflight  int
	errMsg    string
	errKind   ErrorKind
	fetchedAt time.Time
}

func NewService(d Deps) *Service {
	log := d.Logger
	if log == nil {
		log = logger.NewNop()
	}
	alerter := d.Alerter
	if alerter == nil {
		alerter = LogAlerter{Log: log}
	}
	return &Service{
		lister:   d.Lister,
		geocoder: d.Geocoder,
		alerter:  alerter,
		log:      log.With(map[string]any{"component": "feed"}),
		metrics:  d.Metrics,
		now:      time.Now,
		pets:     []Entity{},
	}
}

// Fetch trae el listing, geocodifica cada record en paralelo y publica la
// lista completa de una vez. Devuelve el estado al terminar.
func (s *Service) Fetch(ctx context.Context) State {
	start := s.now()
	s.begin()

	pets, err := s.load(ctx)

	var (
		result = metrics.FetchOK
		kind   = ErrorKindNone
	)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		// Cancelación o deadline del que pidió: sin error visible, ya no espera
		// la respuesta. Un timeout propio del transporte con ctx vivo sigue
		// siendo inesperado.
		s.log.Debug("fetch cancelled", map[string]any{"err": err})
		s.metrics.Fetch(metrics.FetchUnexpected, s.now().Sub(start).Seconds())
		return s.finish(nil, ErrorKindNone, "", false)
	case errors.Is(err, ErrListingFailed):
		s.log.Warn("listing reported failure", map[string]any{"err": err})
		result, kind = metrics.FetchFailed, ErrorKindFetchFailed
	default:
		s.log.Error("unexpected error fetching pets", map[string]any{"err": err})
		s.alerter.Alert(ctx, AlertTitle, AlertMessage)
		result, kind = metrics.FetchUnexpected, ErrorKindUnexpected
	}

	s.metrics.Fetch(result, s.now().Sub(start).Seconds())

	switch kind {
	case ErrorKindFetchFailed:
		return s.finish(nil, kind, MsgFetchFailed, false)
	case ErrorKindUnexpected:
		return s.finish(nil, kind, MsgUnexpected, false)
	}

	s.metrics.Published(len(pets))
	s.log.Info("pets published", map[string]any{
		"count":       len(pets),
		"duration_ms": s.now().Sub(start).Milliseconds(),
	})
	return s.finish(pets, ErrorKindNone, "", true)
}

// Refetch vuelve a correr el ciclo completo. No deduplica: si hay varios en
// vuelo, gana el último que termina.
func (s *Service) Refetch(ctx context.Context) State {
	return s.Fetch(ctx)
}

// Snapshot devuelve el estado actual sin disparar nada.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// SortByDistance reordena la lista publicada una vez, por distancia a origin.
// Un Fetch posterior publica en el orden del listing.
func (s *Service) SortByDistance(origin geo.Coordinates) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = SortByDistance(s.pets, origin)
	return s.stateLocked()
}

func (s *Service) load(ctx context.Context) (pets []Entity, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while fetching pets: %v", r)
		}
	}()

	res, err := s.lister.List(ctx)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", ErrListingFailed, strings.Join(res.Errors, "; "))
	}

	pets = s.assemble(ctx, res.Value)
	if err := ctx.Err(); err != nil {
		// Con el contexto cancelado las coordenadas pueden ser fallbacks espurios.
		return nil, err
	}
	return pets, nil
}

// assemble resuelve todas las direcciones en paralelo, sin límite, y
// conserva el orden del listing.
func (s *Service) assemble(ctx context.Context, records []Record) []Entity {
	out := make([]Entity, len(records))

	p := pool.New()
	for i, rec := range records {
		p.Go(func() {
			out[i] = ToEntity(rec, s.resolve(ctx, rec))
		})
	}
	p.Wait()

	return out
}

func (s *Service) resolve(ctx context.Context, rec Record) geo.Coordinates {
	coords, ok := s.geocoder.Geocode(ctx, QueryFor(rec))
	if !ok {
		s.metrics.Geocode(metrics.GeocodeFallback)
		s.log.Debug("address not resolved, using fallback", map[string]any{
			"pet_id": rec.ID,
			"city":   rec.Address.City,
		})
		return geo.FallbackCoordinates
	}
	s.metrics.Geocode(metrics.GeocodeResolved)
	return coords
}

func (s *Service) begin() {
	s.mu.Lock()
	s.inflight++
	s.errMsg, s.errKind = "", ErrorKindNone
	s.mu.Unlock()
}

func (s *Service) finish(pets []Entity, kind ErrorKind, msg string, publish bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if publish {
		s.pets = pets
		s.fetchedAt = s.now()
	}
	if kind != ErrorKindNone {
		s.errMsg, s.errKind = msg, kind
	}
	return s.stateLocked()
}

func (s *Service) stateLocked() State {
	st := State{
		Pets:      make([]Entity, len(s.pets)),
		Loading:   s.inflight > 0,
		Error:     s.errMsg,
		ErrorKind: s.errKind,
	}
	copy(st.Pets, s.pets)
	if !s.fetchedAt.IsZero() {
		t := s.fetchedAt
		st.FetchedAt = &t
	}
	return st
}
