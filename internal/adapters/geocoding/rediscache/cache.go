// Package rediscache cachea geocodificaciones exitosas en Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
)

const (
	DefaultTTL = 24 * time.Hour
	keyPrefix  = "petadoption:geocode:"
)

type Config struct {
	Address  string
	Password string
	DB       int
}

// NewClient abre el cliente y valida la conexión con un PING.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}
	return client, nil
}

// Geocoder decora otro feed.Geocoder. Solo guarda resultados ok=true, así una
// dirección que falló se vuelve a intentar en el próximo fetch.
// Si Redis falla, se sigue con el geocoder real.
type Geocoder struct {
	next    feed.Geocoder
	client  *redis.Client
	ttl     time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
}

func New(next feed.Geocoder, client *redis.Client, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *Geocoder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Geocoder{
		next:    next,
		client:  client,
		ttl:     ttl,
		log:     log.With(map[string]any{"component": "geocode_cache"}),
		metrics: m,
	}
}

func (g *Geocoder) Geocode(ctx context.Context, q feed.AddressQuery) (geo.Coordinates, bool) {
	key := Key(q)

	if c, ok := g.lookup(ctx, key); ok {
		g.metrics.Geocode(metrics.GeocodeCacheHit)
		return c, true
	}

	c, ok := g.next.Geocode(ctx, q)
	if !ok {
		return c, false
	}

	if b, err := json.Marshal(c); err == nil {
		if err := g.client.Set(ctx, key, b, g.ttl).Err(); err != nil {
			g.log.Warn("geocode cache set failed", map[string]any{"key": key, "err": err})
		}
	}
	return c, true
}

func (g *Geocoder) lookup(ctx context.Context, key string) (geo.Coordinates, bool) {
	raw, err := g.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return geo.Coordinates{}, false
	}
	if err != nil {
		g.log.Warn("geocode cache get failed", map[string]any{"key": key, "err": err})
		return geo.Coordinates{}, false
	}

	var c geo.Coordinates
	if err := json.Unmarshal(raw, &c); err != nil {
		g.log.Warn("geocode cache entry corrupt", map[string]any{"key": key, "err": err})
		return geo.Coordinates{}, false
	}
	return c, true
}

// Key normaliza la consulta para que variaciones de mayúsculas/espacios
// compartan entrada.
func Key(q feed.AddressQuery) string {
	return keyPrefix + strings.ToLower(strings.Join(strings.Fields(q.Text()), " "))
}
