package rediscache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/logger"
)

var query = feed.AddressQuery{Address: "Av. Paulista, 1000", City: "São Paulo", State: "SP"}

type countingGeocoder struct {
	calls  atomic.Int32
	coords geo.Coordinates
	ok     bool
}

func (c *countingGeocoder) Geocode(context.Context, feed.AddressQuery) (geo.Coordinates, bool) {
	c.calls.Add(1)
	return c.coords, c.ok
}

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestGeocoder_CachesSuccessfulLookups(t *testing.T) {
	mr, client := setup(t)
	next := &countingGeocoder{coords: geo.Coordinates{Lat: -23.56, Lng: -46.65}, ok: true}
	g := New(next, client, time.Hour, logger.NewTest(t), nil)

	first, ok := g.Geocode(context.Background(), query)
	require.True(t, ok)
	second, ok := g.Geocode(context.Background(), query)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), next.calls.Load())
	assert.True(t, mr.Exists(Key(query)))
	assert.Equal(t, time.Hour, mr.TTL(Key(query)))
}

func TestGeocoder_DoesNotCacheFailures(t *testing.T) {
	mr, client := setup(t)
	next := &countingGeocoder{ok: false}
	g := New(next, client, time.Hour, nil, nil)

	_, ok := g.Geocode(context.Background(), query)
	assert.False(t, ok)
	_, ok = g.Geocode(context.Background(), query)
	assert.False(t, ok)

	assert.Equal(t, int32(2), next.calls.Load())
	assert.False(t, mr.Exists(Key(query)))
}

func TestGeocoder_ExpiredEntryGoesUpstream(t *testing.T) {
	mr, client := setup(t)
	next := &countingGeocoder{coords: geo.Coordinates{Lat: 1, Lng: 2}, ok: true}
	g := New(next, client, time.Minute, nil, nil)

	g.Geocode(context.Background(), query)
	mr.FastForward(2 * time.Minute)
	g.Geocode(context.Background(), query)

	assert.Equal(t, int32(2), next.calls.Load())
}

func TestGeocoder_RedisDownFallsThrough(t *testing.T) {
	mr, client := setup(t)
	mr.Close()

	next := &countingGeocoder{coords: geo.Coordinates{Lat: 1, Lng: 2}, ok: true}
	g := New(next, client, time.Minute, logger.NewTest(t), nil)

	got, ok := g.Geocode(context.Background(), query)
	require.True(t, ok)
	assert.Equal(t, geo.Coordinates{Lat: 1, Lng: 2}, got)
}

func TestGeocoder_CorruptEntryIsIgnored(t *testing.T) {
	mr, client := setup(t)
	require.NoError(t, mr.Set(Key(query), "not-json"))

	next := &countingGeocoder{coords: geo.Coordinates{Lat: 3, Lng: 4}, ok: true}
	g := New(next, client, time.Minute, nil, nil)

	got, ok := g.Geocode(context.Background(), query)
	require.True(t, ok)
	assert.Equal(t, geo.Coordinates{Lat: 3, Lng: 4}, got)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestKey_Normalizes(t *testing.T) {
	a := Key(feed.AddressQuery{City: "São  Paulo", State: "SP"})
	b := Key(feed.AddressQuery{City: "são paulo", State: "sp"})
	assert.Equal(t, a, b)
}

func TestNewClient_PingFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), Config{Address: addr})
	assert.Error(t, err)
}
