package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/logger"
)

type alertCall struct{ title, message string }

type fakeAlerter struct {
	mu    sync.Mutex
	calls []alertCall
}

func (f *fakeAlerter) Alert(_ context.Context, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, alertCall{title, message})
}

func (f *fakeAlerter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func recordA() Record {
	return Record{
		ID:     "petA",
		Name:   "Thor",
		Breed:  NamedRef{Name: "Labrador"},
		Type:   NamedRef{Name: "Dog"},
		Size:   SizeLarge,
		Age:    3,
		Bio:    "Friendly",
		Gender: "Male",
		Images: []string{"a1.jpg", "a2.jpg"},
		Address: Address{
			PostalCode: "01310-100",
			Street:     "Av. Paulista",
			Number:     "1000",
			City:       "São Paulo",
			State:      "SP",
		},
	}
}

func recordB() Record {
	return Record{
		ID:    "petB",
		Name:  "Mia",
		Breed: NamedRef{Name: "Siamese"},
		Type:  NamedRef{Name: "Cat"},
		Size:  SizeSmall,
		Age:   1,
		Address: Address{
			Street: "Rua Desconhecida",
			City:   "Nowhere",
			State:  "XX",
		},
	}
}

var rio = geo.Coordinates{Lat: -22.9068, Lng: -43.1729}

// geocoder resuelve solo petA (por ciudad) y devuelve ok=false para el resto.
func cityGeocoder(known map[string]geo.Coordinates) Geocoder {
	return GeocoderFunc(func(_ context.Context, q AddressQuery) (geo.Coordinates, bool) {
		c, ok := known[q.City]
		return c, ok
	})
}

func okLister(records ...Record) Lister {
	return ListerFunc(func(context.Context) (ListResult, error) {
		return ListResult{Success: true, Value: records}, nil
	})
}

func newTestService(t *testing.T, l Lister, g Geocoder, a Alerter) *Service {
	t.Helper()
	svc := NewService(Deps{Lister: l, Geocoder: g, Alerter: a, Logger: logger.NewTest(t)})
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestFetch_ResolvesAndFallsBackInListingOrder(t *testing.T) {
	a := &fakeAlerter{}
	svc := newTestService(t,
		okLister(recordA(), recordB()),
		cityGeocoder(map[string]geo.Coordinates{"São Paulo": {Lat: -23.56, Lng: -46.65}}),
		a,
	)

	st := svc.Fetch(context.Background())

	require.Len(t, st.Pets, 2)
	assert.Equal(t, "petA", st.Pets[0].ID)
	assert.Equal(t, geo.Coordinates{Lat: -23.56, Lng: -46.65}, st.Pets[0].Coordinates)
	assert.Equal(t, "petB", st.Pets[1].ID)
	assert.Equal(t, geo.FallbackCoordinates, st.Pets[1].Coordinates)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.NotNil(t, st.FetchedAt)
	assert.Equal(t, 0, a.count())
}

func TestFetch_AssemblesEntity(t *testing.T) {
	svc := newTestService(t, okLister(recordA()), cityGeocoder(map[string]geo.Coordinates{"São Paulo": rio}), nil)

	st := svc.Fetch(context.Background())

	want := Entity{
		ID:          "petA",
		Name:        "Thor",
		Breed:       "Labrador",
		Type:        "Dog",
		Size:        "large",
		Age:         3,
		Gender:      "Male",
		Location:    "São Paulo, SP",
		Coordinates: rio,
		Description: "Friendly",
		Contact:     DefaultContact,
		Image:       "a1.jpg",
		Images:      []string{"a1.jpg", "a2.jpg"},
	}
	require.Len(t, st.Pets, 1)
	if diff := cmp.Diff(want, st.Pets[0]); diff != "" {
		t.Fatalf("entity mismatch (-want +got):\n%s", diff)
	}
}

func TestFetch_ReportedFailureKeepsPreviousList(t *testing.T) {
	fail := false
	lister := ListerFunc(func(context.Context) (ListResult, error) {
		if fail {
			return ListResult{Success: false, Errors: []string{"x"}}, nil
		}
		return ListResult{Success: true, Value: []Record{recordA()}}, nil
	})
	a := &fakeAlerter{}
	svc := newTestService(t, lister, cityGeocoder(nil), a)

	first := svc.Fetch(context.Background())
	require.Len(t, first.Pets, 1)

	fail = true
	st := svc.Fetch(context.Background())

	assert.Equal(t, MsgFetchFailed, st.Error)
	assert.Equal(t, ErrorKindFetchFailed, st.ErrorKind)
	assert.False(t, st.Loading)
	if diff := cmp.Diff(first.Pets, st.Pets); diff != "" {
		t.Fatalf("list changed on failure (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, a.count(), "reported failures do not alert")
}

func TestFetch_ListerErrorAlertsAndSetsUnexpected(t *testing.T) {
	a := &fakeAlerter{}
	lister := ListerFunc(func(context.Context) (ListResult, error) {
		return ListResult{}, errors.New("connection refused")
	})
	svc := newTestService(t, lister, cityGeocoder(nil), a)

	st := svc.Fetch(context.Background())

	assert.Equal(t, MsgUnexpected, st.Error)
	assert.Equal(t, ErrorKindUnexpected, st.ErrorKind)
	assert.Empty(t, st.Pets)
	require.Equal(t, 1, a.count())
	assert.Equal(t, alertCall{AlertTitle, AlertMessage}, a.calls[0])
}

func TestFetch_PanicDuringGeocodingIsUnexpected(t *testing.T) {
	a := &fakeAlerter{}
	g := GeocoderFunc(func(context.Context, AddressQuery) (geo.Coordinates, bool) {
		panic("boom")
	})
	svc := newTestService(t, okLister(recordA()), g, a)

	st := svc.Fetch(context.Background())

	assert.Equal(t, ErrorKindUnexpected, st.ErrorKind)
	assert.Equal(t, 1, a.count())
	assert.False(t, st.Loading)
}

func TestFetch_NextSuccessClearsError(t *testing.T) {
	var calls atomic.Int32
	lister := ListerFunc(func(context.Context) (ListResult, error) {
		if calls.Add(1) == 1 {
			return ListResult{Success: false}, nil
		}
		return ListResult{Success: true, Value: []Record{recordB()}}, nil
	})
	svc := newTestService(t, lister, cityGeocoder(nil), nil)

	assert.Equal(t, ErrorKindFetchFailed, svc.Fetch(context.Background()).ErrorKind)

	st := svc.Fetch(context.Background())
	assert.Empty(t, st.Error)
	assert.Len(t, st.Pets, 1)
}

func TestFetch_CancelledLeavesStateUntouched(t *testing.T) {
	a := &fakeAlerter{}
	lister := ListerFunc(func(ctx context.Context) (ListResult, error) {
		return ListResult{}, ctx.Err()
	})
	svc := newTestService(t, lister, cityGeocoder(nil), a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := svc.Fetch(ctx)

	assert.Empty(t, st.Error)
	assert.Equal(t, 0, a.count())
}

func TestFetch_CallerDeadlineLeavesStateUntouched(t *testing.T) {
	a := &fakeAlerter{}
	var calls atomic.Int32
	lister := ListerFunc(func(ctx context.Context) (ListResult, error) {
		if calls.Add(1) == 1 {
			return ListResult{Success: true, Value: []Record{recordA()}}, nil
		}
		<-ctx.Done()
		return ListResult{}, fmt.Errorf("list pets: %w", ctx.Err())
	})
	svc := newTestService(t, lister, cityGeocoder(nil), a)
	first := svc.Fetch(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	st := svc.Fetch(ctx)

	assert.Empty(t, st.Error)
	assert.Equal(t, ErrorKindNone, st.ErrorKind)
	assert.False(t, st.Loading)
	assert.Equal(t, 0, a.count())
	if diff := cmp.Diff(first.Pets, st.Pets); diff != "" {
		t.Fatalf("list changed on deadline (-want +got):\n%s", diff)
	}
}

func TestFetch_TransportTimeoutWithLiveContextIsUnexpected(t *testing.T) {
	a := &fakeAlerter{}
	lister := ListerFunc(func(context.Context) (ListResult, error) {
		return ListResult{}, fmt.Errorf("list pets: %w", context.DeadlineExceeded)
	})
	svc := newTestService(t, lister, cityGeocoder(nil), a)

	st := svc.Fetch(context.Background())

	assert.Equal(t, ErrorKindUnexpected, st.ErrorKind)
	assert.Equal(t, 1, a.count())
}

func TestFetch_GeocodesConcurrently(t *testing.T) {
	const n = 5
	var (
		inFlight atomic.Int32
		peak     atomic.Int32
		release  = make(chan struct{})
	)
	g := GeocoderFunc(func(context.Context, AddressQuery) (geo.Coordinates, bool) {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
		return rio, true
	})

	records := make([]Record, n)
	for i := range records {
		records[i] = recordA()
	}
	svc := newTestService(t, okLister(records...), g, nil)

	done := make(chan State)
	go func() { done <- svc.Fetch(context.Background()) }()

	require.Eventually(t, func() bool { return inFlight.Load() == n }, time.Second, 5*time.Millisecond)
	assert.True(t, svc.Snapshot().Loading)
	close(release)

	st := <-done
	assert.Len(t, st.Pets, n)
	assert.Equal(t, int32(n), peak.Load())
	assert.False(t, st.Loading)
}

func TestRefetch_LastToFinishWins(t *testing.T) {
	slowGate := make(chan struct{})
	var calls atomic.Int32
	lister := ListerFunc(func(context.Context) (ListResult, error) {
		if calls.Add(1) == 1 {
			<-slowGate
			return ListResult{Success: true, Value: []Record{recordA()}}, nil
		}
		return ListResult{Success: true, Value: []Record{recordB()}}, nil
	})
	svc := newTestService(t, lister, cityGeocoder(nil), nil)

	slowDone := make(chan State)
	go func() { slowDone <- svc.Fetch(context.Background()) }()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	fast := svc.Refetch(context.Background())
	require.Len(t, fast.Pets, 1)
	assert.Equal(t, "petB", fast.Pets[0].ID)
	assert.True(t, fast.Loading, "slow fetch still in flight")

	close(slowGate)
	slow := <-slowDone
	require.Len(t, slow.Pets, 1)
	assert.Equal(t, "petA", slow.Pets[0].ID)
	assert.False(t, slow.Loading)
}

func TestService_SortByDistanceIsOneShot(t *testing.T) {
	near := geo.Coordinates{Lat: -23.0, Lng: -46.0}
	far := geo.Coordinates{Lat: 10.0, Lng: 10.0}
	a, b := recordA(), recordB()
	b.Address.City = "Near"
	a.Address.City = "Far"
	svc := newTestService(t, okLister(a, b), cityGeocoder(map[string]geo.Coordinates{"Near": near, "Far": far}), nil)

	svc.Fetch(context.Background())
	sorted := svc.SortByDistance(geo.FallbackCoordinates)
	require.Len(t, sorted.Pets, 2)
	assert.Equal(t, "petB", sorted.Pets[0].ID)
	assert.Equal(t, "petB", svc.Snapshot().Pets[0].ID)

	st := svc.Refetch(context.Background())
	assert.Equal(t, "petA", st.Pets[0].ID, "refetch publishes in listing order")
}
