package router

import (
	"context"
	"database/sql"
	"net/http"

	"pet-adoption/internal/adapters/listing"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"

	_ "pet-adoption/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger    // nil => nop
	Metrics *metrics.Metrics // nil => sin /metrics

	// Fuentes del feed. Lister nil => catálogo local; Geocoder nil => todo cae
	// en la coordenada por defecto.
	Lister   feed.Lister
	Geocoder feed.Geocoder
	Alerter  feed.Alerter
}

// App expone lo que main necesita además del handler.
type App struct {
	Handler http.Handler
	Feed    *feed.Service
	Pets    *pets.Service
}

func NewRouter(opts Options) http.Handler {
	return Build(opts).Handler
}

func Build(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo      pets.Repository
		adoptionRepo adoptions.Repository
	)
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		adoptionRepo = pg.NewAdoptionsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		adoptionRepo = mem.NewAdoptionsRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	adoptionsSvc := adoptions.NewService(adoptionRepo, petsSvc)

	lister := opts.Lister
	if lister == nil {
		lister = listing.NewLocal(petsSvc)
	}
	geocoder := opts.Geocoder
	if geocoder == nil {
		geocoder = feed.GeocoderFunc(func(context.Context, feed.AddressQuery) (geo.Coordinates, bool) {
			return geo.Coordinates{}, false
		})
	}
	feedSvc := feed.NewService(feed.Deps{
		Lister:   lister,
		Geocoder: geocoder,
		Alerter:  opts.Alerter,
		Logger:   log,
		Metrics:  opts.Metrics,
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc, petsSvc)
	feed.RegisterRoutes(r, feedSvc)

	return &App{
		Handler: r,
		Feed:    feedSvc,
		Pets:    petsSvc,
	}
}
