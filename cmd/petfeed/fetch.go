package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pet-adoption/internal/adapters/geocoding/google"
	"pet-adoption/internal/adapters/geocoding/rediscache"
	"pet-adoption/internal/adapters/listing"
	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/geo"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/retry"
)

var (
	fetchLat     float64
	fetchLng     float64
	fetchURL     string
	fetchCompact bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Trae el listing, arma el feed e imprime las entidades",
	Long: `
Hace un ciclo completo de fetch y geocodificación. Con --lat y --lng además
ordena por distancia a ese punto.

$ petfeed fetch --url http://localhost:8080 --lat -23.55 --lng -46.63
`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sortByDistance := cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng")
		if sortByDistance && !(cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng")) {
			return errors.New("--lat and --lng must be used together")
		}
		if fetchLat < -90 || fetchLat > 90 || fetchLng < -180 || fetchLng > 180 {
			return errors.New("coordinates out of range")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if fetchURL != "" {
			cfg.Listing.BaseURL = fetchURL
		}
		if cfg.Listing.BaseURL == "" {
			return errors.New("listing base url is required (--url or LISTING_BASE_URL)")
		}

		// stdout queda reservado para el JSON
		log := logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Logging.Level),
			Format: logger.ParseFormat(cfg.Logging.Format),
			App:    "petfeed",
			Output: "stderr",
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := newFeedService(ctx, cfg, log)
		if err != nil {
			return err
		}

		state := svc.Fetch(ctx)
		if state.Error != "" {
			return fmt.Errorf("%s (%s)", state.Error, state.ErrorKind)
		}
		if sortByDistance {
			state = svc.SortByDistance(geo.Coordinates{Lat: fetchLat, Lng: fetchLng})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if !fetchCompact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(state.Pets)
	},
}

func newFeedService(ctx context.Context, cfg *config.Config, log logger.Logger) (*feed.Service, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.Listing.BaseURL, cfg.Listing.Timeout)
	if err != nil {
		return nil, err
	}
	lister := listing.WithRetry(listing.NewClient(hc, cfg.Listing.Path, log), retry.Options[feed.ListResult]{
		MaxAttempts:       cfg.Retry.MaxAttempts,
		InitialDelay:      cfg.Retry.InitialDelay,
		BackoffMultiplier: cfg.Retry.Multiplier,
		OnError: func(err error, attempt int) {
			log.Warn("listing attempt failed", map[string]any{"attempt": attempt, "error": err.Error()})
		},
	})

	geocoder, err := newGeocoder(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return feed.NewService(feed.Deps{
		Lister:   lister,
		Geocoder: geocoder,
		Logger:   log,
	}), nil
}

func newGeocoder(ctx context.Context, cfg *config.Config, log logger.Logger) (feed.Geocoder, error) {
	if cfg.Geocoding.APIKey == "" {
		log.Warn("geocoding disabled, every pet uses the fallback coordinates", nil)
		return feed.GeocoderFunc(func(context.Context, feed.AddressQuery) (geo.Coordinates, bool) {
			return geo.Coordinates{}, false
		}), nil
	}

	hc, err := httpclient.NewWithBaseURL(cfg.Geocoding.BaseURL, cfg.Geocoding.Timeout)
	if err != nil {
		return nil, err
	}
	var g feed.Geocoder = google.New(hc, cfg.Geocoding.APIKey, log)
	if !cfg.Geocoding.Cache.Enabled {
		return g, nil
	}

	rc, err := rediscache.NewClient(ctx, rediscache.Config{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("geocode cache disabled", map[string]any{"error": err.Error()})
		return g, nil
	}
	return rediscache.New(g, rc, cfg.Geocoding.Cache.TTL, log, nil), nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().Float64Var(&fetchLat, "lat", 0, "Latitud del origen para ordenar por distancia")
	fetchCmd.Flags().Float64Var(&fetchLng, "lng", 0, "Longitud del origen para ordenar por distancia")
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "Base URL del listing (pisa LISTING_BASE_URL)")
	fetchCmd.Flags().BoolVar(&fetchCompact, "compact", false, "JSON en una sola línea")
}
