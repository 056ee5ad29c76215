package feed

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/platform/geo"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/feed", func(fr chi.Router) {
		fr.Get("/", getFeedHandler(svc))
		fr.Post("/refetch", refetchHandler(svc))
		fr.Post("/sort", sortHandler(svc))
	})
}

type sortRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// getFeedHandler devuelve lo publicado, sin disparar un fetch.
//
// @Summary  Current pet feed
// @Tags     feed
// @Produce  json
// @Success  200 {object} State
// @Router   /feed [get]
func getFeedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Snapshot())
	}
}

// refetchHandler corre un ciclo completo y responde cuando termina.
//
// @Summary  Re-run fetch and assemble
// @Tags     feed
// @Produce  json
// @Success  200 {object} State
// @Router   /feed/refetch [post]
func refetchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Refetch(r.Context()))
	}
}

// sortHandler reordena una vez la lista publicada por cercanía.
//
// @Summary  Sort feed by distance
// @Tags     feed
// @Accept   json
// @Produce  json
// @Param    body body sortRequest true "origin"
// @Success  200 {object} State
// @Failure  400 {string} string
// @Router   /feed/sort [post]
func sortHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sortRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Latitude == nil || req.Longitude == nil {
			http.Error(w, "latitude and longitude are required", http.StatusBadRequest)
			return
		}
		origin := geo.Coordinates{Lat: *req.Latitude, Lng: *req.Longitude}
		if origin.Lat < -90 || origin.Lat > 90 || origin.Lng < -180 || origin.Lng > 180 {
			http.Error(w, "coordinates out of range", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, svc.SortByDistance(origin))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
