package adoptions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// PetOwnerLookup evita depender del Service concreto de pets en los handlers.
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petOwners PetOwnerLookup) {
	// Adoptante pide; owner lista las solicitudes de su pet
	r.Route("/pets/{petID}/adoptions", func(ar chi.Router) {
		ar.Post("/", requestAdoptionHandler(svc))
		ar.Get("/", listAdoptionsByPetHandler(svc, petOwners))
	})

	// Decisiones sobre una solicitud
	r.Route("/adoptions/{adoptionID}", func(ar chi.Router) {
		ar.Post("/approve", decideHandler(svc.Approve))
		ar.Post("/reject", decideHandler(svc.Reject))
		ar.Post("/cancel", decideHandler(svc.Cancel))
	})

	// Adoptante: mis solicitudes
	r.Route("/me/adoptions", func(mr chi.Router) {
		mr.Get("/", listMyAdoptionsHandler(svc))
	})
}

type requestAdoptionRequest struct {
	Message string `json:"message"`
}

type adoptionResponse struct {
	ID            string     `json:"id"`
	PetID         string     `json:"pet_id"`
	OwnerUserID   string     `json:"owner_user_id"`
	AdopterUserID string     `json:"adopter_user_id"`
	Message       string     `json:"message"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
}

// @Summary  Request to adopt a pet
// @Tags     adoptions
// @Accept   json
// @Produce  json
// @Param    petID path string true "pet id"
// @Param    body body requestAdoptionRequest false "message to the owner"
// @Success  201 {object} adoptionResponse
// @Failure  400,401,404,409 {string} string
// @Router   /pets/{petID}/adoptions [post]
func requestAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Body opcional
		var req requestAdoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Request(r.Context(), RequestInput{
			PetID:         chi.URLParam(r, "petID"),
			AdopterUserID: claims.UserID,
			Message:       req.Message,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// @Summary  List adoption requests for my pet
// @Tags     adoptions
// @Produce  json
// @Param    petID path string true "pet id"
// @Success  200 {array} adoptionResponse
// @Failure  401,403,404,500 {string} string
// @Router   /pets/{petID}/adoptions [get]
func listAdoptionsByPetHandler(svc *Service, petOwners PetOwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")

		ownerID, err := petOwners.OwnerOf(r.Context(), petID)
		if err != nil && !errors.Is(err, pets.ErrNotFound) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err != nil || strings.TrimSpace(ownerID) == "" {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if ownerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

type decision func(ctx context.Context, adoptionID, actorUserID string) (Adoption, error)

// decideHandler comparte el flujo de approve/reject/cancel; el permiso lo
// valida cada método del service.
//
// @Summary  Approve, reject or cancel an adoption request
// @Tags     adoptions
// @Produce  json
// @Param    adoptionID path string true "adoption id"
// @Success  200 {object} adoptionResponse
// @Failure  401,403,404,409 {string} string
// @Router   /adoptions/{adoptionID}/approve [post]
// @Router   /adoptions/{adoptionID}/reject [post]
// @Router   /adoptions/{adoptionID}/cancel [post]
func decideHandler(fn decision) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := fn(r.Context(), chi.URLParam(r, "adoptionID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

// @Summary  List my adoption requests
// @Tags     adoptions
// @Produce  json
// @Success  200 {array} adoptionResponse
// @Failure  401 {string} string
// @Router   /me/adoptions [get]
func listMyAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByAdopter(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState), errors.Is(err, ErrPetUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAdoptionResponses(items []Adoption) []adoptionResponse {
	out := make([]adoptionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:            a.ID,
		PetID:         a.PetID,
		OwnerUserID:   a.OwnerUserID,
		AdopterUserID: a.AdopterUserID,
		Message:       a.Message,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		DecidedAt:     a.DecidedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
