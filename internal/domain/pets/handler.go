package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Publicar pet (owner autenticado)
		pr.Post("/", createPetHandler(svc))

		// Listing público con resultado "tagged"
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
	})

	// Mis pets publicados (incluye adoptados)
	r.Get("/me/pets", listMyPetsHandler(svc))
}

type addressPayload struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type createPetRequest struct {
	Name    string         `json:"name"`
	Species string         `json:"species"`
	Breed   string         `json:"breed"`
	Sex     string         `json:"sex"`
	Size    string         `json:"size"` // small | medium | large
	Age     int            `json:"age"`
	Bio     string         `json:"bio"`
	Address addressPayload `json:"address"`
	Images  []string       `json:"images"`
}

type petResponse struct {
	ID          string         `json:"id"`
	OwnerUserID string         `json:"owner_user_id"`
	Name        string         `json:"name"`
	Species     Species        `json:"species"`
	Breed       string         `json:"breed"`
	Sex         Sex            `json:"sex"`
	Size        string         `json:"size"`
	Age         int            `json:"age"`
	Bio         string         `json:"bio"`
	Address     addressPayload `json:"address"`
	Images      []string       `json:"images"`
	Status      Status         `json:"status"`
	AdoptedAt   *time.Time     `json:"adopted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type namedRef struct {
	Name string `json:"name"`
}

// listingRecord es el formato que consume el feed (ver feed.Record).
type listingRecord struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Breed   namedRef       `json:"breed"`
	Type    namedRef       `json:"type"`
	Size    Size           `json:"size"`
	Age     int            `json:"age"`
	Bio     string         `json:"bio"`
	Gender  string         `json:"gender,omitempty"`
	Images  []string       `json:"images"`
	Address addressPayload `json:"address"`
}

type listingResponse struct {
	Success bool            `json:"success"`
	Value   []listingRecord `json:"value"`
	Errors  []string        `json:"errors"`
}

// createPetHandler publica un pet para adopción.
//
// @Summary  Publish a pet for adoption
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    body body createPetRequest true "pet"
// @Success  201 {object} petResponse
// @Failure  400,401 {string} string
// @Router   /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Sex:     req.Sex,
			Size:    req.Size,
			Age:     req.Age,
			Bio:     req.Bio,
			Address: Address(req.Address),
			Images:  req.Images,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler es el listing que consume el feed. Nunca responde con un
// error HTTP "pelado": los fallos van en errors con success=false.
//
// @Summary  List adoptable pets
// @Tags     pets
// @Produce  json
// @Success  200 {object} listingResponse
// @Failure  500 {object} listingResponse
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, listingResponse{
				Success: false,
				Value:   []listingRecord{},
				Errors:  []string{"could not list pets"},
			})
			return
		}

		out := make([]listingRecord, 0, len(items))
		for _, p := range items {
			out = append(out, toListingRecord(p))
		}

		writeJSON(w, http.StatusOK, listingResponse{
			Success: true,
			Value:   out,
			Errors:  []string{},
		})
	}
}

// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    petID path string true "pet id"
// @Success  200 {object} petResponse
// @Failure  404,500 {string} string
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary  List my published pets
// @Tags     pets
// @Produce  json
// @Success  200 {array} petResponse
// @Failure  401 {string} string
// @Router   /me/pets [get]
func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Sex:         p.Sex,
		Size:        p.Size.String(),
		Age:         p.Age,
		Bio:         p.Bio,
		Address:     addressPayload(p.Address),
		Images:      nonNil(p.Images),
		Status:      p.Status,
		AdoptedAt:   p.AdoptedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toListingRecord(p Pet) listingRecord {
	gender := ""
	if p.Sex != SexUnknown {
		gender = string(p.Sex)
	}
	return listingRecord{
		ID:      p.ID,
		Name:    p.Name,
		Breed:   namedRef{Name: p.Breed},
		Type:    namedRef{Name: string(p.Species)},
		Size:    p.Size,
		Age:     p.Age,
		Bio:     p.Bio,
		Gender:  gender,
		Images:  nonNil(p.Images),
		Address: addressPayload(p.Address),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
