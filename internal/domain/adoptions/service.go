package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption/internal/domain/pets"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrBadState       = errors.New("invalid state")
	ErrPetUnavailable = errors.New("pet not available for adoption")
)

// PetCatalog es lo que adoptions necesita del catálogo.
type PetCatalog interface {
	GetByID(ctx context.Context, petID string) (pets.Pet, error)
	MarkAdopted(ctx context.Context, petID string) (pets.Pet, error)
}

type Service struct {
	repo    Repository
	catalog PetCatalog
	now     func() time.Time
}

func NewService(repo Repository, catalog PetCatalog) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

type RequestInput struct {
	PetID         string
	AdopterUserID string
	Message       string
}

// Request abre una solicitud. Si el adoptante ya tiene una pendiente para el
// mismo pet, se actualiza el mensaje en vez de crear otra.
func (s *Service) Request(ctx context.Context, in RequestInput) (Adoption, error) {
	petID := strings.TrimSpace(in.PetID)
	adopterID := strings.TrimSpace(in.AdopterUserID)
	if petID == "" || adopterID == "" {
		return Adoption{}, ErrInvalidInput
	}

	pet, err := s.catalog.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, ErrNotFound
		}
		return Adoption{}, fmt.Errorf("load pet: %w", err)
	}
	if pet.OwnerUserID == adopterID {
		return Adoption{}, ErrInvalidInput
	}
	if pet.Status != pets.StatusAvailable {
		return Adoption{}, ErrPetUnavailable
	}

	now := s.now()
	msg := strings.TrimSpace(in.Message)

	existing, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return Adoption{}, err
	}
	for _, a := range existing {
		if a.AdopterUserID != adopterID || !a.Status.Open() {
			continue
		}
		a.Message = msg
		a.UpdatedAt = now
		if err := s.repo.Update(ctx, a); err != nil {
			return Adoption{}, err
		}
		return a, nil
	}

	a := Adoption{
		ID:            uuid.NewString(),
		PetID:         petID,
		OwnerUserID:   pet.OwnerUserID,
		AdopterUserID: adopterID,
		Message:       msg,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

// Approve la decide el owner. Marca el pet como adoptado y rechaza el resto
// de solicitudes pendientes del mismo pet.
func (s *Service) Approve(ctx context.Context, adoptionID, ownerUserID string) (Adoption, error) {
	a, err := s.load(ctx, adoptionID, ownerUserID)
	if err != nil {
		return Adoption{}, err
	}
	if a.OwnerUserID != ownerUserID {
		return Adoption{}, ErrForbidden
	}

	// Idempotente
	if a.Status == StatusApproved {
		return a, nil
	}
	if !a.Status.Open() {
		return Adoption{}, ErrBadState
	}

	if _, err := s.catalog.MarkAdopted(ctx, a.PetID); err != nil {
		if errors.Is(err, pets.ErrAlreadyAdopted) {
			return Adoption{}, ErrPetUnavailable
		}
		return Adoption{}, err
	}

	now := s.now()
	a.Status = StatusApproved
	a.UpdatedAt = now
	a.DecidedAt = &now
	if err := s.repo.Update(ctx, a); err != nil {
		return Adoption{}, err
	}

	if err := s.rejectOthers(ctx, a, now); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) Reject(ctx context.Context, adoptionID, ownerUserID string) (Adoption, error) {
	a, err := s.load(ctx, adoptionID, ownerUserID)
	if err != nil {
		return Adoption{}, err
	}
	if a.OwnerUserID != ownerUserID {
		return Adoption{}, ErrForbidden
	}
	return s.close(ctx, a, StatusRejected)
}

func (s *Service) Cancel(ctx context.Context, adoptionID, adopterUserID string) (Adoption, error) {
	a, err := s.load(ctx, adoptionID, adopterUserID)
	if err != nil {
		return Adoption{}, err
	}
	if a.AdopterUserID != adopterUserID {
		return Adoption{}, ErrForbidden
	}
	return s.close(ctx, a, StatusCancelled)
}

func (s *Service) GetByID(ctx context.Context, adoptionID string) (Adoption, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(adoptionID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Adoption{}, ErrNotFound
		}
		return Adoption{}, fmt.Errorf("get adoption: %w", err)
	}
	return a, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Adoption, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByAdopter(ctx context.Context, adopterUserID string) ([]Adoption, error) {
	adopterUserID = strings.TrimSpace(adopterUserID)
	if adopterUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAdopter(ctx, adopterUserID)
}

func (s *Service) load(ctx context.Context, adoptionID, actorID string) (Adoption, error) {
	adoptionID = strings.TrimSpace(adoptionID)
	if adoptionID == "" || strings.TrimSpace(actorID) == "" {
		return Adoption{}, ErrInvalidInput
	}
	return s.GetByID(ctx, adoptionID)
}

// close lleva una pendiente a un estado terminal. Repetir el mismo cierre es no-op.
func (s *Service) close(ctx context.Context, a Adoption, to Status) (Adoption, error) {
	if a.Status == to {
		return a, nil
	}
	if !a.Status.Open() {
		return Adoption{}, ErrBadState
	}

	now := s.now()
	a.Status = to
	a.UpdatedAt = now
	a.DecidedAt = &now
	if err := s.repo.Update(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) rejectOthers(ctx context.Context, approved Adoption, now time.Time) error {
	all, err := s.repo.ListByPet(ctx, approved.PetID)
	if err != nil {
		return err
	}
	for _, a := range all {
		if a.ID == approved.ID || !a.Status.Open() {
			continue
		}
		a.Status = StatusRejected
		a.UpdatedAt = now
		a.DecidedAt = &now
		if err := s.repo.Update(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
