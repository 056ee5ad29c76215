package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"pet-adoption/internal/domain/adoptions"
)

var errAdoptionNotFound = fmt.Errorf("%w: %w", ErrNotFound, adoptions.ErrNotFound)

type adoptionRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.Adoption
}

func NewAdoptionsRepo() adoptions.Repository {
	return &adoptionRepo{
		byID: make(map[string]adoptions.Adoption),
	}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adoption already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *adoptionRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return errAdoptionNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, errAdoptionNotFound
	}
	return a, nil
}

func (r *adoptionRepo) ListByPet(ctx context.Context, petID string) ([]adoptions.Adoption, error) {
	return r.list(func(a adoptions.Adoption) bool { return a.PetID == petID }), nil
}

func (r *adoptionRepo) ListByAdopter(ctx context.Context, adopterUserID string) ([]adoptions.Adoption, error) {
	return r.list(func(a adoptions.Adoption) bool { return a.AdopterUserID == adopterUserID }), nil
}

func (r *adoptionRepo) list(keep func(adoptions.Adoption) bool) []adoptions.Adoption {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
