package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	Update(ctx context.Context, a Adoption) error
	// GetByID devuelve un error que envuelve ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (Adoption, error)
	ListByPet(ctx context.Context, petID string) ([]Adoption, error)
	ListByAdopter(ctx context.Context, adopterUserID string) ([]Adoption, error)
}
