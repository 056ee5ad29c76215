package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	// GetByID devuelve un error que envuelve ErrNotFound si el pet no existe.
	GetByID(ctx context.Context, id string) (Pet, error)
	// ListAvailable devuelve los pets en estado available, por created_at asc.
	ListAvailable(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
}
