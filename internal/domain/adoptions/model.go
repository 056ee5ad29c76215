package adoptions

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Open indica si la solicitud todavía espera decisión del owner.
func (s Status) Open() bool { return s == StatusPending }

// Adoption es una solicitud de adopción de un pet.
type Adoption struct {
	ID string

	PetID string

	OwnerUserID   string // dueño del pet al momento de pedir
	AdopterUserID string // quien quiere adoptar

	Message string
	Status  Status

	CreatedAt time.Time
	UpdatedAt time.Time
	DecidedAt *time.Time
}
