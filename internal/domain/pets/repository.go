package pets

import (
	"context"

	"pet-daycare/internal/domain/customers"
)

type Repository interface {
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
}

// Owners resuelve el dueño al crear una mascota.
type Owners interface {
	GetByID(ctx context.Context, id int64) (customers.Customer, error)
}
