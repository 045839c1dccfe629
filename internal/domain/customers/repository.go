package customers

import "context"

// Repository devuelve los customers con PetIDs ya resuelto.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id int64) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

// PetLinks es la vista mínima de pets que necesita este módulo.
// La FK vive en pets; acá solo la leemos o la re-apuntamos.
type PetLinks interface {
	// ExistingPetIDs devuelve, en orden ascendente, los ids de ids que existen.
	ExistingPetIDs(ctx context.Context, ids []int64) ([]int64, error)
	AssignOwner(ctx context.Context, ownerID int64, petIDs []int64) error
	OwnerOf(ctx context.Context, petID int64) (int64, error)
}
