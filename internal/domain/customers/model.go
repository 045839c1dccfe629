package customers

// Customer es el dueño de una o más mascotas.
type Customer struct {
	ID          int64
	Name        string
	PhoneNumber string
	Notes       string

	// PetIDs se deriva de pets.owner_id (orden por id). No se persiste en el customer.
	PetIDs []int64
}
