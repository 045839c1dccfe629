package schedules

import (
	"context"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/pets"
)

// Repository devuelve siempre ordenado por id de schedule.
type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	List(ctx context.Context) ([]Schedule, error)
	ListByPet(ctx context.Context, petID int64) ([]Schedule, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Schedule, error)

	// ListByAnyPet: schedules que contienen al menos uno de petIDs.
	ListByAnyPet(ctx context.Context, petIDs []int64) ([]Schedule, error)
}

type PetLookup interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type EmployeeLookup interface {
	GetByID(ctx context.Context, id int64) (employees.Employee, error)
}

type CustomerLookup interface {
	GetByID(ctx context.Context, id int64) (customers.Customer, error)
}
