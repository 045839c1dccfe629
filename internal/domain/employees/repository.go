package employees

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// ListAvailableOn devuelve los empleados con day en DaysAvailable, ordenados por id.
	ListAvailableOn(ctx context.Context, day Day) ([]Employee, error)

	// SetAvailability reemplaza el set completo de días. NotFound si no existe.
	SetAvailability(ctx context.Context, id int64, days []Day) error
}
