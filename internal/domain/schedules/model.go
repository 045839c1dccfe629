package schedules

import (
	"time"

	"pet-daycare/internal/domain/employees"
)

// Schedule es una cita de cuidado: fecha, actividades requeridas y participantes.
// Las actividades usan el mismo enum que las skills de employees.
type Schedule struct {
	ID          int64
	Date        time.Time
	Activities  []employees.Skill
	EmployeeIDs []int64
	PetIDs      []int64
}
