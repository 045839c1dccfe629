package memory

import (
	"context"
	"sort"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
)

type EmployeeRepo struct {
	s *Store
}

func NewEmployeeRepo(s *Store) *EmployeeRepo {
	return &EmployeeRepo{s: s}
}

func (r *EmployeeRepo) Create(ctx context.Context, e *employees.Employee) error {
	return r.s.write(ctx, func(t *tables) error {
		e.ID = t.nextID("employees")
		t.employees[e.ID] = cloneEmployee(*e)
		return nil
	})
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (employees.Employee, error) {
	var out employees.Employee
	err := r.s.read(ctx, func(t *tables) error {
		e, ok := t.employees[id]
		if !ok {
			return errs.NotFound("employee", id)
		}
		out = cloneEmployee(e)
		return nil
	})
	return out, err
}

func (r *EmployeeRepo) List(ctx context.Context) ([]employees.Employee, error) {
	return r.filter(ctx, func(employees.Employee) bool { return true })
}

func (r *EmployeeRepo) ListAvailableOn(ctx context.Context, day employees.Day) ([]employees.Employee, error) {
	return r.filter(ctx, func(e employees.Employee) bool {
		for _, d := range e.DaysAvailable {
			if d == day {
				return true
			}
		}
		return false
	})
}

func (r *EmployeeRepo) SetAvailability(ctx context.Context, id int64, days []employees.Day) error {
	return r.s.write(ctx, func(t *tables) error {
		e, ok := t.employees[id]
		if !ok {
			return errs.NotFound("employee", id)
		}
		e.DaysAvailable = append([]employees.Day{}, days...)
		t.employees[id] = e
		return nil
	})
}

func (r *EmployeeRepo) filter(ctx context.Context, keep func(employees.Employee) bool) ([]employees.Employee, error) {
	out := make([]employees.Employee, 0)
	err := r.s.read(ctx, func(t *tables) error {
		for _, e := range t.employees {
			if keep(e) {
				out = append(out, cloneEmployee(e))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func cloneEmployee(e employees.Employee) employees.Employee {
	e.Skills = append([]employees.Skill{}, e.Skills...)
	e.DaysAvailable = append([]employees.Day{}, e.DaysAvailable...)
	return e
}
