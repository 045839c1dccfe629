package memory

import (
	"context"
	"sort"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/schedules"
)

type ScheduleRepo struct {
	s *Store
}

func NewScheduleRepo(s *Store) *ScheduleRepo {
	return &ScheduleRepo{s: s}
}

func (r *ScheduleRepo) Create(ctx context.Context, sc *schedules.Schedule) error {
	return r.s.write(ctx, func(t *tables) error {
		// equivalente a las FKs de las tablas join
		for _, id := range sc.EmployeeIDs {
			if _, ok := t.employees[id]; !ok {
				return errs.NotFound("employee", id)
			}
		}
		for _, id := range sc.PetIDs {
			if _, ok := t.pets[id]; !ok {
				return errs.NotFound("pet", id)
			}
		}
		sc.ID = t.nextID("schedules")
		t.schedules[sc.ID] = cloneSchedule(*sc)
		return nil
	})
}

func (r *ScheduleRepo) List(ctx context.Context) ([]schedules.Schedule, error) {
	return r.filter(ctx, func(schedules.Schedule) bool { return true })
}

func (r *ScheduleRepo) ListByPet(ctx context.Context, petID int64) ([]schedules.Schedule, error) {
	return r.filter(ctx, func(sc schedules.Schedule) bool { return hasAny(sc.PetIDs, petID) })
}

func (r *ScheduleRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]schedules.Schedule, error) {
	return r.filter(ctx, func(sc schedules.Schedule) bool { return hasAny(sc.EmployeeIDs, employeeID) })
}

func (r *ScheduleRepo) ListByAnyPet(ctx context.Context, petIDs []int64) ([]schedules.Schedule, error) {
	return r.filter(ctx, func(sc schedules.Schedule) bool { return hasAny(sc.PetIDs, petIDs...) })
}

func (r *ScheduleRepo) filter(ctx context.Context, keep func(schedules.Schedule) bool) ([]schedules.Schedule, error) {
	out := make([]schedules.Schedule, 0)
	err := r.s.read(ctx, func(t *tables) error {
		for _, sc := range t.schedules {
			if keep(sc) {
				out = append(out, cloneSchedule(sc))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func hasAny(ids []int64, want ...int64) bool {
	for _, id := range ids {
		for _, w := range want {
			if id == w {
				return true
			}
		}
	}
	return false
}

func cloneSchedule(sc schedules.Schedule) schedules.Schedule {
	sc.Activities = append([]employees.Skill{}, sc.Activities...)
	sc.EmployeeIDs = copyIDs(sc.EmployeeIDs)
	sc.PetIDs = copyIDs(sc.PetIDs)
	return sc
}
