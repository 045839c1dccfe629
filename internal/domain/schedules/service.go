package schedules

import (
	"context"
	"errors"
	"time"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/refs"
	"pet-daycare/internal/ports/tx"
)

type Service struct {
	repo      Repository
	pets      PetLookup
	employees EmployeeLookup
	customers CustomerLookup
	tx        tx.Manager

	onUnresolved    refs.Policy
	requireCoverage bool
}

type Option func(*Service)

// WithRefPolicy define qué pasa con employeeIds/petIds inexistentes (default: fail).
func WithRefPolicy(p refs.Policy) Option {
	return func(s *Service) { s.onUnresolved = p }
}

// WithSkillCoverage exige que cada actividad la cubra al menos un empleado asignado.
func WithSkillCoverage(on bool) Option {
	return func(s *Service) { s.requireCoverage = on }
}

func NewService(repo Repository, p PetLookup, e EmployeeLookup, c CustomerLookup, txm tx.Manager, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		pets:         p,
		employees:    e,
		customers:    c,
		tx:           txm,
		onUnresolved: refs.Fail,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type CreateInput struct {
	Date        time.Time
	Activities  []string
	EmployeeIDs []int64
	PetIDs      []int64
}

// Create resuelve participantes y persiste todo en una transacción:
// con la política fail, un id inexistente aborta sin escribir nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Schedule, error) {
	if in.Date.IsZero() {
		return Schedule{}, errs.Invalid("date is required")
	}
	activities, err := employees.NormalizeSkills(in.Activities)
	if err != nil {
		return Schedule{}, err
	}

	var out Schedule
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		staff, err := s.resolveEmployees(ctx, refs.Dedupe(in.EmployeeIDs))
		if err != nil {
			return err
		}
		petIDs, err := s.resolvePets(ctx, refs.Dedupe(in.PetIDs))
		if err != nil {
			return err
		}

		if s.requireCoverage {
			if missing, ok := uncovered(activities, staff); ok {
				return errs.Invalid("activity %s is not covered by any assigned employee", missing)
			}
		}

		empIDs := make([]int64, 0, len(staff))
		for _, e := range staff {
			empIDs = append(empIDs, e.ID)
		}

		sc := Schedule{
			Date:        in.Date,
			Activities:  activities,
			EmployeeIDs: empIDs,
			PetIDs:      petIDs,
		}
		if err := s.repo.Create(ctx, &sc); err != nil {
			return err
		}
		out = sc
		return nil
	})
	if err != nil {
		return Schedule{}, err
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListForPet(ctx context.Context, petID int64) ([]Schedule, error) {
	var out []Schedule
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.pets.GetByID(ctx, petID); err != nil {
			return err
		}
		var err error
		out, err = s.repo.ListByPet(ctx, petID)
		return err
	})
	return out, err
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID int64) ([]Schedule, error) {
	var out []Schedule
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
			return err
		}
		var err error
		out, err = s.repo.ListByEmployee(ctx, employeeID)
		return err
	})
	return out, err
}

// ListForCustomer devuelve los schedules con CUALQUIER mascota del customer.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]Schedule, error) {
	var out []Schedule
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if len(c.PetIDs) == 0 {
			out = []Schedule{}
			return nil
		}
		out, err = s.repo.ListByAnyPet(ctx, c.PetIDs)
		return err
	})
	return out, err
}

func (s *Service) resolveEmployees(ctx context.Context, ids []int64) ([]employees.Employee, error) {
	out := make([]employees.Employee, 0, len(ids))
	for _, id := range ids {
		e, err := s.employees.GetByID(ctx, id)
		if err != nil {
			if s.onUnresolved == refs.Drop && errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Service) resolvePets(ctx context.Context, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, err := s.pets.GetByID(ctx, id); err != nil {
			if s.onUnresolved == refs.Drop && errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// uncovered devuelve la primera actividad que ningún empleado sabe hacer.
func uncovered(activities []employees.Skill, staff []employees.Employee) (employees.Skill, bool) {
	for _, a := range activities {
		covered := false
		for _, e := range staff {
			if e.HasSkills([]employees.Skill{a}) {
				covered = true
				break
			}
		}
		if !covered {
			return a, true
		}
	}
	return "", false
}
