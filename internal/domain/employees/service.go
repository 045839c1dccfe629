package employees

import (
	"context"
	"strings"
	"time"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/ports/tx"
)

type Service struct {
	repo Repository
	tx   tx.Manager
}

func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, tx: txm}
}

type CreateInput struct {
	Name          string
	Skills        []string
	DaysAvailable []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Employee{}, errs.Invalid("name is required")
	}
	skills, err := NormalizeSkills(in.Skills)
	if err != nil {
		return Employee{}, err
	}
	days, err := NormalizeDays(in.DaysAvailable)
	if err != nil {
		return Employee{}, err
	}

	e := Employee{Name: name, Skills: skills, DaysAvailable: days}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, &e)
	})
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

// SetAvailability reemplaza los días disponibles; una lista vacía deja al empleado sin días.
func (s *Service) SetAvailability(ctx context.Context, id int64, rawDays []string) error {
	days, err := NormalizeDays(rawDays)
	if err != nil {
		return err
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.SetAvailability(ctx, id, days)
	})
}

// FindAvailable devuelve los empleados libres el día de la semana de date
// que tienen todas las skills pedidas (pueden tener más).
func (s *Service) FindAvailable(ctx context.Context, date time.Time, rawSkills []string) ([]Employee, error) {
	if date.IsZero() {
		return nil, errs.Invalid("date is required")
	}
	required, err := NormalizeSkills(rawSkills)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.ListAvailableOn(ctx, DayOf(date))
	if err != nil {
		return nil, err
	}

	out := make([]Employee, 0, len(candidates))
	for _, e := range candidates {
		if e.HasSkills(required) {
			out = append(out, e)
		}
	}
	return out, nil
}
