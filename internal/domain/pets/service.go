package pets

import (
	"context"
	"strings"
	"time"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/ports/tx"
)

type Service struct {
	repo   Repository
	owners Owners
	tx     tx.Manager
}

func NewService(repo Repository, owners Owners, txm tx.Manager) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		tx:     txm,
	}
}

type CreateInput struct {
	Type      string
	Name      string
	BirthDate *time.Time
	Notes     string
	OwnerID   int64
}

// Create valida el dueño y persiste la mascota en la misma transacción.
// La lista de mascotas del customer se deriva de owner_id, no hay segundo write.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	typ, err := ParseType(in.Type)
	if err != nil {
		return Pet{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, errs.Invalid("name is required")
	}
	if in.OwnerID <= 0 {
		return Pet{}, errs.Invalid("ownerId is required")
	}

	p := Pet{
		Type:      typ,
		Name:      name,
		OwnerID:   in.OwnerID,
		BirthDate: in.BirthDate,
		Notes:     strings.TrimSpace(in.Notes),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.owners.GetByID(ctx, in.OwnerID); err != nil {
			return err
		}
		return s.repo.Create(ctx, &p)
	})
	if err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// ListByOwner devuelve lista vacía (no error) si el dueño no tiene mascotas o no existe.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
