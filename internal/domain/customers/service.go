package customers

import (
	"context"
	"sort"
	"strings"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/refs"
	"pet-daycare/internal/ports/tx"
)

type Service struct {
	repo Repository
	pets PetLinks
	tx   tx.Manager

	onUnresolvedPet refs.Policy
}

type Option func(*Service)

// WithPetPolicy define qué pasa con petIds que no existen en Create (default: drop).
func WithPetPolicy(p refs.Policy) Option {
	return func(s *Service) { s.onUnresolvedPet = p }
}

func NewService(repo Repository, pets PetLinks, txm tx.Manager, opts ...Option) *Service {
	s := &Service{
		repo:            repo,
		pets:            pets,
		tx:              txm,
		onUnresolvedPet: refs.Drop,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type CreateInput struct {
	Name        string
	PhoneNumber string
	Notes       string
	PetIDs      []int64
}

// Create persiste el customer y re-apunta a él las mascotas de PetIDs que existan.
func (s *Service) Create(ctx context.Context, in CreateInput) (Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Customer{}, errs.Invalid("name is required")
	}

	var out Customer
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		wanted := refs.Dedupe(in.PetIDs)

		var found []int64
		if len(wanted) > 0 {
			var err error
			found, err = s.pets.ExistingPetIDs(ctx, wanted)
			if err != nil {
				return err
			}
			if s.onUnresolvedPet == refs.Fail && len(found) != len(wanted) {
				return errs.NotFound("pet", firstMissing(wanted, found))
			}
		}

		c := Customer{
			Name:        name,
			PhoneNumber: strings.TrimSpace(in.PhoneNumber),
			Notes:       strings.TrimSpace(in.Notes),
		}
		if err := s.repo.Create(ctx, &c); err != nil {
			return err
		}

		if len(found) > 0 {
			if err := s.pets.AssignOwner(ctx, c.ID, found); err != nil {
				return err
			}
		}

		c.PetIDs = append([]int64{}, found...)
		sort.Slice(c.PetIDs, func(i, j int) bool { return c.PetIDs[i] < c.PetIDs[j] })
		out = c
		return nil
	})
	if err != nil {
		return Customer{}, err
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

// GetByPetID devuelve el dueño de la mascota.
func (s *Service) GetByPetID(ctx context.Context, petID int64) (Customer, error) {
	var out Customer
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ownerID, err := s.pets.OwnerOf(ctx, petID)
		if err != nil {
			return err
		}
		out, err = s.repo.GetByID(ctx, ownerID)
		return err
	})
	return out, err
}

func firstMissing(wanted, found []int64) int64 {
	have := make(map[int64]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return 0
}
