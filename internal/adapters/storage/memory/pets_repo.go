package memory

import (
	"context"
	"sort"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/pets"
)

// PetRepo implementa pets.Repository y customers.PetLinks.
type PetRepo struct {
	s *Store
}

func NewPetRepo(s *Store) *PetRepo {
	return &PetRepo{s: s}
}

func (r *PetRepo) Create(ctx context.Context, p *pets.Pet) error {
	return r.s.write(ctx, func(t *tables) error {
		// misma garantía que la FK en postgres
		if _, ok := t.customers[p.OwnerID]; !ok {
			return errs.NotFound("customer", p.OwnerID)
		}
		p.ID = t.nextID("pets")
		t.pets[p.ID] = *p
		return nil
	})
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var out pets.Pet
	err := r.s.read(ctx, func(t *tables) error {
		p, ok := t.pets[id]
		if !ok {
			return errs.NotFound("pet", id)
		}
		out = p
		return nil
	})
	return out, err
}

func (r *PetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(ctx, func(pets.Pet) bool { return true })
}

func (r *PetRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.filter(ctx, func(p pets.Pet) bool { return p.OwnerID == ownerID })
}

func (r *PetRepo) ExistingPetIDs(ctx context.Context, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	err := r.s.read(ctx, func(t *tables) error {
		for _, id := range ids {
			if _, ok := t.pets[id]; ok {
				out = append(out, id)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, err
}

func (r *PetRepo) AssignOwner(ctx context.Context, ownerID int64, petIDs []int64) error {
	return r.s.write(ctx, func(t *tables) error {
		if _, ok := t.customers[ownerID]; !ok {
			return errs.NotFound("customer", ownerID)
		}
		for _, id := range petIDs {
			p, ok := t.pets[id]
			if !ok {
				return errs.NotFound("pet", id)
			}
			p.OwnerID = ownerID
			t.pets[id] = p
		}
		return nil
	})
}

func (r *PetRepo) OwnerOf(ctx context.Context, petID int64) (int64, error) {
	p, err := r.GetByID(ctx, petID)
	if err != nil {
		return 0, err
	}
	return p.OwnerID, nil
}

func (r *PetRepo) filter(ctx context.Context, keep func(pets.Pet) bool) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	err := r.s.read(ctx, func(t *tables) error {
		for _, p := range t.pets {
			if keep(p) {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}
