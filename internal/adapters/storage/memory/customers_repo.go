package memory

import (
	"context"
	"sort"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/errs"
)

type CustomerRepo struct {
	s *Store
}

func NewCustomerRepo(s *Store) *CustomerRepo {
	return &CustomerRepo{s: s}
}

func (r *CustomerRepo) Create(ctx context.Context, c *customers.Customer) error {
	return r.s.write(ctx, func(t *tables) error {
		c.ID = t.nextID("customers")
		stored := *c
		stored.PetIDs = nil // se deriva de pets.owner_id
		t.customers[c.ID] = stored
		return nil
	})
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	var out customers.Customer
	err := r.s.read(ctx, func(t *tables) error {
		c, ok := t.customers[id]
		if !ok {
			return errs.NotFound("customer", id)
		}
		c.PetIDs = t.petIDsOf(id)
		out = c
		return nil
	})
	return out, err
}

func (r *CustomerRepo) List(ctx context.Context) ([]customers.Customer, error) {
	out := make([]customers.Customer, 0)
	err := r.s.read(ctx, func(t *tables) error {
		for _, c := range t.customers {
			c.PetIDs = t.petIDsOf(c.ID)
			out = append(out, c)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (t *tables) petIDsOf(ownerID int64) []int64 {
	out := make([]int64, 0)
	for id, p := range t.pets {
		if p.OwnerID == ownerID {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
