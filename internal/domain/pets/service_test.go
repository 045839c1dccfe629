package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/errs"
)

type testRepo struct {
	next int64
	byID map[int64]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p *Pet) error {
	r.next++
	p.ID = r.next
	r.byID[p.ID] = *p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errs.NotFound("pet", id)
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0)
	for id := int64(1); id <= r.next; id++ {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	all, _ := r.List(ctx)
	out := make([]Pet, 0)
	for _, p := range all {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type testOwners map[int64]customers.Customer

func (o testOwners) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	c, ok := o[id]
	if !ok {
		return customers.Customer{}, errs.NotFound("customer", id)
	}
	return c, nil
}

type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_Create_LinksOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testOwners{1: {ID: 1, Name: "Amy"}}, passTx{})

	bd := time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(context.Background(), CreateInput{
		Type:      "dog",
		Name:      " Rex ",
		BirthDate: &bd,
		OwnerID:   1,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == 0 || p.Type != TypeDog || p.Name != "Rex" || p.OwnerID != 1 {
		t.Fatalf("unexpected pet: %#v", p)
	}

	byOwner, _ := svc.ListByOwner(context.Background(), 1)
	if len(byOwner) != 1 || byOwner[0].ID != p.ID {
		t.Fatalf("expected [Rex] for owner 1, got %#v", byOwner)
	}
}

func TestService_Create_UnknownOwner_PersistsNothing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testOwners{}, passTx{})

	_, err := svc.Create(context.Background(), CreateInput{Type: "CAT", Name: "Tom", OwnerID: 42})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no pet persisted, got %d", len(repo.byID))
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), testOwners{1: {ID: 1}}, passTx{})

	cases := []CreateInput{
		{Type: "", Name: "Rex", OwnerID: 1},
		{Type: "DRAGON", Name: "Rex", OwnerID: 1},
		{Type: "DOG", Name: "", OwnerID: 1},
		{Type: "DOG", Name: "Rex", OwnerID: 0},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, errs.ErrInvalidInput) {
			t.Fatalf("%#v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_ListByOwner_EmptyWhenNone(t *testing.T) {
	svc := NewService(newTestRepo(), testOwners{}, passTx{})

	items, err := svc.ListByOwner(context.Background(), 99)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), testOwners{}, passTx{})
	if _, err := svc.GetByID(context.Background(), 5); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
