package customers

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/refs"
)

// -------------------------
// Fakes (in-memory)
// -------------------------

type testRepo struct {
	next int64
	byID map[int64]Customer
	pets *testPets
}

func newTestRepo(p *testPets) *testRepo {
	return &testRepo{byID: map[int64]Customer{}, pets: p}
}

func (r *testRepo) Create(ctx context.Context, c *Customer) error {
	r.next++
	c.ID = r.next
	r.byID[c.ID] = *c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return Customer{}, errs.NotFound("customer", id)
	}
	c.PetIDs = r.pets.byOwner(id)
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]Customer, error) {
	out := make([]Customer, 0, len(r.byID))
	for id := int64(1); id <= r.next; id++ {
		if c, ok := r.byID[id]; ok {
			c.PetIDs = r.pets.byOwner(id)
			out = append(out, c)
		}
	}
	return out, nil
}

// testPets guarda petID -> ownerID.
type testPets struct {
	owner map[int64]int64
}

func (p *testPets) ExistingPetIDs(ctx context.Context, ids []int64) ([]int64, error) {
	out := make([]int64, 0)
	for _, id := range ids {
		if _, ok := p.owner[id]; ok {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (p *testPets) AssignOwner(ctx context.Context, ownerID int64, petIDs []int64) error {
	for _, id := range petIDs {
		p.owner[id] = ownerID
	}
	return nil
}

func (p *testPets) OwnerOf(ctx context.Context, petID int64) (int64, error) {
	o, ok := p.owner[petID]
	if !ok {
		return 0, errs.NotFound("pet", petID)
	}
	return o, nil
}

func (p *testPets) byOwner(ownerID int64) []int64 {
	out := make([]int64, 0)
	for id, o := range p.owner {
		if o == ownerID {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Las transacciones las cubre el memory store; acá basta con ejecutar fn.
type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newFixture(opts ...Option) (*Service, *testRepo, *testPets) {
	pets := &testPets{owner: map[int64]int64{}}
	repo := newTestRepo(pets)
	return NewService(repo, pets, passTx{}, opts...), repo, pets
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiresName(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_DropsUnknownPetIDs(t *testing.T) {
	svc, _, pets := newFixture()
	pets.owner[10] = 99 // mascota existente de otro dueño

	c, err := svc.Create(context.Background(), CreateInput{
		Name:   "Amy",
		PetIDs: []int64{10, 404},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !reflect.DeepEqual(c.PetIDs, []int64{10}) {
		t.Fatalf("expected only the valid pet, got %v", c.PetIDs)
	}
	if pets.owner[10] != c.ID {
		t.Fatalf("expected pet 10 to point to new customer %d, got %d", c.ID, pets.owner[10])
	}
}

func TestService_Create_FailPolicy_RejectsUnknownPetIDs(t *testing.T) {
	svc, repo, pets := newFixture(WithPetPolicy(refs.Fail))
	pets.owner[10] = 99

	_, err := svc.Create(context.Background(), CreateInput{
		Name:   "Amy",
		PetIDs: []int64{10, 404},
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted, got %d customers", len(repo.byID))
	}
	if pets.owner[10] != 99 {
		t.Fatalf("expected pet owner untouched")
	}
}

func TestService_GetByPetID(t *testing.T) {
	svc, _, pets := newFixture()

	amy, err := svc.Create(context.Background(), CreateInput{Name: "Amy"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	pets.owner[7] = amy.ID

	got, err := svc.GetByPetID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByPetID error: %v", err)
	}
	if got.ID != amy.ID || !reflect.DeepEqual(got.PetIDs, []int64{7}) {
		t.Fatalf("unexpected owner: %#v", got)
	}

	if _, err := svc.GetByPetID(context.Background(), 8); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown pet, got %v", err)
	}
}

func TestService_List(t *testing.T) {
	svc, _, _ := newFixture()
	for _, n := range []string{"Amy", "Ben"} {
		if _, err := svc.Create(context.Background(), CreateInput{Name: n}); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Amy" || items[1].Name != "Ben" {
		t.Fatalf("unexpected list: %#v", items)
	}
}
