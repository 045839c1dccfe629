package schedules

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/pets"
	"pet-daycare/internal/domain/refs"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	items []Schedule
}

func (r *testRepo) Create(ctx context.Context, s *Schedule) error {
	s.ID = int64(len(r.items) + 1)
	r.items = append(r.items, *s)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Schedule, error) {
	return append([]Schedule{}, r.items...), nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]Schedule, error) {
	return r.filter(func(s Schedule) bool { return contains(s.PetIDs, petID) }), nil
}

func (r *testRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]Schedule, error) {
	return r.filter(func(s Schedule) bool { return contains(s.EmployeeIDs, employeeID) }), nil
}

func (r *testRepo) ListByAnyPet(ctx context.Context, petIDs []int64) ([]Schedule, error) {
	return r.filter(func(s Schedule) bool {
		for _, id := range petIDs {
			if contains(s.PetIDs, id) {
				return true
			}
		}
		return false
	}), nil
}

func (r *testRepo) filter(keep func(Schedule) bool) []Schedule {
	out := make([]Schedule, 0)
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type testPets map[int64]pets.Pet

func (p testPets) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	v, ok := p[id]
	if !ok {
		return pets.Pet{}, errs.NotFound("pet", id)
	}
	return v, nil
}

type testEmployees map[int64]employees.Employee

func (e testEmployees) GetByID(ctx context.Context, id int64) (employees.Employee, error) {
	v, ok := e[id]
	if !ok {
		return employees.Employee{}, errs.NotFound("employee", id)
	}
	return v, nil
}

type testCustomers map[int64]customers.Customer

func (c testCustomers) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	v, ok := c[id]
	if !ok {
		return customers.Customer{}, errs.NotFound("customer", id)
	}
	return v, nil
}

type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Amy (1) tiene Rex (10); Ben (2) tiene Tom (20). Bo (100) pasea, Cy (101) alimenta.
func newFixture(opts ...Option) (*Service, *testRepo) {
	repo := &testRepo{}
	p := testPets{
		10: {ID: 10, Name: "Rex", OwnerID: 1},
		20: {ID: 20, Name: "Tom", OwnerID: 2},
	}
	e := testEmployees{
		100: {ID: 100, Name: "Bo", Skills: []employees.Skill{employees.SkillWalking}},
		101: {ID: 101, Name: "Cy", Skills: []employees.Skill{employees.SkillFeeding}},
	}
	c := testCustomers{
		1: {ID: 1, Name: "Amy", PetIDs: []int64{10}},
		2: {ID: 2, Name: "Ben", PetIDs: []int64{20}},
		3: {ID: 3, Name: "Cat"},
	}
	return NewService(repo, p, e, c, passTx{}, opts...), repo
}

var xmas = time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC)

// -------------------------
// Tests
// -------------------------

func TestService_Create_AndQueryByParticipant(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	sc, err := svc.Create(ctx, CreateInput{
		Date:        xmas,
		Activities:  []string{"FEEDING", "WALKING"},
		EmployeeIDs: []int64{100, 100},
		PetIDs:      []int64{10},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if sc.ID == 0 || !reflect.DeepEqual(sc.EmployeeIDs, []int64{100}) {
		t.Fatalf("unexpected schedule: %#v", sc)
	}
	if !reflect.DeepEqual(sc.Activities, []employees.Skill{employees.SkillWalking, employees.SkillFeeding}) {
		t.Fatalf("expected activities in enum order, got %v", sc.Activities)
	}

	got, _ := svc.ListForEmployee(ctx, 100)
	if len(got) != 1 || got[0].ID != sc.ID {
		t.Fatalf("expected schedule for assigned employee, got %#v", got)
	}
	got, _ = svc.ListForEmployee(ctx, 101)
	if len(got) != 0 {
		t.Fatalf("expected nothing for unassigned employee, got %#v", got)
	}

	got, _ = svc.ListForPet(ctx, 10)
	if len(got) != 1 {
		t.Fatalf("expected schedule for pet 10, got %d", len(got))
	}
}

func TestService_Create_FailsOnUnknownReference(t *testing.T) {
	svc, repo := newFixture()

	_, err := svc.Create(context.Background(), CreateInput{
		Date:        xmas,
		EmployeeIDs: []int64{100, 999},
		PetIDs:      []int64{10},
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(repo.items))
	}
}

func TestService_Create_DropPolicy(t *testing.T) {
	svc, _ := newFixture(WithRefPolicy(refs.Drop))

	sc, err := svc.Create(context.Background(), CreateInput{
		Date:        xmas,
		EmployeeIDs: []int64{999, 100},
		PetIDs:      []int64{10, 888},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !reflect.DeepEqual(sc.EmployeeIDs, []int64{100}) || !reflect.DeepEqual(sc.PetIDs, []int64{10}) {
		t.Fatalf("expected unknown ids dropped, got %#v", sc)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newFixture()

	if _, err := svc.Create(context.Background(), CreateInput{}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing date, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Date: xmas, Activities: []string{"BATHING"}}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown activity, got %v", err)
	}
}

func TestService_Create_SkillCoverage(t *testing.T) {
	// sin el flag no se valida
	loose, _ := newFixture()
	if _, err := loose.Create(context.Background(), CreateInput{
		Date:        xmas,
		Activities:  []string{"SHAVING"},
		EmployeeIDs: []int64{100},
	}); err != nil {
		t.Fatalf("expected unchecked create, got %v", err)
	}

	strict, repo := newFixture(WithSkillCoverage(true))
	_, err := strict.Create(context.Background(), CreateInput{
		Date:        xmas,
		Activities:  []string{"WALKING", "SHAVING"},
		EmployeeIDs: []int64{100, 101},
	})
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected nothing persisted")
	}

	if _, err := strict.Create(context.Background(), CreateInput{
		Date:        xmas,
		Activities:  []string{"WALKING", "FEEDING"},
		EmployeeIDs: []int64{100, 101},
	}); err != nil {
		t.Fatalf("expected covered schedule to pass, got %v", err)
	}
}

func TestService_ListForCustomer_AnyPet(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	shared, _ := svc.Create(ctx, CreateInput{Date: xmas, PetIDs: []int64{10, 20}})
	onlyTom, _ := svc.Create(ctx, CreateInput{Date: xmas, PetIDs: []int64{20}})

	got, err := svc.ListForCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("ListForCustomer error: %v", err)
	}
	if len(got) != 1 || got[0].ID != shared.ID {
		t.Fatalf("expected only the shared schedule for Amy, got %#v", got)
	}

	got, _ = svc.ListForCustomer(ctx, 2)
	if len(got) != 2 || got[1].ID != onlyTom.ID {
		t.Fatalf("expected both schedules for Ben, got %#v", got)
	}

	got, _ = svc.ListForCustomer(ctx, 3)
	if len(got) != 0 {
		t.Fatalf("expected empty list for customer without pets")
	}

	if _, err := svc.ListForCustomer(ctx, 404); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ReadSide_NotFound(t *testing.T) {
	svc, _ := newFixture()
	if _, err := svc.ListForPet(context.Background(), 404); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for pet, got %v", err)
	}
	if _, err := svc.ListForEmployee(context.Background(), 404); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for employee, got %v", err)
	}
}
