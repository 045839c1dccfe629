package postgres_test

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"pet-daycare/internal/adapters/storage/postgres"
	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/pets"
	"pet-daycare/internal/domain/schedules"
)

// Requiere una base descartable: TEST_DB_DSN=postgres://... go test ./...
func TestRepos_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db, nil); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// segunda corrida: no-op
	if err := postgres.Migrate(ctx, db, nil); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	if _, err := db.ExecContext(ctx, `
		TRUNCATE schedule_pets, schedule_employees, schedule_activities, schedules,
			employee_days_available, employee_skills, employees, pets, customers
		RESTART IDENTITY
	`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	txm := postgres.NewTxManager(db)
	cr := postgres.NewCustomersRepo(db)
	pr := postgres.NewPetsRepo(db)
	er := postgres.NewEmployeesRepo(db)
	sr := postgres.NewSchedulesRepo(db)

	amy := customers.Customer{Name: "Amy", PhoneNumber: "555"}
	if err := cr.Create(ctx, &amy); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	bd := time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC)
	rex := pets.Pet{Type: pets.TypeDog, Name: "Rex", OwnerID: amy.ID, BirthDate: &bd}
	if err := pr.Create(ctx, &rex); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	orphan := pets.Pet{Type: pets.TypeCat, Name: "Tom", OwnerID: 9999}
	if err := pr.Create(ctx, &orphan); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing owner, got %v", err)
	}

	got, err := cr.GetByID(ctx, amy.ID)
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if !reflect.DeepEqual(got.PetIDs, []int64{rex.ID}) {
		t.Fatalf("unexpected pet ids: %v", got.PetIDs)
	}

	back, err := pr.GetByID(ctx, rex.ID)
	if err != nil || back.BirthDate == nil || !back.BirthDate.Equal(bd) {
		t.Fatalf("birth date round-trip failed: %#v %v", back, err)
	}

	bo := employees.Employee{
		Name:          "Bo",
		Skills:        []employees.Skill{employees.SkillWalking},
		DaysAvailable: []employees.Day{employees.Monday},
	}
	if err := txm.WithinTx(ctx, func(ctx context.Context) error { return er.Create(ctx, &bo) }); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	avail, err := er.ListAvailableOn(ctx, employees.Monday)
	if err != nil || len(avail) != 1 || avail[0].ID != bo.ID {
		t.Fatalf("expected Bo on monday, got %#v %v", avail, err)
	}

	sc := schedules.Schedule{
		Date:        bd,
		Activities:  []employees.Skill{employees.SkillWalking},
		EmployeeIDs: []int64{bo.ID},
		PetIDs:      []int64{rex.ID},
	}
	if err := txm.WithinTx(ctx, func(ctx context.Context) error { return sr.Create(ctx, &sc) }); err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	list, err := sr.ListByAnyPet(ctx, []int64{rex.ID})
	if err != nil || len(list) != 1 || list[0].ID != sc.ID || !list[0].Date.Equal(bd) {
		t.Fatalf("unexpected schedules: %#v %v", list, err)
	}

	// rollback: nada de lo escrito dentro del tx queda
	boom := errors.New("boom")
	err = txm.WithinTx(ctx, func(ctx context.Context) error {
		c := customers.Customer{Name: "Ghost"}
		if err := cr.Create(ctx, &c); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	all, _ := cr.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected rollback, got %d customers", len(all))
	}
}
