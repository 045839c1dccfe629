package employees

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"pet-daycare/internal/domain/errs"
)

type testRepo struct {
	next int64
	byID map[int64]Employee
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Employee{}}
}

func (r *testRepo) Create(ctx context.Context, e *Employee) error {
	r.next++
	e.ID = r.next
	r.byID[e.ID] = *e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return Employee{}, errs.NotFound("employee", id)
	}
	return e, nil
}

func (r *testRepo) List(ctx context.Context) ([]Employee, error) {
	out := make([]Employee, 0)
	for id := int64(1); id <= r.next; id++ {
		if e, ok := r.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) ListAvailableOn(ctx context.Context, day Day) ([]Employee, error) {
	all, _ := r.List(ctx)
	out := make([]Employee, 0)
	for _, e := range all {
		for _, d := range e.DaysAvailable {
			if d == day {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (r *testRepo) SetAvailability(ctx context.Context, id int64, days []Day) error {
	e, ok := r.byID[id]
	if !ok {
		return errs.NotFound("employee", id)
	}
	e.DaysAvailable = days
	r.byID[id] = e
	return nil
}

type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestDayOf(t *testing.T) {
	cases := map[string]Day{
		"2019-12-25": Wednesday,
		"2019-12-29": Sunday,
		"2019-12-30": Monday,
	}
	for raw, want := range cases {
		d, _ := time.Parse("2006-01-02", raw)
		if got := DayOf(d); got != want {
			t.Fatalf("%s: expected %s, got %s", raw, want, got)
		}
	}
}

func TestNormalizeSkills_DedupesAndOrders(t *testing.T) {
	got, err := NormalizeSkills([]string{"shaving", "PETTING", "SHAVING", "walking"})
	if err != nil {
		t.Fatalf("NormalizeSkills error: %v", err)
	}
	want := []Skill{SkillPetting, SkillWalking, SkillShaving}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := NormalizeSkills([]string{"JUGGLING"}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), passTx{})

	if _, err := svc.Create(context.Background(), CreateInput{Name: " "}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Bo", DaysAvailable: []string{"FUNDAY"}}); !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown day, got %v", err)
	}
}

func TestService_FindAvailable_SupersetOfSkills(t *testing.T) {
	svc := NewService(newTestRepo(), passTx{})
	ctx := context.Background()

	bo, _ := svc.Create(ctx, CreateInput{
		Name:          "Bo",
		Skills:        []string{"PETTING", "FEEDING"},
		DaysAvailable: []string{"MONDAY", "WEDNESDAY"},
	})
	_, _ = svc.Create(ctx, CreateInput{
		Name:          "Cy",
		Skills:        []string{"PETTING"},
		DaysAvailable: []string{"WEDNESDAY"},
	})
	_, _ = svc.Create(ctx, CreateInput{
		Name:          "Di",
		Skills:        []string{"PETTING", "FEEDING"},
		DaysAvailable: []string{"FRIDAY"},
	})

	wed := time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC)
	got, err := svc.FindAvailable(ctx, wed, []string{"FEEDING", "PETTING"})
	if err != nil {
		t.Fatalf("FindAvailable error: %v", err)
	}
	if len(got) != 1 || got[0].ID != bo.ID {
		t.Fatalf("expected only Bo, got %#v", got)
	}

	// sin skills requeridas: todos los disponibles ese día
	got, _ = svc.FindAvailable(ctx, wed, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 employees on wednesday, got %d", len(got))
	}

	tue := wed.AddDate(0, 0, -1)
	got, _ = svc.FindAvailable(ctx, tue, []string{"PETTING"})
	if len(got) != 0 {
		t.Fatalf("expected nobody on tuesday, got %d", len(got))
	}
}

func TestService_SetAvailability(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, passTx{})
	ctx := context.Background()

	e, _ := svc.Create(ctx, CreateInput{Name: "Bo", DaysAvailable: []string{"MONDAY"}})

	if err := svc.SetAvailability(ctx, e.ID, []string{"SUNDAY", "friday", "SUNDAY"}); err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	got, _ := svc.GetByID(ctx, e.ID)
	if !reflect.DeepEqual(got.DaysAvailable, []Day{Friday, Sunday}) {
		t.Fatalf("unexpected days: %v", got.DaysAvailable)
	}

	if err := svc.SetAvailability(ctx, 99, []string{"MONDAY"}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
