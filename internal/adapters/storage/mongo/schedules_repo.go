package mongo

import (
	"context"
	"time"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/schedules"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type scheduleDoc struct {
	ID          int64     `bson:"_id"`
	Date        time.Time `bson:"date"`
	Activities  []string  `bson:"activities"`
	EmployeeIDs []int64   `bson:"employee_ids"`
	PetIDs      []int64   `bson:"pet_ids"`
}

type ScheduleRepo struct {
	db *mongo.Database
}

func NewScheduleRepo(db *mongo.Database) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Create(ctx context.Context, s *schedules.Schedule) error {
	if err := r.mustExist(ctx, colEmployees, "employee", s.EmployeeIDs); err != nil {
		return err
	}
	if err := r.mustExist(ctx, colPets, "pet", s.PetIDs); err != nil {
		return err
	}

	id, err := nextID(ctx, r.db, colSchedules)
	if err != nil {
		return err
	}
	doc := scheduleDoc{
		ID:          id,
		Date:        s.Date,
		Activities:  skillStrings(s.Activities),
		EmployeeIDs: nonNil(s.EmployeeIDs),
		PetIDs:      nonNil(s.PetIDs),
	}
	if _, err := r.db.Collection(colSchedules).InsertOne(ctx, doc); err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *ScheduleRepo) List(ctx context.Context) ([]schedules.Schedule, error) {
	return r.find(ctx, bson.M{})
}

func (r *ScheduleRepo) ListByPet(ctx context.Context, petID int64) ([]schedules.Schedule, error) {
	return r.find(ctx, bson.M{"pet_ids": petID})
}

func (r *ScheduleRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]schedules.Schedule, error) {
	return r.find(ctx, bson.M{"employee_ids": employeeID})
}

func (r *ScheduleRepo) ListByAnyPet(ctx context.Context, petIDs []int64) ([]schedules.Schedule, error) {
	return r.find(ctx, bson.M{"pet_ids": bson.M{"$in": petIDs}})
}

func (r *ScheduleRepo) find(ctx context.Context, filter bson.M) ([]schedules.Schedule, error) {
	cur, err := r.db.Collection(colSchedules).Find(ctx, filter, byIDAsc)
	if err != nil {
		return nil, err
	}
	var docs []scheduleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]schedules.Schedule, 0, len(docs))
	for _, d := range docs {
		acts, err := employees.NormalizeSkills(d.Activities)
		if err != nil {
			return nil, err
		}
		out = append(out, schedules.Schedule{
			ID:          d.ID,
			Date:        d.Date.UTC(),
			Activities:  acts,
			EmployeeIDs: d.EmployeeIDs,
			PetIDs:      d.PetIDs,
		})
	}
	return out, nil
}

// mustExist devuelve NotFound con el primer id que no está en col.
func (r *ScheduleRepo) mustExist(ctx context.Context, col, resource string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	cur, err := r.db.Collection(col).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	var found []struct {
		ID int64 `bson:"_id"`
	}
	if err := cur.All(ctx, &found); err != nil {
		return err
	}
	have := make(map[int64]struct{}, len(found))
	for _, f := range found {
		have[f.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return errs.NotFound(resource, id)
		}
	}
	return nil
}

func nonNil(in []int64) []int64 {
	if in == nil {
		return []int64{}
	}
	return in
}
