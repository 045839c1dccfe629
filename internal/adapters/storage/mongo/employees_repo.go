package mongo

import (
	"context"
	"errors"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type employeeDoc struct {
	ID            int64    `bson:"_id"`
	Name          string   `bson:"name"`
	Skills        []string `bson:"skills"`
	DaysAvailable []string `bson:"days_available"`
}

type EmployeeRepo struct {
	db *mongo.Database
}

func NewEmployeeRepo(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) Create(ctx context.Context, e *employees.Employee) error {
	id, err := nextID(ctx, r.db, colEmployees)
	if err != nil {
		return err
	}
	doc := employeeDoc{
		ID:            id,
		Name:          e.Name,
		Skills:        skillStrings(e.Skills),
		DaysAvailable: dayStrings(e.DaysAvailable),
	}
	if _, err := r.db.Collection(colEmployees).InsertOne(ctx, doc); err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (employees.Employee, error) {
	var doc employeeDoc
	err := r.db.Collection(colEmployees).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employees.Employee{}, errs.NotFound("employee", id)
		}
		return employees.Employee{}, err
	}
	return doc.toDomain()
}

func (r *EmployeeRepo) List(ctx context.Context) ([]employees.Employee, error) {
	return r.find(ctx, bson.M{})
}

func (r *EmployeeRepo) ListAvailableOn(ctx context.Context, day employees.Day) ([]employees.Employee, error) {
	// match sobre el array: basta con que contenga day
	return r.find(ctx, bson.M{"days_available": string(day)})
}

func (r *EmployeeRepo) SetAvailability(ctx context.Context, id int64, days []employees.Day) error {
	res, err := r.db.Collection(colEmployees).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"days_available": dayStrings(days)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("employee", id)
	}
	return nil
}

func (r *EmployeeRepo) find(ctx context.Context, filter bson.M) ([]employees.Employee, error) {
	cur, err := r.db.Collection(colEmployees).Find(ctx, filter, byIDAsc)
	if err != nil {
		return nil, err
	}
	var docs []employeeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]employees.Employee, 0, len(docs))
	for _, d := range docs {
		e, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d employeeDoc) toDomain() (employees.Employee, error) {
	skills, err := employees.NormalizeSkills(d.Skills)
	if err != nil {
		return employees.Employee{}, err
	}
	days, err := employees.NormalizeDays(d.DaysAvailable)
	if err != nil {
		return employees.Employee{}, err
	}
	return employees.Employee{ID: d.ID, Name: d.Name, Skills: skills, DaysAvailable: days}, nil
}

func skillStrings(in []employees.Skill) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

func dayStrings(in []employees.Day) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, string(d))
	}
	return out
}
