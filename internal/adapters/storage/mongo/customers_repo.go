package mongo

import (
	"context"
	"errors"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type customerDoc struct {
	ID          int64  `bson:"_id"`
	Name        string `bson:"name"`
	PhoneNumber string `bson:"phone_number"`
	Notes       string `bson:"notes"`
}

type CustomerRepo struct {
	db *mongo.Database
}

func NewCustomerRepo(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, c *customers.Customer) error {
	id, err := nextID(ctx, r.db, colCustomers)
	if err != nil {
		return err
	}
	doc := customerDoc{ID: id, Name: c.Name, PhoneNumber: c.PhoneNumber, Notes: c.Notes}
	if _, err := r.db.Collection(colCustomers).InsertOne(ctx, doc); err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	var doc customerDoc
	err := r.db.Collection(colCustomers).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return customers.Customer{}, errs.NotFound("customer", id)
		}
		return customers.Customer{}, err
	}

	byOwner, err := r.petIDsByOwner(ctx, []int64{id})
	if err != nil {
		return customers.Customer{}, err
	}
	return doc.toDomain(byOwner[id]), nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]customers.Customer, error) {
	cur, err := r.db.Collection(colCustomers).Find(ctx, bson.M{}, byIDAsc)
	if err != nil {
		return nil, err
	}
	var docs []customerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	byOwner, err := r.petIDsByOwner(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]customers.Customer, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain(byOwner[d.ID]))
	}
	return out, nil
}

func (r *CustomerRepo) petIDsByOwner(ctx context.Context, ownerIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64)
	if len(ownerIDs) == 0 {
		return out, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1, "owner_id": 1})
	cur, err := r.db.Collection(colPets).Find(ctx, bson.M{"owner_id": bson.M{"$in": ownerIDs}}, opts)
	if err != nil {
		return nil, err
	}
	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, p := range docs {
		out[p.OwnerID] = append(out[p.OwnerID], p.ID)
	}
	return out, nil
}

func (d customerDoc) toDomain(petIDs []int64) customers.Customer {
	if petIDs == nil {
		petIDs = []int64{}
	}
	return customers.Customer{
		ID:          d.ID,
		Name:        d.Name,
		PhoneNumber: d.PhoneNumber,
		Notes:       d.Notes,
		PetIDs:      petIDs,
	}
}
