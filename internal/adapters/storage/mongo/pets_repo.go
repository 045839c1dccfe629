package mongo

import (
	"context"
	"errors"
	"time"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type petDoc struct {
	ID        int64      `bson:"_id"`
	Type      string     `bson:"type"`
	Name      string     `bson:"name"`
	BirthDate *time.Time `bson:"birth_date,omitempty"`
	Notes     string     `bson:"notes"`
	OwnerID   int64      `bson:"owner_id"`
}

// PetRepo implementa pets.Repository y customers.PetLinks.
type PetRepo struct {
	db *mongo.Database
}

func NewPetRepo(db *mongo.Database) *PetRepo {
	return &PetRepo{db: db}
}

func (r *PetRepo) Create(ctx context.Context, p *pets.Pet) error {
	if err := r.customerExists(ctx, p.OwnerID); err != nil {
		return err
	}

	id, err := nextID(ctx, r.db, colPets)
	if err != nil {
		return err
	}
	doc := petDoc{
		ID:        id,
		Type:      string(p.Type),
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Notes:     p.Notes,
		OwnerID:   p.OwnerID,
	}
	if _, err := r.db.Collection(colPets).InsertOne(ctx, doc); err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var doc petDoc
	err := r.db.Collection(colPets).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, errs.NotFound("pet", id)
		}
		return pets.Pet{}, err
	}
	return doc.toDomain(), nil
}

func (r *PetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.find(ctx, bson.M{})
}

func (r *PetRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *PetRepo) ExistingPetIDs(ctx context.Context, ids []int64) ([]int64, error) {
	items, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out, nil
}

func (r *PetRepo) AssignOwner(ctx context.Context, ownerID int64, petIDs []int64) error {
	if err := r.customerExists(ctx, ownerID); err != nil {
		return err
	}
	_, err := r.db.Collection(colPets).UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": petIDs}},
		bson.M{"$set": bson.M{"owner_id": ownerID}},
	)
	return err
}

func (r *PetRepo) OwnerOf(ctx context.Context, petID int64) (int64, error) {
	p, err := r.GetByID(ctx, petID)
	if err != nil {
		return 0, err
	}
	return p.OwnerID, nil
}

func (r *PetRepo) find(ctx context.Context, filter bson.M) ([]pets.Pet, error) {
	cur, err := r.db.Collection(colPets).Find(ctx, filter, byIDAsc)
	if err != nil {
		return nil, err
	}
	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Mongo no tiene FKs: se valida a mano.
func (r *PetRepo) customerExists(ctx context.Context, id int64) error {
	n, err := r.db.Collection(colCustomers).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFound("customer", id)
	}
	return nil
}

func (d petDoc) toDomain() pets.Pet {
	var bd *time.Time
	if d.BirthDate != nil {
		t := d.BirthDate.UTC()
		bd = &t
	}
	return pets.Pet{
		ID:        d.ID,
		Type:      pets.Type(d.Type),
		Name:      d.Name,
		BirthDate: bd,
		Notes:     d.Notes,
		OwnerID:   d.OwnerID,
	}
}
