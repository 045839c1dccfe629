package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/pets"
)

// PetsRepo implementa pets.Repository y customers.PetLinks.
type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, type, name, birth_date, notes, owner_id`

func (r *PetsRepo) Create(ctx context.Context, p *pets.Pet) error {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO pets (type, name, birth_date, notes, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		string(p.Type),
		p.Name,
		toNullDate(p.BirthDate),
		p.Notes,
		p.OwnerID,
	).Scan(&p.ID)
	if isFKViolation(err) {
		return errs.NotFound("customer", p.OwnerID)
	}
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, errs.NotFound("pet", id)
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY id ASC
	`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_id = $1
		ORDER BY id ASC
	`, ownerID)
}

func (r *PetsRepo) ExistingPetIDs(ctx context.Context, ids []int64) ([]int64, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT id FROM pets WHERE id = ANY($1) ORDER BY id ASC
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PetsRepo) AssignOwner(ctx context.Context, ownerID int64, petIDs []int64) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE pets SET owner_id = $1 WHERE id = ANY($2)
	`, ownerID, petIDs)
	if isFKViolation(err) {
		return errs.NotFound("customer", ownerID)
	}
	return err
}

func (r *PetsRepo) OwnerOf(ctx context.Context, petID int64) (int64, error) {
	var owner int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT owner_id FROM pets WHERE id = $1
	`, petID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.NotFound("pet", petID)
	}
	return owner, err
}

func (r *PetsRepo) query(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var typ string
	var bd sql.NullTime
	if err := s.Scan(&p.ID, &typ, &p.Name, &bd, &p.Notes, &p.OwnerID); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.Type(typ)
	p.BirthDate = fromNullDate(bd)
	return p, nil
}
