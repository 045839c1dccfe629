package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-daycare/internal/domain/customers"
	"pet-daycare/internal/domain/errs"
)

type CustomersRepo struct {
	db *sql.DB
}

func NewCustomersRepo(db *sql.DB) *CustomersRepo {
	return &CustomersRepo{db: db}
}

func (r *CustomersRepo) Create(ctx context.Context, c *customers.Customer) error {
	return conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO customers (name, phone_number, notes)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.Name, c.PhoneNumber, c.Notes).Scan(&c.ID)
}

func (r *CustomersRepo) GetByID(ctx context.Context, id int64) (customers.Customer, error) {
	q := conn(ctx, r.db)

	var c customers.Customer
	err := q.QueryRowContext(ctx, `
		SELECT id, name, phone_number, notes
		FROM customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customers.Customer{}, errs.NotFound("customer", id)
		}
		return customers.Customer{}, err
	}

	byOwner, err := petIDsByOwner(ctx, q, []int64{id})
	if err != nil {
		return customers.Customer{}, err
	}
	c.PetIDs = byOwner[id]
	if c.PetIDs == nil {
		c.PetIDs = []int64{}
	}
	return c, nil
}

func (r *CustomersRepo) List(ctx context.Context) ([]customers.Customer, error) {
	q := conn(ctx, r.db)

	rows, err := q.QueryContext(ctx, `
		SELECT id, name, phone_number, notes
		FROM customers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customers.Customer, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var c customers.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Notes); err != nil {
			return nil, err
		}
		out = append(out, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	byOwner, err := petIDsByOwner(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].PetIDs = byOwner[out[i].ID]
		if out[i].PetIDs == nil {
			out[i].PetIDs = []int64{}
		}
	}
	return out, nil
}

// petIDsByOwner agrupa ids de mascotas por dueño, ordenados por id.
func petIDsByOwner(ctx context.Context, q executor, ownerIDs []int64) (map[int64][]int64, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT owner_id, id
		FROM pets
		WHERE owner_id = ANY($1)
		ORDER BY id ASC
	`, ownerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]int64)
	for rows.Next() {
		var owner, id int64
		if err := rows.Scan(&owner, &id); err != nil {
			return nil, err
		}
		out[owner] = append(out[owner], id)
	}
	return out, rows.Err()
}
