package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
	"pet-daycare/internal/domain/schedules"
)

// SchedulesRepo: Create escribe en varias tablas, llamarlo dentro de WithinTx.
type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

func (r *SchedulesRepo) Create(ctx context.Context, s *schedules.Schedule) error {
	q := conn(ctx, r.db)

	if err := q.QueryRowContext(ctx, `
		INSERT INTO schedules (date) VALUES ($1) RETURNING id
	`, s.Date).Scan(&s.ID); err != nil {
		return err
	}

	for _, a := range s.Activities {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO schedule_activities (schedule_id, activity) VALUES ($1, $2)
		`, s.ID, string(a)); err != nil {
			return err
		}
	}
	for _, id := range s.EmployeeIDs {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO schedule_employees (schedule_id, employee_id) VALUES ($1, $2)
		`, s.ID, id); err != nil {
			if isFKViolation(err) {
				return errs.NotFound("employee", id)
			}
			return err
		}
	}
	for _, id := range s.PetIDs {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO schedule_pets (schedule_id, pet_id) VALUES ($1, $2)
		`, s.ID, id); err != nil {
			if isFKViolation(err) {
				return errs.NotFound("pet", id)
			}
			return err
		}
	}
	return nil
}

func (r *SchedulesRepo) List(ctx context.Context) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, date FROM schedules ORDER BY id ASC
	`)
}

func (r *SchedulesRepo) ListByPet(ctx context.Context, petID int64) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, date FROM schedules
		WHERE id IN (SELECT schedule_id FROM schedule_pets WHERE pet_id = $1)
		ORDER BY id ASC
	`, petID)
}

func (r *SchedulesRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, date FROM schedules
		WHERE id IN (SELECT schedule_id FROM schedule_employees WHERE employee_id = $1)
		ORDER BY id ASC
	`, employeeID)
}

func (r *SchedulesRepo) ListByAnyPet(ctx context.Context, petIDs []int64) ([]schedules.Schedule, error) {
	return r.query(ctx, `
		SELECT id, date FROM schedules
		WHERE id IN (SELECT schedule_id FROM schedule_pets WHERE pet_id = ANY($1))
		ORDER BY id ASC
	`, petIDs)
}

func (r *SchedulesRepo) query(ctx context.Context, query string, args ...any) ([]schedules.Schedule, error) {
	q := conn(ctx, r.db)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]schedules.Schedule, 0)
	for rows.Next() {
		var s schedules.Schedule
		var d time.Time
		if err := rows.Scan(&s.ID, &d); err != nil {
			rows.Close()
			return nil, err
		}
		s.Date = d
		out = append(out, s)
	}
	err = rows.Err()
	rows.Close()
	if err != nil || len(out) == 0 {
		return out, err
	}

	ids := make([]int64, 0, len(out))
	for _, s := range out {
		ids = append(ids, s.ID)
	}

	acts, err := stringsByID(ctx, q, `
		SELECT schedule_id, activity FROM schedule_activities WHERE schedule_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	emps, err := idsByID(ctx, q, `
		SELECT schedule_id, employee_id FROM schedule_employees
		WHERE schedule_id = ANY($1) ORDER BY employee_id ASC
	`, ids)
	if err != nil {
		return nil, err
	}
	pets, err := idsByID(ctx, q, `
		SELECT schedule_id, pet_id FROM schedule_pets
		WHERE schedule_id = ANY($1) ORDER BY pet_id ASC
	`, ids)
	if err != nil {
		return nil, err
	}

	for i := range out {
		id := out[i].ID
		if out[i].Activities, err = employees.NormalizeSkills(acts[id]); err != nil {
			return nil, err
		}
		out[i].EmployeeIDs = emps[id]
		out[i].PetIDs = pets[id]
	}
	return out, nil
}

func idsByID(ctx context.Context, q executor, query string, ids []int64) (map[int64][]int64, error) {
	rows, err := q.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]int64)
	for rows.Next() {
		var id, v int64
		if err := rows.Scan(&id, &v); err != nil {
			return nil, err
		}
		out[id] = append(out[id], v)
	}
	return out, rows.Err()
}
