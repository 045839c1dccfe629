package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-daycare/internal/domain/employees"
	"pet-daycare/internal/domain/errs"
)

// EmployeesRepo guarda skills y días en tablas hijas.
// Create y SetAvailability escriben varias filas: llamarlos dentro de WithinTx.
type EmployeesRepo struct {
	db *sql.DB
}

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

func (r *EmployeesRepo) Create(ctx context.Context, e *employees.Employee) error {
	q := conn(ctx, r.db)

	if err := q.QueryRowContext(ctx, `
		INSERT INTO employees (name) VALUES ($1) RETURNING id
	`, e.Name).Scan(&e.ID); err != nil {
		return err
	}

	for _, s := range e.Skills {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO employee_skills (employee_id, skill) VALUES ($1, $2)
		`, e.ID, string(s)); err != nil {
			return err
		}
	}
	return insertDays(ctx, q, e.ID, e.DaysAvailable)
}

func (r *EmployeesRepo) GetByID(ctx context.Context, id int64) (employees.Employee, error) {
	q := conn(ctx, r.db)

	var e employees.Employee
	err := q.QueryRowContext(ctx, `
		SELECT id, name FROM employees WHERE id = $1
	`, id).Scan(&e.ID, &e.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employees.Employee{}, errs.NotFound("employee", id)
		}
		return employees.Employee{}, err
	}

	out := []employees.Employee{e}
	if err := hydrateEmployees(ctx, q, out); err != nil {
		return employees.Employee{}, err
	}
	return out[0], nil
}

func (r *EmployeesRepo) List(ctx context.Context) ([]employees.Employee, error) {
	return r.query(ctx, `
		SELECT id, name FROM employees ORDER BY id ASC
	`)
}

func (r *EmployeesRepo) ListAvailableOn(ctx context.Context, day employees.Day) ([]employees.Employee, error) {
	return r.query(ctx, `
		SELECT e.id, e.name
		FROM employees e
		JOIN employee_days_available d ON d.employee_id = e.id
		WHERE d.day = $1
		ORDER BY e.id ASC
	`, string(day))
}

func (r *EmployeesRepo) SetAvailability(ctx context.Context, id int64, days []employees.Day) error {
	q := conn(ctx, r.db)

	var exists bool
	if err := q.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)
	`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.NotFound("employee", id)
	}

	if _, err := q.ExecContext(ctx, `
		DELETE FROM employee_days_available WHERE employee_id = $1
	`, id); err != nil {
		return err
	}
	return insertDays(ctx, q, id, days)
}

func (r *EmployeesRepo) query(ctx context.Context, query string, args ...any) ([]employees.Employee, error) {
	q := conn(ctx, r.db)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]employees.Employee, 0)
	for rows.Next() {
		var e employees.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, e)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := hydrateEmployees(ctx, q, out); err != nil {
		return nil, err
	}
	return out, nil
}

func insertDays(ctx context.Context, q executor, employeeID int64, days []employees.Day) error {
	for _, d := range days {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO employee_days_available (employee_id, day) VALUES ($1, $2)
		`, employeeID, string(d)); err != nil {
			return err
		}
	}
	return nil
}

// hydrateEmployees completa Skills y DaysAvailable (en orden del enum).
func hydrateEmployees(ctx context.Context, q executor, items []employees.Employee) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, e := range items {
		ids = append(ids, e.ID)
	}

	skills, err := stringsByID(ctx, q, `
		SELECT employee_id, skill FROM employee_skills WHERE employee_id = ANY($1)
	`, ids)
	if err != nil {
		return err
	}
	days, err := stringsByID(ctx, q, `
		SELECT employee_id, day FROM employee_days_available WHERE employee_id = ANY($1)
	`, ids)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].Skills, err = employees.NormalizeSkills(skills[items[i].ID]); err != nil {
			return err
		}
		if items[i].DaysAvailable, err = employees.NormalizeDays(days[items[i].ID]); err != nil {
			return err
		}
	}
	return nil
}

// stringsByID ejecuta un SELECT (id, valor) y agrupa los valores por id.
func stringsByID(ctx context.Context, q executor, query string, ids []int64) (map[int64][]string, error) {
	rows, err := q.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var v string
		if err := rows.Scan(&id, &v); err != nil {
			return nil, err
		}
		out[id] = append(out[id], v)
	}
	return out, rows.Err()
}
