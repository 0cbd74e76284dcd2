package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-api/internal/entities"

	"github.com/lib/pq"
)

const employeeColumns = "id, full_name, email, date_of_birth, gender, phone_number, active, hashed_password, created_at, updated_at"

// EmployeeRepository defines the interface for employee database operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entities.Employee) (*entities.Employee, error)
	Update(ctx context.Context, employee *entities.Employee) (*entities.Employee, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Employee, error)
	FindAll(ctx context.Context) ([]*entities.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create inserts a new employee. A duplicate email is rejected by the
// uk_employee_email constraint even when two creates race past the
// service-level existence check.
func (r *employeeRepository) Create(ctx context.Context, employee *entities.Employee) (*entities.Employee, error) {
	query := `
		INSERT INTO employees (full_name, email, date_of_birth, gender, phone_number, active, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	row := r.db.QueryRowContext(ctx, query,
		employee.FullName,
		employee.Email,
		employee.DateOfBirth,
		genderValue(employee.Gender),
		employee.PhoneNumber,
		employee.Active,
		employee.HashedPassword,
		employee.CreatedAt,
		employee.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update overwrites the mutable fields of an employee. Email and
// hashed_password are deliberately absent from the SET list.
func (r *employeeRepository) Update(ctx context.Context, employee *entities.Employee) (*entities.Employee, error) {
	query := `
		UPDATE employees
		SET full_name = $1, date_of_birth = $2, gender = $3, phone_number = $4, active = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + employeeColumns

	row := r.db.QueryRowContext(ctx, query,
		employee.FullName,
		employee.DateOfBirth,
		genderValue(employee.Gender),
		employee.PhoneNumber,
		employee.Active,
		employee.UpdatedAt,
		employee.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// Delete permanently removes an employee
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrEmployeeNotFound
	}

	return nil
}

// FindByID finds an employee by id
func (r *employeeRepository) FindByID(ctx context.Context, id int64) (*entities.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return employee, nil
}

// FindAll retrieves every employee in insertion order
func (r *employeeRepository) FindAll(ctx context.Context) ([]*entities.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*entities.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// ExistsByEmail reports whether any employee already uses the given email
func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*entities.Employee, error) {
	var (
		employee    entities.Employee
		dateOfBirth sql.NullTime
		gender      sql.NullString
		phoneNumber sql.NullString
	)

	err := row.Scan(
		&employee.ID,
		&employee.FullName,
		&employee.Email,
		&dateOfBirth,
		&gender,
		&phoneNumber,
		&employee.Active,
		&employee.HashedPassword,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dateOfBirth.Valid {
		d := dateOfBirth.Time
		employee.DateOfBirth = &d
	}
	if gender.Valid {
		g := entities.Gender(gender.String)
		employee.Gender = &g
	}
	if phoneNumber.Valid {
		p := phoneNumber.String
		employee.PhoneNumber = &p
	}

	return &employee, nil
}

func genderValue(g *entities.Gender) any {
	if g == nil {
		return nil
	}
	return string(*g)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
