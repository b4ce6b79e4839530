// Package student implements the student directory backed by PostgreSQL.
package student

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axelfrache/polymove/internal/model"
)

// ErrNotFound is returned when no student exists for the given identifier.
var ErrNotFound = errors.New("student not found")

// Repository provides CRUD access to the students table.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a Repository using the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new student with a fresh UUID.
func (r *Repository) Create(ctx context.Context, firstname, name, domain string) (model.Student, error) {
	s := model.Student{
		ID:        uuid.New(),
		Firstname: firstname,
		Name:      name,
		Domain:    domain,
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO students (id, firstname, name, domain)
		 VALUES ($1, $2, $3, $4)`,
		s.ID, s.Firstname, s.Name, s.Domain,
	)
	if err != nil {
		return model.Student{}, fmt.Errorf("create student: %w", err)
	}
	return s, nil
}

// Get returns the student with the given id, or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.Student, error) {
	var s model.Student
	err := r.pool.QueryRow(ctx,
		`SELECT id, firstname, name, domain FROM students WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Firstname, &s.Name, &s.Domain)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Student{}, ErrNotFound
	}
	if err != nil {
		return model.Student{}, fmt.Errorf("get student: %w", err)
	}
	return s, nil
}

// ListByDomain returns all students enrolled in the given domain.
func (r *Repository) ListByDomain(ctx context.Context, domain string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, firstname, name, domain FROM students WHERE domain = $1`,
		domain,
	)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Firstname, &s.Name, &s.Domain); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Update overwrites the non-nil fields of the stored student.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, firstname, name, domain *string) (model.Student, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return model.Student{}, err
	}

	if firstname != nil {
		current.Firstname = *firstname
	}
	if name != nil {
		current.Name = *name
	}
	if domain != nil {
		current.Domain = *domain
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET firstname = $1, name = $2, domain = $3 WHERE id = $4`,
		current.Firstname, current.Name, current.Domain, id,
	)
	if err != nil {
		return model.Student{}, fmt.Errorf("update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Student{}, ErrNotFound
	}
	return current, nil
}

// Delete removes the student with the given id, or returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
