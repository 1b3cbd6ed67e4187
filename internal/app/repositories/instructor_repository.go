package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/pkg/apperrors"
	"github.com/kanav2002/plagchecker/internal/pkg/dberrors"
)

// InstructorRepository defines the persistence operations for instructor rows.
// Absence is reported as (nil, nil), never as an error, so callers can tell
// "not found" apart from a failed query.
type InstructorRepository interface {
	Insert(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	FindAll(ctx context.Context) ([]*models.Instructor, error)
	FindByID(ctx context.Context, id int64) (*models.Instructor, error)
	FindByUsername(ctx context.Context, username string) (*models.Instructor, error)
	Save(ctx context.Context, instructor *models.Instructor) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// instructorRepository implements InstructorRepository on a pgx pool
type instructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) InstructorRepository {
	return &instructorRepository{db: db}
}

// Insert persists a new instructor and returns it with the assigned id.
// A duplicate username surfaces as apperrors.ErrUsernameAlreadyExists; the
// unique constraint also decides races between concurrent inserts.
func (r *instructorRepository) Insert(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO instructors (username, password, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		instructor.Username, instructor.Password, instructor.FirstName, instructor.LastName).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_username_key") {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUsernameAlreadyExists, instructor.Username)
		}
		return nil, fmt.Errorf("error creating instructor: %w", err)
	}

	instructor.ID = &id
	return instructor, nil
}

// FindAll retrieves every instructor row. Ordering by id is for stable output
// only and is not part of the contract.
func (r *instructorRepository) FindAll(ctx context.Context) ([]*models.Instructor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, password, first_name, last_name
		FROM instructors
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}
	defer rows.Close()

	instructors := make([]*models.Instructor, 0)
	for rows.Next() {
		instructor := &models.Instructor{}
		if err := rows.Scan(&instructor.ID, &instructor.Username, &instructor.Password,
			&instructor.FirstName, &instructor.LastName); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// FindByID retrieves an instructor by id
func (r *instructorRepository) FindByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, first_name, last_name
		FROM instructors
		WHERE id = $1`,
		id).Scan(&instructor.ID, &instructor.Username, &instructor.Password,
		&instructor.FirstName, &instructor.LastName)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting instructor by id: %w", err)
	}

	return instructor, nil
}

// FindByUsername retrieves an instructor by exact, case-sensitive username
func (r *instructorRepository) FindByUsername(ctx context.Context, username string) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, first_name, last_name
		FROM instructors
		WHERE username = $1`,
		username).Scan(&instructor.ID, &instructor.Username, &instructor.Password,
		&instructor.FirstName, &instructor.LastName)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting instructor by username: %w", err)
	}

	return instructor, nil
}

// Save persists mutations to an existing row, keyed by id
func (r *instructorRepository) Save(ctx context.Context, instructor *models.Instructor) error {
	if instructor.ID == nil {
		return fmt.Errorf("%w: instructor has no id", apperrors.ErrValidationFailed)
	}

	_, err := r.db.Exec(ctx, `
		UPDATE instructors
		SET username = $1, password = $2, first_name = $3, last_name = $4
		WHERE id = $5`,
		instructor.Username, instructor.Password, instructor.FirstName, instructor.LastName,
		*instructor.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_username_key") {
			return fmt.Errorf("%w: %s", apperrors.ErrUsernameAlreadyExists, instructor.Username)
		}
		return fmt.Errorf("error updating instructor: %w", err)
	}

	return nil
}

// DeleteByID removes a row if present; deleting an absent row is not an error
func (r *instructorRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting instructor: %w", err)
	}
	return nil
}

// Count returns the number of instructor rows
func (r *instructorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting instructors: %w", err)
	}
	return count, nil
}
