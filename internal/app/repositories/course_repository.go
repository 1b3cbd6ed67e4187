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

// CourseRepository defines persistence operations for course rows
type CourseRepository interface {
	Insert(ctx context.Context, course *models.Course) error
	FindAll(ctx context.Context) ([]*models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error)
	DeleteByID(ctx context.Context, id int64) error
}

type courseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: db}
}

// Insert persists a new course and assigns its id
func (r *courseRepository) Insert(ctx context.Context, course *models.Course) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (code, name, instructor_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		course.Code, course.Name, course.InstructorID).Scan(&course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return fmt.Errorf("%w: %s", apperrors.ErrCourseCodeAlreadyExists, course.Code)
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// FindAll retrieves all courses
func (r *courseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, `
		SELECT id, code, name, instructor_id
		FROM courses
		ORDER BY id`)
}

// FindByID retrieves a course by id; absent rows return (nil, nil)
func (r *courseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT id, code, name, instructor_id
		FROM courses
		WHERE id = $1`,
		id).Scan(&course.ID, &course.Code, &course.Name, &course.InstructorID)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting course by id: %w", err)
	}

	return course, nil
}

// FindByInstructorID retrieves all courses owned by an instructor
func (r *courseRepository) FindByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return r.queryCourses(ctx, `
		SELECT id, code, name, instructor_id
		FROM courses
		WHERE instructor_id = $1
		ORDER BY id`, instructorID)
}

// DeleteByID removes a course; attached exams go with it via ON DELETE CASCADE
func (r *courseRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

func (r *courseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.InstructorID); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
