package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kanav2002/plagchecker/internal/app/models"
)

// ExamRepository defines persistence operations for exam rows
type ExamRepository interface {
	Insert(ctx context.Context, exam *models.Exam) error
	FindByID(ctx context.Context, id int64) (*models.Exam, error)
	FindByCourseID(ctx context.Context, courseID int64) ([]*models.Exam, error)
	DeleteByID(ctx context.Context, id int64) error
}

type examRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) ExamRepository {
	return &examRepository{db: db}
}

// Insert persists a new exam and assigns its id
func (r *examRepository) Insert(ctx context.Context, exam *models.Exam) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO exams (name, course_id)
		VALUES ($1, $2)
		RETURNING id`,
		exam.Name, exam.CourseID).Scan(&exam.ID)

	if err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// FindByID retrieves an exam by id; absent rows return (nil, nil)
func (r *examRepository) FindByID(ctx context.Context, id int64) (*models.Exam, error) {
	exam := &models.Exam{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, course_id
		FROM exams
		WHERE id = $1`,
		id).Scan(&exam.ID, &exam.Name, &exam.CourseID)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting exam by id: %w", err)
	}

	return exam, nil
}

// FindByCourseID retrieves all exams attached to a course
func (r *examRepository) FindByCourseID(ctx context.Context, courseID int64) ([]*models.Exam, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, course_id
		FROM exams
		WHERE course_id = $1
		ORDER BY id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing exams: %w", err)
	}
	defer rows.Close()

	exams := make([]*models.Exam, 0)
	for rows.Next() {
		exam := &models.Exam{}
		if err := rows.Scan(&exam.ID, &exam.Name, &exam.CourseID); err != nil {
			return nil, fmt.Errorf("error scanning exam row: %w", err)
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam rows: %w", err)
	}

	return exams, nil
}

// DeleteByID removes an exam row
func (r *examRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}
	return nil
}
