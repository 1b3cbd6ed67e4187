package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/services"
	"github.com/kanav2002/plagchecker/internal/pkg/apperrors"
)

// mockCourseRepository implements repositories.CourseRepository in memory
type mockCourseRepository struct {
	rows   map[int64]*models.Course
	nextID int64
}

func newMockCourseRepo() *mockCourseRepository {
	return &mockCourseRepository{rows: make(map[int64]*models.Course), nextID: 1}
}

func (m *mockCourseRepository) Insert(_ context.Context, course *models.Course) error {
	for _, row := range m.rows {
		if row.Code == course.Code {
			return fmt.Errorf("%w: %s", apperrors.ErrCourseCodeAlreadyExists, course.Code)
		}
	}
	course.ID = m.nextID
	m.nextID++
	stored := *course
	m.rows[course.ID] = &stored
	return nil
}

func (m *mockCourseRepository) FindAll(_ context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(m.rows))
	for _, row := range m.rows {
		copied := *row
		all = append(all, &copied)
	}
	return all, nil
}

func (m *mockCourseRepository) FindByID(_ context.Context, id int64) (*models.Course, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *mockCourseRepository) FindByInstructorID(_ context.Context, instructorID int64) ([]*models.Course, error) {
	matched := make([]*models.Course, 0)
	for _, row := range m.rows {
		if row.InstructorID == instructorID {
			copied := *row
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (m *mockCourseRepository) DeleteByID(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

// mockExamRepository implements repositories.ExamRepository in memory
type mockExamRepository struct {
	rows   map[int64]*models.Exam
	nextID int64
}

func newMockExamRepo() *mockExamRepository {
	return &mockExamRepository{rows: make(map[int64]*models.Exam), nextID: 1}
}

func (m *mockExamRepository) Insert(_ context.Context, exam *models.Exam) error {
	exam.ID = m.nextID
	m.nextID++
	stored := *exam
	m.rows[exam.ID] = &stored
	return nil
}

func (m *mockExamRepository) FindByID(_ context.Context, id int64) (*models.Exam, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *mockExamRepository) FindByCourseID(_ context.Context, courseID int64) ([]*models.Exam, error) {
	matched := make([]*models.Exam, 0)
	for _, row := range m.rows {
		if row.CourseID == courseID {
			copied := *row
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (m *mockExamRepository) DeleteByID(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func setupCourseService(t *testing.T) (services.CourseService, *mockInstructorRepository) {
	t.Helper()
	instructorRepo := newMockInstructorRepo()
	svc := services.NewCourseService(newMockCourseRepo(), newMockExamRepo(), instructorRepo)
	return svc, instructorRepo
}

func seedInstructor(t *testing.T, repo *mockInstructorRepository, username string) int64 {
	t.Helper()
	created, err := repo.Insert(context.Background(), &models.Instructor{Username: username, Password: "pw"})
	if err != nil {
		t.Fatalf("failed to seed instructor: %v", err)
	}
	return *created.ID
}

func TestCourseService_CreateCourse(t *testing.T) {
	svc, instructorRepo := setupCourseService(t)
	ctx := context.Background()
	instructorID := seedInstructor(t, instructorRepo, "john_doe")

	course := &models.Course{Code: "CS402", Name: "Compiler Design", InstructorID: instructorID}
	if err := svc.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if course.ID == 0 {
		t.Error("course id was not assigned")
	}

	// Unknown instructor
	err := svc.CreateCourse(ctx, &models.Course{Code: "CS101", Name: "Intro", InstructorID: 999})
	if !errors.Is(err, apperrors.ErrInstructorNotFound) {
		t.Errorf("expected ErrInstructorNotFound, got %v", err)
	}

	// Duplicate code
	err = svc.CreateCourse(ctx, &models.Course{Code: "CS402", Name: "Other", InstructorID: instructorID})
	if !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
		t.Errorf("expected ErrCourseCodeAlreadyExists, got %v", err)
	}

	// Non-positive instructor id
	err = svc.CreateCourse(ctx, &models.Course{Code: "CS103", Name: "X", InstructorID: 0})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestCourseService_GetCourseByID(t *testing.T) {
	svc, instructorRepo := setupCourseService(t)
	ctx := context.Background()
	instructorID := seedInstructor(t, instructorRepo, "john_doe")

	course := &models.Course{Code: "CS402", Name: "Compiler Design", InstructorID: instructorID}
	if err := svc.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	exam, err := svc.AddExam(ctx, course.ID, "Midterm 1")
	if err != nil {
		t.Fatalf("AddExam failed: %v", err)
	}

	loaded, err := svc.GetCourseByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourseByID failed: %v", err)
	}
	if len(loaded.Exams) != 1 || loaded.Exams[0].ID != exam.ID {
		t.Errorf("exams not attached: %+v", loaded.Exams)
	}

	if _, err := svc.GetCourseByID(ctx, 999); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_GetCoursesByInstructor(t *testing.T) {
	svc, instructorRepo := setupCourseService(t)
	ctx := context.Background()
	instructorID := seedInstructor(t, instructorRepo, "john_doe")
	otherID := seedInstructor(t, instructorRepo, "jane_doe")

	for i, code := range []string{"CS101", "CS102"} {
		owner := instructorID
		if i == 1 {
			owner = otherID
		}
		if err := svc.CreateCourse(ctx, &models.Course{Code: code, Name: code, InstructorID: owner}); err != nil {
			t.Fatalf("CreateCourse(%s) failed: %v", code, err)
		}
	}

	courses, err := svc.GetCoursesByInstructor(ctx, instructorID)
	if err != nil {
		t.Fatalf("GetCoursesByInstructor failed: %v", err)
	}
	if len(courses) != 1 || courses[0].Code != "CS101" {
		t.Errorf("unexpected courses: %+v", courses)
	}

	if _, err := svc.GetCoursesByInstructor(ctx, 999); !errors.Is(err, apperrors.ErrInstructorNotFound) {
		t.Errorf("expected ErrInstructorNotFound, got %v", err)
	}
}

func TestCourseService_DeleteCourseAndExam(t *testing.T) {
	svc, instructorRepo := setupCourseService(t)
	ctx := context.Background()
	instructorID := seedInstructor(t, instructorRepo, "john_doe")

	course := &models.Course{Code: "CS402", Name: "Compiler Design", InstructorID: instructorID}
	if err := svc.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	exam, err := svc.AddExam(ctx, course.ID, "Final")
	if err != nil {
		t.Fatalf("AddExam failed: %v", err)
	}

	// Deleting an exam through the wrong course is rejected
	if err := svc.DeleteExam(ctx, course.ID+1, exam.ID); !errors.Is(err, apperrors.ErrExamNotFound) {
		t.Errorf("expected ErrExamNotFound for wrong course, got %v", err)
	}
	if err := svc.DeleteExam(ctx, course.ID, exam.ID); err != nil {
		t.Fatalf("DeleteExam failed: %v", err)
	}

	if err := svc.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}
	if err := svc.DeleteCourse(ctx, course.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound on second delete, got %v", err)
	}

	if _, err := svc.AddExam(ctx, course.ID, "Another"); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound adding exam to deleted course, got %v", err)
	}
}
