package services

import (
	"context"
	"fmt"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/repositories"
	"github.com/kanav2002/plagchecker/internal/pkg/apperrors"
)

// CourseService defines the business operations on the course catalog
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	AddExam(ctx context.Context, courseID int64, name string) (*models.Exam, error)
	DeleteExam(ctx context.Context, courseID, examID int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     repositories.CourseRepository
	examRepo       repositories.ExamRepository
	instructorRepo repositories.InstructorRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, examRepo repositories.ExamRepository, instructorRepo repositories.InstructorRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		examRepo:       examRepo,
		instructorRepo: instructorRepo,
	}
}

// CreateCourse creates a course owned by an existing instructor
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor ID must be positive", apperrors.ErrValidationFailed)
	}

	instructor, err := s.instructorRepo.FindByID(ctx, course.InstructorID)
	if err != nil {
		return fmt.Errorf("error verifying instructor existence: %w", err)
	}
	if instructor == nil {
		return apperrors.ErrInstructorNotFound
	}

	return s.courseRepo.Insert(ctx, course)
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.FindAll(ctx)
}

// GetCourseByID retrieves a course with its exams attached
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	exams, err := s.examRepo.FindByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading exams for course: %w", err)
	}
	course.Exams = exams

	return course, nil
}

// GetCoursesByInstructor retrieves the courses owned by an instructor
func (s *courseServiceImpl) GetCoursesByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	instructor, err := s.instructorRepo.FindByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error verifying instructor existence: %w", err)
	}
	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}

	return s.courseRepo.FindByInstructorID(ctx, instructorID)
}

// DeleteCourse removes a course and, through the schema cascade, its exams
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		return apperrors.ErrCourseNotFound
	}

	return s.courseRepo.DeleteByID(ctx, id)
}

// AddExam attaches a new exam to an existing course
func (s *courseServiceImpl) AddExam(ctx context.Context, courseID int64, name string) (*models.Exam, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	exam := &models.Exam{Name: name, CourseID: courseID}
	if err := s.examRepo.Insert(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// DeleteExam removes an exam, verifying it belongs to the given course
func (s *courseServiceImpl) DeleteExam(ctx context.Context, courseID, examID int64) error {
	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		return err
	}
	if exam == nil || exam.CourseID != courseID {
		return apperrors.ErrExamNotFound
	}

	return s.examRepo.DeleteByID(ctx, examID)
}
