package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/repositories"
	"github.com/kanav2002/plagchecker/internal/pkg/auth"
)

// InstructorService defines the business operations on instructor accounts.
// Lookups report absence as (nil, nil); absence is a normal result, not an
// error.
type InstructorService interface {
	CreateInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetInstructorByUsername(ctx context.Context, username string) (*models.Instructor, error)
	Authenticate(ctx context.Context, username, password string) (*models.Instructor, error)
	UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo repositories.InstructorRepository
	verifier       auth.PasswordVerifier
	logger         zerolog.Logger
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo repositories.InstructorRepository, verifier auth.PasswordVerifier, logger zerolog.Logger) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
		verifier:       verifier,
		logger:         logger,
	}
}

// CreateInstructor creates a new instructor account. Store errors, including
// the uniqueness violation on a duplicate username, propagate unchanged.
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	created, err := s.instructorRepo.Insert(ctx, instructor)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("id", *created.ID).Msg("Instructor created")
	return created, nil
}

// GetAllInstructors retrieves every instructor account
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	return s.instructorRepo.FindAll(ctx)
}

// GetInstructorByID retrieves an instructor by id
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	return s.instructorRepo.FindByID(ctx, id)
}

// GetInstructorByUsername retrieves an instructor by exact username
func (s *instructorServiceImpl) GetInstructorByUsername(ctx context.Context, username string) (*models.Instructor, error) {
	return s.instructorRepo.FindByUsername(ctx, username)
}

// Authenticate returns the instructor whose username and password both match,
// or (nil, nil) when the username is unknown or the password does not verify.
func (s *instructorServiceImpl) Authenticate(ctx context.Context, username, password string) (*models.Instructor, error) {
	instructor, err := s.instructorRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error looking up instructor: %w", err)
	}
	if instructor == nil {
		return nil, nil
	}

	if !s.verifier.Verify(instructor.Password, password) {
		return nil, nil
	}

	return instructor, nil
}

// UpdatePassword overwrites the stored password after verifying the old one.
// It returns false, without any store mutation, when the username is unknown
// or the old password does not verify. The new password is stored verbatim;
// there is no strength policy.
func (s *instructorServiceImpl) UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error) {
	instructor, err := s.instructorRepo.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("error looking up instructor: %w", err)
	}
	if instructor == nil {
		return false, nil
	}

	if !s.verifier.Verify(instructor.Password, oldPassword) {
		return false, nil
	}

	instructor.Password = newPassword
	if err := s.instructorRepo.Save(ctx, instructor); err != nil {
		return false, fmt.Errorf("error saving instructor: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("Instructor password updated")
	return true, nil
}
