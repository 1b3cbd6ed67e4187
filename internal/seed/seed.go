package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/repositories"
)

// CreateDefaultData inserts a development instructor account when the table is
// empty, so a freshly migrated database is usable immediately.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	instructorRepo := repositories.NewInstructorRepository(dbPool)

	count, err := instructorRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count instructors: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("count", count).Msg("Instructors already present, skipping seed")
		return nil
	}

	defaultInstructor := &models.Instructor{
		Username:  "john_doe",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
	}
	if _, err := instructorRepo.Insert(ctx, defaultInstructor); err != nil {
		return fmt.Errorf("failed to seed default instructor: %w", err)
	}

	lgr.Info().Str("username", defaultInstructor.Username).Msg("Seeded default instructor")
	return nil
}
