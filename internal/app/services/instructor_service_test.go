package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/services"
	"github.com/kanav2002/plagchecker/internal/pkg/apperrors"
	"github.com/kanav2002/plagchecker/internal/pkg/auth"
)

// mockInstructorRepository implements repositories.InstructorRepository in
// memory, enforcing the same username uniqueness the real store does.
type mockInstructorRepository struct {
	rows   map[int64]*models.Instructor
	nextID int64
	err    error
}

func newMockInstructorRepo() *mockInstructorRepository {
	return &mockInstructorRepository{
		rows:   make(map[int64]*models.Instructor),
		nextID: 1,
	}
}

func (m *mockInstructorRepository) Insert(_ context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, row := range m.rows {
		if row.Username == instructor.Username {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUsernameAlreadyExists, instructor.Username)
		}
	}
	id := m.nextID
	m.nextID++
	stored := *instructor
	stored.ID = &id
	m.rows[id] = &stored
	instructor.ID = &id
	return &stored, nil
}

func (m *mockInstructorRepository) FindAll(_ context.Context) ([]*models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	all := make([]*models.Instructor, 0, len(m.rows))
	for _, row := range m.rows {
		copied := *row
		all = append(all, &copied)
	}
	return all, nil
}

func (m *mockInstructorRepository) FindByID(_ context.Context, id int64) (*models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *mockInstructorRepository) FindByUsername(_ context.Context, username string) (*models.Instructor, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, row := range m.rows {
		if row.Username == username {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockInstructorRepository) Save(_ context.Context, instructor *models.Instructor) error {
	if m.err != nil {
		return m.err
	}
	if instructor.ID == nil {
		return apperrors.ErrValidationFailed
	}
	stored := *instructor
	m.rows[*instructor.ID] = &stored
	return nil
}

func (m *mockInstructorRepository) DeleteByID(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

func (m *mockInstructorRepository) Count(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.rows)), nil
}

func setupInstructorService(t *testing.T) (services.InstructorService, *mockInstructorRepository) {
	t.Helper()
	repo := newMockInstructorRepo()
	svc := services.NewInstructorService(repo, auth.NewPlaintextVerifier(), zerolog.Nop())
	return svc, repo
}

func mustCreate(t *testing.T, svc services.InstructorService, username, password string) *models.Instructor {
	t.Helper()
	created, err := svc.CreateInstructor(context.Background(), &models.Instructor{
		Username:  username,
		Password:  password,
		FirstName: "Test",
		LastName:  "Instructor",
	})
	if err != nil {
		t.Fatalf("CreateInstructor(%q) failed: %v", username, err)
	}
	return created
}

func TestInstructorService_CreateInstructor(t *testing.T) {
	svc, repo := setupInstructorService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "john_doe", "secret")
	if created.ID == nil {
		t.Fatal("created instructor has no id")
	}

	// A duplicate username must fail and leave exactly one matching row
	_, err := svc.CreateInstructor(ctx, &models.Instructor{Username: "john_doe", Password: "other"})
	if !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}

	count := 0
	for _, row := range repo.rows {
		if row.Username == "john_doe" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one john_doe row, found %d", count)
	}
}

func TestInstructorService_IdempotentReads(t *testing.T) {
	svc, _ := setupInstructorService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "jane_doe", "pw")

	first, err := svc.GetInstructorByID(ctx, *created.ID)
	if err != nil {
		t.Fatalf("GetInstructorByID failed: %v", err)
	}
	second, err := svc.GetInstructorByID(ctx, *created.ID)
	if err != nil {
		t.Fatalf("GetInstructorByID failed: %v", err)
	}
	if first == nil || second == nil {
		t.Fatal("expected both reads to find the instructor")
	}
	if *first != *second {
		t.Errorf("repeated reads differ: %+v vs %+v", first, second)
	}

	byName1, _ := svc.GetInstructorByUsername(ctx, "jane_doe")
	byName2, _ := svc.GetInstructorByUsername(ctx, "jane_doe")
	if byName1 == nil || byName2 == nil || *byName1 != *byName2 {
		t.Error("repeated username reads differ")
	}
}

func TestInstructorService_GetByUsernameCaseSensitive(t *testing.T) {
	svc, _ := setupInstructorService(t)
	ctx := context.Background()

	mustCreate(t, svc, "john_doe", "pw")

	found, err := svc.GetInstructorByUsername(ctx, "JOHN_DOE")
	if err != nil {
		t.Fatalf("GetInstructorByUsername failed: %v", err)
	}
	if found != nil {
		t.Errorf("lookup is not case-sensitive: JOHN_DOE matched %+v", found)
	}
}

func TestInstructorService_Authenticate(t *testing.T) {
	svc, _ := setupInstructorService(t)
	ctx := context.Background()

	mustCreate(t, svc, "mike_wilson", "password789")

	tests := []struct {
		name      string
		username  string
		password  string
		wantMatch bool
	}{
		{
			name:      "correct credentials",
			username:  "mike_wilson",
			password:  "password789",
			wantMatch: true,
		},
		{
			name:      "wrong password",
			username:  "mike_wilson",
			password:  "password788",
			wantMatch: false,
		},
		{
			name:      "unknown username",
			username:  "nobody",
			password:  "password789",
			wantMatch: false,
		},
		{
			name:      "username case mismatch",
			username:  "MIKE_WILSON",
			password:  "password789",
			wantMatch: false,
		},
		{
			name:      "empty username",
			username:  "",
			password:  "password789",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instructor, err := svc.Authenticate(ctx, tt.username, tt.password)
			if err != nil {
				t.Fatalf("Authenticate returned error: %v", err)
			}
			if tt.wantMatch && instructor == nil {
				t.Fatal("expected a match, got none")
			}
			if !tt.wantMatch && instructor != nil {
				t.Fatalf("expected no match, got %+v", instructor)
			}
			if tt.wantMatch && instructor.Username != tt.username {
				t.Errorf("matched wrong instructor: %q", instructor.Username)
			}
		})
	}
}

func TestInstructorService_UpdatePassword(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		oldPassword string
		newPassword string
		want        bool
	}{
		{
			name:        "correct old password",
			username:    "mike_wilson",
			oldPassword: "password789",
			newPassword: "newpw",
			want:        true,
		},
		{
			name:        "wrong old password",
			username:    "mike_wilson",
			oldPassword: "wrong",
			newPassword: "newpw",
			want:        false,
		},
		{
			name:        "unknown username",
			username:    "nobody",
			oldPassword: "password789",
			newPassword: "newpw",
			want:        false,
		},
		{
			name:        "empty new password accepted verbatim",
			username:    "mike_wilson",
			oldPassword: "password789",
			newPassword: "",
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setupInstructorService(t)
			ctx := context.Background()
			mustCreate(t, svc, "mike_wilson", "password789")

			got, err := svc.UpdatePassword(ctx, tt.username, tt.oldPassword, tt.newPassword)
			if err != nil {
				t.Fatalf("UpdatePassword returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("UpdatePassword = %v, want %v", got, tt.want)
			}

			if tt.want {
				// The new password must authenticate and the old must not,
				// unless they happen to be equal.
				if instructor, _ := svc.Authenticate(ctx, "mike_wilson", tt.newPassword); instructor == nil {
					t.Error("new password does not authenticate after update")
				}
				if tt.oldPassword != tt.newPassword {
					if instructor, _ := svc.Authenticate(ctx, "mike_wilson", tt.oldPassword); instructor != nil {
						t.Error("old password still authenticates after update")
					}
				}
			} else {
				// A failed update must leave the stored password untouched
				if instructor, _ := svc.Authenticate(ctx, "mike_wilson", "password789"); instructor == nil {
					t.Error("original password no longer authenticates after failed update")
				}
			}
		})
	}
}

func TestInstructorService_GetAllInstructors(t *testing.T) {
	svc, _ := setupInstructorService(t)
	ctx := context.Background()

	mustCreate(t, svc, "a_user", "pw1")
	mustCreate(t, svc, "b_user", "pw2")

	all, err := svc.GetAllInstructors(ctx)
	if err != nil {
		t.Fatalf("GetAllInstructors failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 instructors, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, instructor := range all {
		seen[instructor.Username] = true
	}
	if !seen["a_user"] || !seen["b_user"] {
		t.Errorf("missing rows in listing: %v", seen)
	}
}

func TestInstructorService_RepositoryErrorPropagates(t *testing.T) {
	repoErr := errors.New("repository error")
	repo := newMockInstructorRepo()
	repo.err = repoErr
	svc := services.NewInstructorService(repo, auth.NewPlaintextVerifier(), zerolog.Nop())

	if _, err := svc.CreateInstructor(context.Background(), &models.Instructor{Username: "x"}); !errors.Is(err, repoErr) {
		t.Errorf("CreateInstructor: expected wrapped repository error, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "x", "y"); !errors.Is(err, repoErr) {
		t.Errorf("Authenticate: expected wrapped repository error, got %v", err)
	}
	if _, err := svc.UpdatePassword(context.Background(), "x", "a", "b"); !errors.Is(err, repoErr) {
		t.Errorf("UpdatePassword: expected wrapped repository error, got %v", err)
	}
}
