package dberrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kanav2002/plagchecker/internal/pkg/dberrors"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "instructors_username_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "matching constraint",
			err:        dup,
			constraint: "instructors_username_key",
			want:       true,
		},
		{
			name:       "wrapped error still matches",
			err:        fmt.Errorf("insert failed: %w", dup),
			constraint: "instructors_username_key",
			want:       true,
		},
		{
			name:       "different constraint",
			err:        dup,
			constraint: "courses_code_key",
			want:       false,
		},
		{
			name:       "different pg error code",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "instructors_username_key"},
			constraint: "instructors_username_key",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("connection refused"),
			constraint: "instructors_username_key",
			want:       false,
		},
		{
			name:       "nil error",
			err:        nil,
			constraint: "instructors_username_key",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dberrors.IsDuplicateConstraintError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsDuplicateConstraintError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !dberrors.IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("expected unique violation to be detected")
	}
	if dberrors.IsUniqueViolation(&pgconn.PgError{Code: "42P01"}) {
		t.Error("unexpected match for non-unique-violation code")
	}
	if dberrors.IsUniqueViolation(errors.New("boom")) {
		t.Error("unexpected match for plain error")
	}
}
