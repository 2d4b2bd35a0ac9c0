package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	unique := &pgconn.PgError{Code: pgUniqueViolationCode, ConstraintName: "posts_slug_key"}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert failed: %w", unique)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestDiagnosticHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid password",
			err:  &pgconn.PgError{Code: "28P01", Message: `password authentication failed for user "inkpost"`},
			want: "database rejected the configured credentials; check INKPOST_DATABASE_URL",
		},
		{
			name: "missing database",
			err:  &pgconn.PgError{Code: "3D000"},
			want: "configured database does not exist; check INKPOST_DATABASE_URL",
		},
		{
			name: "generic failure",
			err:  errors.New("write: broken pipe"),
			want: "unexpected datastore failure; see server logs for details",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DiagnosticHint(tc.err))
		})
	}
}

func TestDiagnosticHint_NeverEchoesErrorText(t *testing.T) {
	t.Parallel()

	err := &pgconn.PgError{
		Code:    "28P01",
		Message: "password authentication failed for user with password hunter2",
	}
	assert.NotContains(t, DiagnosticHint(err), "hunter2")
}
