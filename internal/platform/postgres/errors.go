package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolationCode = "23505"

	// Class 28 covers invalid authorization: bad role, bad password.
	pgAuthErrorClass = "28"

	// Database named in the connection string does not exist.
	pgInvalidCatalogCode = "3D000"
)

// isUniqueViolation reports whether err is a unique-constraint violation.
// The slug uniqueness constraint firing at insert time is an expected
// outcome of the check-then-insert race, not a storage fault.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// DiagnosticHint produces a best-effort operator-facing hint for a storage
// failure, distinguishing credential misconfiguration from generic
// failures. The hint never contains values from the error itself, so raw
// secrets cannot leak through it.
func DiagnosticHint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, pgAuthErrorClass):
			return "database rejected the configured credentials; check INKPOST_DATABASE_URL"
		case pgErr.Code == pgInvalidCatalogCode:
			return "configured database does not exist; check INKPOST_DATABASE_URL"
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return "database is unreachable; check connectivity and INKPOST_DATABASE_URL"
	}

	return "unexpected datastore failure; see server logs for details"
}
