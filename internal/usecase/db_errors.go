package usecase

import (
	"errors"
	"strings"

	"pharmacy-records/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL integrity violation codes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"

	pgStringTooLong = "22001"
)

// sqlite reports constraint failures only through the message text.
var sqliteConstraintMessages = []struct {
	marker     string
	constraint string
}{
	{"UNIQUE constraint failed", apperror.ConstraintUnique},
	{"FOREIGN KEY constraint failed", apperror.ConstraintForeignKey},
	{"CHECK constraint failed", apperror.ConstraintCheck},
	{"NOT NULL constraint failed", apperror.ConstraintNotNull},
}

// translateDBError turns integrity violations reported by the database into
// ConstraintViolation errors. Errors already typed, and anything that is not
// a constraint violation, pass through untouched.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.ConstraintViolation(apperror.ConstraintUnique, pgErr.ConstraintName, err)
		case pgForeignKeyViolation:
			return apperror.ConstraintViolation(apperror.ConstraintForeignKey, pgErr.ConstraintName, err)
		case pgCheckViolation:
			return apperror.ConstraintViolation(apperror.ConstraintCheck, pgErr.ConstraintName, err)
		case pgNotNullViolation:
			return apperror.ConstraintViolation(apperror.ConstraintNotNull, pgErr.ColumnName, err)
		case pgStringTooLong:
			return apperror.InvalidInput("value too long for its column", err)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.ConstraintViolation(apperror.ConstraintUnique, "", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.ConstraintViolation(apperror.ConstraintForeignKey, "", err)
	}

	message := err.Error()
	for _, m := range sqliteConstraintMessages {
		if idx := strings.Index(message, m.marker); idx >= 0 {
			return apperror.ConstraintViolation(m.constraint, sqliteConstraintName(message[idx+len(m.marker):]), err)
		}
	}

	return err
}

// sqliteConstraintName extracts the name that follows the marker, e.g.
// "CHECK constraint failed: chk_patients_age" yields "chk_patients_age".
func sqliteConstraintName(rest string) string {
	if idx := strings.LastIndex(rest, " ("); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
}
