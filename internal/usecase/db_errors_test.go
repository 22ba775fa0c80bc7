package usecase

import (
	"errors"
	"fmt"
	"testing"

	"pharmacy-records/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantConstraint string
		wantKey        string
	}{
		{
			name:           "postgres unique",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "idx_drugs_trade_name_company"},
			wantConstraint: apperror.ConstraintUnique,
			wantKey:        "idx_drugs_trade_name_company",
		},
		{
			name:           "postgres foreign key",
			err:            fmt.Errorf("delete doctor: %w", &pgconn.PgError{Code: "23503", ConstraintName: "fk_patients_doctor"}),
			wantConstraint: apperror.ConstraintForeignKey,
			wantKey:        "fk_patients_doctor",
		},
		{
			name:           "postgres check",
			err:            &pgconn.PgError{Code: "23514", ConstraintName: "chk_pharmacy_drugs_price"},
			wantConstraint: apperror.ConstraintCheck,
			wantKey:        "chk_pharmacy_drugs_price",
		},
		{
			name:           "gorm translated duplicate",
			err:            gorm.ErrDuplicatedKey,
			wantConstraint: apperror.ConstraintUnique,
		},
		{
			name:           "sqlite check",
			err:            errors.New("constraint failed: CHECK constraint failed: chk_patients_age (275)"),
			wantConstraint: apperror.ConstraintCheck,
			wantKey:        "chk_patients_age",
		},
		{
			name:           "sqlite foreign key",
			err:            errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			wantConstraint: apperror.ConstraintForeignKey,
		},
		{
			name:           "sqlite unique",
			err:            errors.New("constraint failed: UNIQUE constraint failed: drugs.trade_name, drugs.company_name (2067)"),
			wantConstraint: apperror.ConstraintUnique,
			wantKey:        "drugs.trade_name, drugs.company_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateDBError(tt.err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperror.CodeConstraintViolation, appErr.Code)
			assert.Equal(t, tt.wantConstraint, appErr.Constraint)
			assert.Equal(t, tt.wantKey, appErr.Key)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTranslateDBErrorValueTooLong(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(64)"}

	err := translateDBError(fmt.Errorf("create audit log: %w", pgErr))

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.ErrorIs(t, err, pgErr)
}

func TestTranslateDBErrorPassesThrough(t *testing.T) {
	notFound := apperror.NotFound("pharmacy", "9")
	assert.Same(t, notFound, translateDBError(notFound))

	plain := errors.New("connection reset")
	assert.Same(t, plain, translateDBError(plain))

	assert.NoError(t, translateDBError(nil))
}
