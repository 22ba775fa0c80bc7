package usecase

import (
	"context"
	"testing"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/pkg/apperror"
	"pharmacy-records/pkg/requestctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePatientKeepsLastPatientOfDoctor(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")
	env.addPatient(t, "P2", "D1")

	resp, err := env.patients.DeletePatient(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "patient", resp.Entity)
	assert.Equal(t, "P1", resp.Key)
	assert.Equal(t, map[string]int64{"patient": 1}, removed(resp))

	_, err = env.patients.DeletePatient(ctx, "P2")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvariantViolation)

	remaining, err := env.patients.GetPatient(ctx, "P2")
	require.NoError(t, err)
	assert.Equal(t, "D1", remaining.DoctorID)
}

func TestDeletePatientNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.patients.DeletePatient(context.Background(), "missing")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCanDeletePatient(t *testing.T) {
	env := newTestEnv(t, nil)

	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")

	ok, err := env.guard.CanDeletePatient(env.db, "P1")
	require.NoError(t, err)
	assert.False(t, ok)

	env.addPatient(t, "P2", "D1")

	ok, err = env.guard.CanDeletePatient(env.db, "P1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = env.guard.CanDeletePatient(env.db, "P9")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddPatientRequiresDoctor(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.patients.AddPatient(context.Background(), &dto.CreatePatientRequest{
		NationalID: "P1",
		Name:       "Ada",
		Address:    "1 Main Street",
		Age:        30,
		DoctorID:   "D404",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeReferenceNotFound, appErr.Code)
	assert.Equal(t, "doctor", appErr.Entity)
	assert.Equal(t, "D404", appErr.Key)
	assert.Zero(t, env.count(t, &entity.Patient{}))
	assert.Zero(t, env.count(t, &entity.AuditLog{}))
}

func TestAddPatientRejectsNonPositiveAge(t *testing.T) {
	env := newTestEnv(t, nil)
	env.addDoctor(t, "D1")

	_, err := env.patients.AddPatient(context.Background(), &dto.CreatePatientRequest{
		NationalID: "P1",
		Name:       "Ada",
		Address:    "1 Main Street",
		Age:        0,
		DoctorID:   "D1",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConstraintViolation, appErr.Code)
	assert.Equal(t, apperror.ConstraintCheck, appErr.Constraint)
	assert.Equal(t, "chk_patients_age", appErr.Key)
	assert.Zero(t, env.count(t, &entity.Patient{}))
}

func TestAddPatientDuplicateKey(t *testing.T) {
	env := newTestEnv(t, nil)
	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")

	_, err := env.patients.AddPatient(context.Background(), &dto.CreatePatientRequest{
		NationalID: "P1",
		Name:       "Someone else",
		Address:    "3 Side Road",
		Age:        22,
		DoctorID:   "D1",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ConstraintUnique, appErr.Constraint)
}

func TestUpdatePatientMovesToAnotherDoctor(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addDoctor(t, "D1")
	env.addDoctor(t, "D2")
	env.addPatient(t, "P1", "D1")

	updated, err := env.patients.UpdatePatient(ctx, "P1", &dto.UpdatePatientRequest{
		Name:     "Ada Lovelace",
		Address:  "4 New Road",
		Age:      41,
		DoctorID: "D2",
	})
	require.NoError(t, err)
	assert.Equal(t, "D2", updated.DoctorID)
	assert.Equal(t, 41, updated.Age)

	stored, err := env.patients.GetPatient(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", stored.Name)
	assert.Equal(t, "D2", stored.DoctorID)
}

func TestUpdatePatientErrors(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")

	_, err := env.patients.UpdatePatient(ctx, "P9", &dto.UpdatePatientRequest{
		Name: "Nobody", Address: "Nowhere", Age: 20, DoctorID: "D1",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = env.patients.UpdatePatient(ctx, "P1", &dto.UpdatePatientRequest{
		Name: "Ada", Address: "Here", Age: 20, DoctorID: "D9",
	})
	assert.ErrorIs(t, err, apperror.ErrReferenceNotFound)
}

func TestMutationsWriteAuditRows(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := requestctx.WithRequestID(requestctx.WithActor(context.Background(), "alice"), "req-1")

	_, err := env.doctors.AddDoctor(ctx, &dto.CreateDoctorRequest{
		NationalID: "D1", Name: "Dr Who", Specialty: "Cardiology", YearsOfExperience: 3,
	})
	require.NoError(t, err)

	_, err = env.doctors.UpdateDoctor(ctx, "D1", &dto.UpdateDoctorRequest{
		Name: "Dr Who", Specialty: "Neurology", YearsOfExperience: 4,
	})
	require.NoError(t, err)

	list, err := env.auditLogs.GetAllAuditLogs(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list.Logs, 2)
	assert.EqualValues(t, 2, list.Total)

	latest := list.Logs[0]
	assert.Equal(t, entity.AuditActionDoctorUpdate, latest.Action)
	assert.Equal(t, "alice", latest.Actor)
	assert.Equal(t, "req-1", latest.RequestID)
	assert.Equal(t, "doctor", latest.Metadata["entity"])
	assert.Equal(t, "D1", latest.Metadata["entity_id"])

	oldValue, ok := latest.Metadata["old_value"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Cardiology", oldValue["specialty"])

	single, err := env.auditLogs.GetAuditLog(ctx, latest.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.Action, single.Action)

	_, err = env.auditLogs.GetAuditLog(ctx, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRejectedMutationLeavesNoAuditRow(t *testing.T) {
	env := newTestEnv(t, nil)
	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")
	before := env.count(t, &entity.AuditLog{})

	_, err := env.patients.DeletePatient(context.Background(), "P1")
	require.Error(t, err)

	assert.Equal(t, before, env.count(t, &entity.AuditLog{}))
}
