package usecase

import (
	"context"
	"testing"

	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	corner, station int64
	aspirin         int64
	ibuprofen       int64
	march           int64
}

func seedReports(t *testing.T, env *testEnv) reportFixture {
	t.Helper()

	env.addDoctor(t, "D1")
	env.addDoctor(t, "D2")
	env.addPatient(t, "P1", "D1")
	env.addPatient(t, "P2", "D1")
	env.addPatient(t, "P3", "D2")
	env.addCompany(t, "Acme")
	env.addCompany(t, "Globex")

	f := reportFixture{
		corner:    env.addPharmacy(t, "Corner Pharmacy").ID,
		station:   env.addPharmacy(t, "Station Pharmacy").ID,
		aspirin:   env.addDrug(t, "Aspirin", "Acme").ID,
		ibuprofen: env.addDrug(t, "Ibuprofen", "Acme").ID,
	}
	paracetamol := env.addDrug(t, "Paracetamol", "Globex").ID

	env.stock(t, f.corner, f.aspirin, "2.50", 10)
	env.stock(t, f.station, f.aspirin, "2.60", 4)
	env.stock(t, f.corner, paracetamol, "1.20", 30)
	env.addContract(t, f.corner, "Acme")
	env.addContract(t, f.station, "Acme")

	f.march = env.prescribe(t, "P1", "D1", "2024-03-01").ID
	env.addLine(t, f.march, f.ibuprofen, 1)
	env.addLine(t, f.march, f.aspirin, 2)
	env.prescribe(t, "P1", "D2", "2024-05-01")
	env.prescribe(t, "P3", "D2", "2024-04-01")
	return f
}

func TestPatientPrescriptionsReport(t *testing.T) {
	env := newTestEnv(t, nil)
	seedReports(t, env)

	report, err := env.reports.PatientPrescriptions(context.Background(), "P1", "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	require.Len(t, report.Prescriptions, 2)
	assert.Equal(t, "2024-03-01", report.Prescriptions[0].Date)
	assert.Equal(t, "D1", report.Prescriptions[0].DoctorID)
	assert.Equal(t, "Dr D1", report.Prescriptions[0].DoctorName)
	assert.Equal(t, "2024-05-01", report.Prescriptions[1].Date)

	narrow, err := env.reports.PatientPrescriptions(context.Background(), "P1", "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	assert.Empty(t, narrow.Prescriptions)

	_, err = env.reports.PatientPrescriptions(context.Background(), "P1", "2024-12-31", "2024-01-01")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestPrescriptionLinesReport(t *testing.T) {
	env := newTestEnv(t, nil)
	f := seedReports(t, env)

	report, err := env.reports.PrescriptionLines(context.Background(), "P1", "2024-03-01")
	require.NoError(t, err)

	require.Len(t, report.Lines, 2)
	assert.Equal(t, "Aspirin", report.Lines[0].TradeName)
	assert.Equal(t, 2, report.Lines[0].Quantity)
	assert.Equal(t, f.march, report.Lines[0].PrescriptionID)
	assert.Equal(t, "Ibuprofen", report.Lines[1].TradeName)
	assert.Equal(t, "Acme", report.Lines[1].CompanyName)

	_, err = env.reports.PrescriptionLines(context.Background(), "P1", "yesterday")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCompanyCatalogReport(t *testing.T) {
	env := newTestEnv(t, nil)
	f := seedReports(t, env)

	report, err := env.reports.CompanyCatalog(context.Background(), "Acme")
	require.NoError(t, err)

	require.Len(t, report.Drugs, 2)
	assert.Equal(t, f.aspirin, report.Drugs[0].DrugID)
	assert.EqualValues(t, 2, report.Drugs[0].PharmacyCount)
	assert.Equal(t, "Ibuprofen", report.Drugs[1].TradeName)
	assert.EqualValues(t, 0, report.Drugs[1].PharmacyCount)
}

func TestPharmacyStockReport(t *testing.T) {
	env := newTestEnv(t, nil)
	f := seedReports(t, env)

	report, err := env.reports.PharmacyStock(context.Background(), f.corner)
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	assert.Equal(t, "Aspirin", report.Items[0].TradeName)
	assert.True(t, decimal.RequireFromString("2.50").Equal(report.Items[0].Price))
	assert.Equal(t, 10, report.Items[0].Stock)
	assert.Equal(t, "Paracetamol", report.Items[1].TradeName)
	assert.Equal(t, "Globex", report.Items[1].CompanyName)
}

func TestPharmacyCompanyContractsReport(t *testing.T) {
	env := newTestEnv(t, nil)
	f := seedReports(t, env)

	report, err := env.reports.PharmacyCompanyContracts(context.Background(), f.station, "Acme")
	require.NoError(t, err)
	require.Len(t, report.Contracts, 1)
	assert.Equal(t, f.station, report.Contracts[0].PharmacyID)
	assert.Equal(t, "Grace", report.Contracts[0].Supervisor)

	none, err := env.reports.PharmacyCompanyContracts(context.Background(), f.station, "Globex")
	require.NoError(t, err)
	assert.Empty(t, none.Contracts)
}

func TestDoctorPatientsReport(t *testing.T) {
	env := newTestEnv(t, nil)
	seedReports(t, env)

	report, err := env.reports.DoctorPatients(context.Background(), "D1")
	require.NoError(t, err)

	require.Len(t, report.Patients, 2)
	assert.Equal(t, "P1", report.Patients[0].PatientID)
	assert.EqualValues(t, 1, report.Patients[0].PrescriptionCount)
	assert.Equal(t, "P2", report.Patients[1].PatientID)
	assert.EqualValues(t, 0, report.Patients[1].PrescriptionCount)
}

func TestReportsAreCachedUntilNextMutation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	env := newTestEnv(t, client)
	ctx := context.Background()

	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")

	first, err := env.reports.DoctorPatients(ctx, "D1")
	require.NoError(t, err)
	require.Len(t, first.Patients, 1)

	// Written behind the usecases' back, so nothing invalidates the cache.
	require.NoError(t, env.db.Create(&entity.Patient{
		NationalID: "P2", Name: "Patient P2", Address: "1 Main Street", Age: 50, DoctorID: "D1",
	}).Error)

	cached, err := env.reports.DoctorPatients(ctx, "D1")
	require.NoError(t, err)
	assert.Len(t, cached.Patients, 1)

	env.addPatient(t, "P3", "D1")

	fresh, err := env.reports.DoctorPatients(ctx, "D1")
	require.NoError(t, err)
	assert.Len(t, fresh.Patients, 3)
}
