package usecase

import (
	"context"
	"testing"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePharmacyRemovesInventoryAndContracts(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addCompany(t, "Acme")
	env.addCompany(t, "Globex")
	pharmacy := env.addPharmacy(t, "Corner Pharmacy")
	other := env.addPharmacy(t, "Station Pharmacy")
	aspirin := env.addDrug(t, "Aspirin", "Acme")
	ibuprofen := env.addDrug(t, "Ibuprofen", "Acme")
	paracetamol := env.addDrug(t, "Paracetamol", "Globex")

	env.stock(t, pharmacy.ID, aspirin.ID, "2.50", 10)
	env.stock(t, pharmacy.ID, ibuprofen.ID, "3.10", 4)
	env.stock(t, pharmacy.ID, paracetamol.ID, "1.99", 0)
	env.stock(t, other.ID, aspirin.ID, "2.60", 7)
	env.addContract(t, pharmacy.ID, "Acme")
	env.addContract(t, pharmacy.ID, "Globex")
	env.addContract(t, other.ID, "Acme")

	resp, err := env.pharmacies.DeletePharmacy(ctx, pharmacy.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"pharmacy_drug": 3, "contract": 2, "pharmacy": 1}, removed(resp))
	assert.Equal(t, []string{"pharmacy_drug", "contract", "pharmacy"}, removedOrder(resp))

	assert.EqualValues(t, 1, env.count(t, &entity.PharmacyDrug{}))
	assert.EqualValues(t, 1, env.count(t, &entity.Contract{}))
	assert.EqualValues(t, 1, env.count(t, &entity.Pharmacy{}))

	_, err = env.pharmacies.DeletePharmacy(ctx, pharmacy.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeletePharmacyWithoutChildren(t *testing.T) {
	env := newTestEnv(t, nil)
	pharmacy := env.addPharmacy(t, "Empty Pharmacy")

	resp, err := env.pharmacies.DeletePharmacy(context.Background(), pharmacy.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"pharmacy_drug": 0, "contract": 0, "pharmacy": 1}, removed(resp))
}

func TestDeleteDoctorBlockedWhilePatientsReferToIt(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addDoctor(t, "D1")
	env.addDoctor(t, "D2")
	env.addPatient(t, "P1", "D1")

	_, err := env.doctors.DeleteDoctor(ctx, "D1")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConstraintViolation, appErr.Code)
	assert.Equal(t, apperror.ConstraintForeignKey, appErr.Constraint)

	_, err = env.doctors.GetDoctor(ctx, "D1")
	require.NoError(t, err)

	resp, err := env.doctors.DeleteDoctor(ctx, "D2")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"doctor": 1}, removed(resp))

	_, err = env.doctors.DeleteDoctor(ctx, "D2")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteCompanyCascadesToDrugs(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addCompany(t, "Acme")
	env.addCompany(t, "Globex")
	pharmacy := env.addPharmacy(t, "Corner Pharmacy")
	env.addDrug(t, "Aspirin", "Acme")
	env.addDrug(t, "Ibuprofen", "Acme")
	env.addDrug(t, "Paracetamol", "Globex")
	env.addContract(t, pharmacy.ID, "Acme")

	resp, err := env.companies.DeletePharmaceuticalCompany(ctx, "Acme")
	require.NoError(t, err)

	assert.Equal(t, []string{"contract", "drug", "pharmaceutical_company"}, removedOrder(resp))
	assert.Equal(t, map[string]int64{"contract": 1, "drug": 2, "pharmaceutical_company": 1}, removed(resp))
	assert.EqualValues(t, 1, env.count(t, &entity.Drug{}))
	assert.Zero(t, env.count(t, &entity.Contract{}))

	_, err = env.companies.GetPharmaceuticalCompany(ctx, "Acme")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteCompanyRollsBackWhenDrugIsStocked(t *testing.T) {
	env := newTestEnv(t, nil)

	env.addCompany(t, "Acme")
	pharmacy := env.addPharmacy(t, "Corner Pharmacy")
	aspirin := env.addDrug(t, "Aspirin", "Acme")
	env.addContract(t, pharmacy.ID, "Acme")
	env.stock(t, pharmacy.ID, aspirin.ID, "2.50", 10)

	_, err := env.companies.DeletePharmaceuticalCompany(context.Background(), "Acme")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConstraintViolation)

	assert.EqualValues(t, 1, env.count(t, &entity.Contract{}))
	assert.EqualValues(t, 1, env.count(t, &entity.Drug{}))
	assert.EqualValues(t, 1, env.count(t, &entity.PharmaceuticalCompany{}))
}

func TestDeleteCompanyNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.companies.DeletePharmaceuticalCompany(context.Background(), "Nobody Inc")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeletePrescriptionRemovesLines(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")
	env.addCompany(t, "Acme")
	aspirin := env.addDrug(t, "Aspirin", "Acme")
	ibuprofen := env.addDrug(t, "Ibuprofen", "Acme")
	prescription := env.prescribe(t, "P1", "D1", "2024-03-01")
	env.addLine(t, prescription.ID, aspirin.ID, 2)
	env.addLine(t, prescription.ID, ibuprofen.ID, 1)

	resp, err := env.prescriptions.DeletePrescription(ctx, prescription.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"prescription_detail", "prescription"}, removedOrder(resp))
	assert.Equal(t, map[string]int64{"prescription_detail": 2, "prescription": 1}, removed(resp))
	assert.Zero(t, env.count(t, &entity.PrescriptionDetail{}))

	_, err = env.prescriptions.DeletePrescription(ctx, prescription.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteDrugBlockedWhilePrescribed(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addDoctor(t, "D1")
	env.addPatient(t, "P1", "D1")
	env.addCompany(t, "Acme")
	aspirin := env.addDrug(t, "Aspirin", "Acme")
	unused := env.addDrug(t, "Ibuprofen", "Acme")
	prescription := env.prescribe(t, "P1", "D1", "2024-03-01")
	env.addLine(t, prescription.ID, aspirin.ID, 2)

	_, err := env.drugs.DeleteDrug(ctx, aspirin.ID)
	assert.ErrorIs(t, err, apperror.ErrConstraintViolation)

	resp, err := env.drugs.DeleteDrug(ctx, unused.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"drug": 1}, removed(resp))
}

func TestSimpleDeletesReportNotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.contracts.DeleteContract(ctx, 41)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = env.inventory.DeletePharmacyDrug(ctx, 1, 2)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = env.prescriptions.DeletePrescriptionDetail(ctx, 1, 2)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = env.drugs.DeleteDrug(ctx, 7)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestContractLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addCompany(t, "Acme")
	pharmacy := env.addPharmacy(t, "Corner Pharmacy")
	contract := env.addContract(t, pharmacy.ID, "Acme")
	assert.Equal(t, "2024-01-01", contract.StartDate)
	assert.Equal(t, "2024-12-31", contract.EndDate)

	updated, err := env.contracts.UpdateContractSupervisor(ctx, contract.ID, &dto.UpdateContractSupervisorRequest{Supervisor: "Linus"})
	require.NoError(t, err)
	assert.Equal(t, "Linus", updated.Supervisor)

	stored, err := env.contracts.GetContract(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linus", stored.Supervisor)
	assert.Equal(t, "Annual supply", stored.Content)

	_, err = env.contracts.UpdateContractSupervisor(ctx, contract.ID+100, &dto.UpdateContractSupervisorRequest{Supervisor: "Nobody"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	resp, err := env.contracts.DeleteContract(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"contract": 1}, removed(resp))
}

func TestAddContractValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addCompany(t, "Acme")
	pharmacy := env.addPharmacy(t, "Corner Pharmacy")

	tests := []struct {
		name     string
		req      dto.CreateContractRequest
		wantCode apperror.Code
		wantKey  string
	}{
		{
			name: "end before start",
			req: dto.CreateContractRequest{
				PharmacyID: pharmacy.ID, CompanyName: "Acme",
				StartDate: "2024-06-01", EndDate: "2024-01-01",
				Content: "Backwards", Supervisor: "Grace",
			},
			wantCode: apperror.CodeConstraintViolation,
			wantKey:  "chk_contracts_period",
		},
		{
			name: "missing pharmacy",
			req: dto.CreateContractRequest{
				PharmacyID: pharmacy.ID + 1, CompanyName: "Acme",
				StartDate: "2024-01-01", EndDate: "2024-06-01",
				Content: "Supply", Supervisor: "Grace",
			},
			wantCode: apperror.CodeReferenceNotFound,
		},
		{
			name: "missing company",
			req: dto.CreateContractRequest{
				PharmacyID: pharmacy.ID, CompanyName: "Initech",
				StartDate: "2024-01-01", EndDate: "2024-06-01",
				Content: "Supply", Supervisor: "Grace",
			},
			wantCode: apperror.CodeReferenceNotFound,
			wantKey:  "Initech",
		},
		{
			name: "malformed date",
			req: dto.CreateContractRequest{
				PharmacyID: pharmacy.ID, CompanyName: "Acme",
				StartDate: "01/01/2024", EndDate: "2024-06-01",
				Content: "Supply", Supervisor: "Grace",
			},
			wantCode: apperror.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := env.contracts.AddContract(ctx, &req)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantKey, appErr.Key)
			}
		})
	}

	assert.Zero(t, env.count(t, &entity.Contract{}))
}

func TestAddDrugUniquePerCompany(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addCompany(t, "Acme")
	env.addCompany(t, "Globex")
	env.addDrug(t, "Aspirin", "Acme")
	env.addDrug(t, "Aspirin", "Globex")

	_, err := env.drugs.AddDrug(ctx, &dto.CreateDrugRequest{TradeName: "Aspirin", Formula: "C9H8O4", CompanyName: "Acme"})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ConstraintUnique, appErr.Constraint)

	_, err = env.drugs.AddDrug(ctx, &dto.CreateDrugRequest{TradeName: "Aspirin", Formula: "C9H8O4", CompanyName: "Initech"})
	assert.ErrorIs(t, err, apperror.ErrReferenceNotFound)
}

func TestUpdateEntities(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	env.addCompany(t, "Acme")
	env.addCompany(t, "Globex")
	pharmacy := env.addPharmacy(t, "Corner Pharmacy")
	drug := env.addDrug(t, "Aspirin", "Acme")

	company, err := env.companies.UpdatePharmaceuticalCompany(ctx, "Acme", &dto.UpdateCompanyRequest{Phone: "555-9999"})
	require.NoError(t, err)
	assert.Equal(t, "555-9999", company.Phone)

	renamed, err := env.pharmacies.UpdatePharmacy(ctx, pharmacy.ID, &dto.UpdatePharmacyRequest{
		Name: "Harbour Pharmacy", Address: "9 Quay", Phone: "555-0300",
	})
	require.NoError(t, err)
	assert.Equal(t, "Harbour Pharmacy", renamed.Name)

	moved, err := env.drugs.UpdateDrug(ctx, drug.ID, &dto.UpdateDrugRequest{
		TradeName: "Aspirin Forte", Formula: "C9H8O4", CompanyName: "Globex",
	})
	require.NoError(t, err)
	assert.Equal(t, "Globex", moved.CompanyName)

	stored, err := env.drugs.GetDrug(ctx, drug.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aspirin Forte", stored.TradeName)

	_, err = env.companies.UpdatePharmaceuticalCompany(ctx, "Initech", &dto.UpdateCompanyRequest{Phone: "1"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.pharmacies.UpdatePharmacy(ctx, pharmacy.ID+1, &dto.UpdatePharmacyRequest{Name: "x", Address: "y", Phone: "z"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.drugs.UpdateDrug(ctx, drug.ID, &dto.UpdateDrugRequest{TradeName: "x", Formula: "y", CompanyName: "Initech"})
	assert.ErrorIs(t, err, apperror.ErrReferenceNotFound)
	_, err = env.doctors.UpdateDoctor(ctx, "D404", &dto.UpdateDoctorRequest{Name: "x", Specialty: "y"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
