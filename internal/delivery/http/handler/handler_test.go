package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/apperror"
	"pharmacy-records/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperror.NotFound("pharmacy", "9"), http.StatusNotFound, "not_found"},
		{"missing reference", apperror.ReferenceNotFound("doctor", "D1"), http.StatusUnprocessableEntity, "reference_not_found"},
		{"invariant", apperror.InvariantViolation("patient", "P1", "last patient"), http.StatusConflict, "invariant_violation"},
		{"unique", apperror.ConstraintViolation(apperror.ConstraintUnique, "drugs_trade_name_formula_key", nil), http.StatusConflict, "constraint_violation"},
		{"check", apperror.ConstraintViolation(apperror.ConstraintCheck, "chk_pharmacy_drugs_stock", nil), http.StatusUnprocessableEntity, "constraint_violation"},
		{"invalid input", apperror.InvalidInput("bad date", nil), http.StatusBadRequest, "invalid_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err, "fallback")

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)

			var detail errorBody
			require.NoError(t, json.Unmarshal(body.Error, &detail))
			assert.Equal(t, tt.code, detail.Code)
		})
	}

	t.Run("plain error hides the cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, errors.New("connection reset"), "Failed to get pharmacy")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to get pharmacy", decode(t, rec).Message)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

type fakePatientUsecase struct {
	usecase.PatientUsecase
	deleteErr error
	created   *dto.CreatePatientRequest
}

func (f *fakePatientUsecase) AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	f.created = req
	return &dto.PatientResponse{NationalID: req.NationalID, Name: req.Name, DoctorID: req.DoctorID}, nil
}

func (f *fakePatientUsecase) DeletePatient(ctx context.Context, nationalID string) (*dto.DeleteResponse, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &dto.DeleteResponse{}, nil
}

func TestCreatePatientValidation(t *testing.T) {
	fake := &fakePatientUsecase{}
	h := NewPatientHandler(fake, validator.NewValidator())

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreatePatient(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, fake.created)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"national_id":"P1","name":"Ann","address":"1 Main Street","age":0}`
		h.CreatePatient(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fields map[string]string
		require.NoError(t, json.Unmarshal(decode(t, rec).Error, &fields))
		assert.Contains(t, fields, "age")
		assert.Contains(t, fields, "doctor_id")
		assert.Nil(t, fake.created)
	})

	t.Run("valid body reaches the usecase", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"national_id":"P1","name":"Ann","address":"1 Main Street","age":30,"doctor_id":"D1"}`
		h.CreatePatient(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, fake.created)
		assert.Equal(t, "D1", fake.created.DoctorID)
	})
}

func TestDeletePatientGuardIsConflict(t *testing.T) {
	fake := &fakePatientUsecase{deleteErr: apperror.InvariantViolation("patient", "P1", "doctor would be left without patients")}
	h := NewPatientHandler(fake, validator.NewValidator())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/patients/P1", nil), map[string]string{"id": "P1"})
	rec := httptest.NewRecorder()
	h.DeletePatient(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "doctor would be left without patients", decode(t, rec).Message)
}

type fakeInventoryUsecase struct {
	usecase.InventoryUsecase
	outcome entity.Outcome
	got     *dto.UpsertPharmacyDrugRequest
}

func (f *fakeInventoryUsecase) AddDrugToPharmacy(ctx context.Context, req *dto.UpsertPharmacyDrugRequest) (*dto.PharmacyDrugResponse, error) {
	f.got = req
	return &dto.PharmacyDrugResponse{PharmacyID: req.PharmacyID, DrugID: req.DrugID, Stock: req.Stock, Outcome: string(f.outcome)}, nil
}

func TestStockDrug(t *testing.T) {
	stock := func(h *PharmacyHandler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/pharmacies/7/drugs", strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rec := httptest.NewRecorder()
		h.StockDrug(rec, req)
		return rec
	}

	t.Run("path pharmacy wins over body", func(t *testing.T) {
		fake := &fakeInventoryUsecase{outcome: entity.OutcomeInserted}
		h := NewPharmacyHandler(nil, fake, validator.NewValidator())

		rec := stock(h, `{"pharmacy_id":99,"drug_id":3,"price":"4.50","stock":10}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, fake.got)
		assert.EqualValues(t, 7, fake.got.PharmacyID)
		assert.Equal(t, "4.5", fake.got.Price.String())
	})

	t.Run("replacing a row answers 200", func(t *testing.T) {
		fake := &fakeInventoryUsecase{outcome: entity.OutcomeUpdated}
		h := NewPharmacyHandler(nil, fake, validator.NewValidator())

		rec := stock(h, `{"drug_id":3,"price":"4.50","stock":10}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative stock never reaches the usecase", func(t *testing.T) {
		fake := &fakeInventoryUsecase{outcome: entity.OutcomeInserted}
		h := NewPharmacyHandler(nil, fake, validator.NewValidator())

		rec := stock(h, `{"drug_id":3,"price":"4.50","stock":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, fake.got)
	})

	t.Run("non numeric pharmacy id", func(t *testing.T) {
		h := NewPharmacyHandler(nil, &fakeInventoryUsecase{}, validator.NewValidator())
		req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/pharmacies/x/drugs", strings.NewReader(`{}`)), map[string]string{"id": "x"})
		rec := httptest.NewRecorder()
		h.StockDrug(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

type fakeReportUsecase struct {
	usecase.ReportUsecase
	from, to string
}

func (f *fakeReportUsecase) PatientPrescriptions(ctx context.Context, patientID, from, to string) (*dto.PatientPrescriptionsReport, error) {
	f.from, f.to = from, to
	return &dto.PatientPrescriptionsReport{}, nil
}

func TestPatientPrescriptionsRequiresRange(t *testing.T) {
	fake := &fakeReportUsecase{}
	h := NewReportHandler(fake)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/patients/P1/prescriptions?from=2024-01-01", nil), map[string]string{"id": "P1"})
	rec := httptest.NewRecorder()
	h.PatientPrescriptions(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/patients/P1/prescriptions?from=2024-01-01&to=2024-06-30", nil), map[string]string{"id": "P1"})
	rec = httptest.NewRecorder()
	h.PatientPrescriptions(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-01-01", fake.from)
	assert.Equal(t, "2024-06-30", fake.to)
}
