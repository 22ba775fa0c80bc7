package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AuditLog is one committed mutation, written in the mutation's own transaction.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor     string    `gorm:"type:varchar(100);not null;default:'system';index" json:"actor"`
	RequestID string    `gorm:"column:request_id;type:varchar(64);index" json:"request_id,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface.
// The text form is accepted by both jsonb columns and sqlite.
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit actions, one per mutation verb.
const (
	AuditActionPatientCreate            = "patient.create"
	AuditActionPatientUpdate            = "patient.update"
	AuditActionPatientDelete            = "patient.delete"
	AuditActionDoctorCreate             = "doctor.create"
	AuditActionDoctorUpdate             = "doctor.update"
	AuditActionDoctorDelete             = "doctor.delete"
	AuditActionCompanyCreate            = "company.create"
	AuditActionCompanyUpdate            = "company.update"
	AuditActionCompanyDelete            = "company.delete"
	AuditActionPharmacyCreate           = "pharmacy.create"
	AuditActionPharmacyUpdate           = "pharmacy.update"
	AuditActionPharmacyDelete           = "pharmacy.delete"
	AuditActionDrugCreate               = "drug.create"
	AuditActionDrugUpdate               = "drug.update"
	AuditActionDrugDelete               = "drug.delete"
	AuditActionContractCreate           = "contract.create"
	AuditActionContractUpdate           = "contract.update"
	AuditActionContractDelete           = "contract.delete"
	AuditActionInventoryUpsert          = "inventory.upsert"
	AuditActionInventoryUpdate          = "inventory.update"
	AuditActionInventoryDelete          = "inventory.delete"
	AuditActionPrescriptionUpsert       = "prescription.upsert"
	AuditActionPrescriptionUpdate       = "prescription.update"
	AuditActionPrescriptionDelete       = "prescription.delete"
	AuditActionPrescriptionDetailUpsert = "prescription_detail.upsert"
	AuditActionPrescriptionDetailUpdate = "prescription_detail.update"
	AuditActionPrescriptionDetailDelete = "prescription_detail.delete"
)
