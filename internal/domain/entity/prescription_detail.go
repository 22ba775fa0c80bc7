package entity

import "time"

// PrescriptionDetail is one line item of a prescription.
type PrescriptionDetail struct {
	PrescriptionID int64     `gorm:"primaryKey;autoIncrement:false" json:"prescription_id"`
	DrugID         int64     `gorm:"primaryKey;autoIncrement:false;index" json:"drug_id"`
	Quantity       int       `gorm:"not null;check:chk_prescription_details_quantity,quantity > 0" json:"quantity"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Prescription *Prescription `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:RESTRICT" json:"prescription,omitempty"`
	Drug         *Drug         `gorm:"foreignKey:DrugID;constraint:OnDelete:RESTRICT" json:"drug,omitempty"`
}

func (PrescriptionDetail) TableName() string {
	return "prescription_details"
}
