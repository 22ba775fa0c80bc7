package entity

import "time"

// Prescription is the header of a prescription. There is at most one per
// (patient, doctor) pair; a later date re-dates it instead of adding a row.
type Prescription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID string    `gorm:"column:patient_id;type:varchar(20);not null;uniqueIndex:idx_prescriptions_patient_doctor" json:"patient_id"`
	DoctorID  string    `gorm:"column:doctor_id;type:varchar(20);not null;uniqueIndex:idx_prescriptions_patient_doctor;index" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:NationalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;references:NationalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
