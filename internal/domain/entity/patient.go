package entity

import "time"

// Patient is identified by national ID and always has a primary physician.
type Patient struct {
	NationalID string    `gorm:"column:national_id;type:varchar(20);primaryKey" json:"national_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Address    string    `gorm:"type:varchar(255);not null" json:"address"`
	Age        int       `gorm:"not null;check:chk_patients_age,age > 0" json:"age"`
	DoctorID   string    `gorm:"column:doctor_id;type:varchar(20);not null;index" json:"doctor_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID;references:NationalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"doctor,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
