package entity

import "time"

// Doctor is a physician identified by national ID.
type Doctor struct {
	NationalID        string    `gorm:"column:national_id;type:varchar(20);primaryKey" json:"national_id"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	Specialty         string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	YearsOfExperience int       `gorm:"not null;check:chk_doctors_experience,years_of_experience >= 0" json:"years_of_experience"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
