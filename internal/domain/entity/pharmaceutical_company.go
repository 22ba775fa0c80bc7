package entity

import "time"

// PharmaceuticalCompany is keyed by its name.
type PharmaceuticalCompany struct {
	Name      string    `gorm:"type:varchar(100);primaryKey" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmaceuticalCompany) TableName() string {
	return "pharmaceutical_companies"
}
