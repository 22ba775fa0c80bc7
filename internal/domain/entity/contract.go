package entity

import "time"

// Contract is a supply agreement between one pharmacy and one company.
type Contract struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PharmacyID  int64     `gorm:"not null;index" json:"pharmacy_id"`
	CompanyName string    `gorm:"column:company_name;type:varchar(100);not null;index" json:"company_name"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null;check:chk_contracts_period,end_date > start_date" json:"end_date"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Supervisor  string    `gorm:"type:varchar(100);not null" json:"supervisor"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pharmacy *Pharmacy              `gorm:"foreignKey:PharmacyID;constraint:OnDelete:RESTRICT" json:"pharmacy,omitempty"`
	Company  *PharmaceuticalCompany `gorm:"foreignKey:CompanyName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"company,omitempty"`
}

func (Contract) TableName() string {
	return "contracts"
}
