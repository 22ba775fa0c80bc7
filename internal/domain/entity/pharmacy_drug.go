package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PharmacyDrug is one inventory row: the price and stock of a drug at a pharmacy.
type PharmacyDrug struct {
	PharmacyID int64           `gorm:"primaryKey;autoIncrement:false" json:"pharmacy_id"`
	DrugID     int64           `gorm:"primaryKey;autoIncrement:false;index" json:"drug_id"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_pharmacy_drugs_price,price > 0" json:"price"`
	Stock      int             `gorm:"not null;check:chk_pharmacy_drugs_stock,stock >= 0" json:"stock"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pharmacy *Pharmacy `gorm:"foreignKey:PharmacyID;constraint:OnDelete:RESTRICT" json:"pharmacy,omitempty"`
	Drug     *Drug     `gorm:"foreignKey:DrugID;constraint:OnDelete:RESTRICT" json:"drug,omitempty"`
}

func (PharmacyDrug) TableName() string {
	return "pharmacy_drugs"
}
