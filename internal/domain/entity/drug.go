package entity

import "time"

// Drug belongs to the company that makes it. Deleting the company removes its
// drugs through the foreign key, not through application code.
type Drug struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TradeName   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_drugs_trade_name_company" json:"trade_name"`
	Formula     string    `gorm:"type:text;not null" json:"formula"`
	CompanyName string    `gorm:"column:company_name;type:varchar(100);not null;uniqueIndex:idx_drugs_trade_name_company" json:"company_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Company *PharmaceuticalCompany `gorm:"foreignKey:CompanyName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"company,omitempty"`
}

func (Drug) TableName() string {
	return "drugs"
}
