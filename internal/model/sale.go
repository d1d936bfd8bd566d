package model

import "github.com/google/uuid"

// SaleRecord is the immutable history entry for one POS transaction.
type SaleRecord struct {
	BaseModel
	OutletCode  string `gorm:"type:varchar(50);not null;index" json:"outlet_code"`
	TotalAmount int64  `gorm:"not null" json:"total_amount"`

	Items []SaleItem `gorm:"foreignKey:SaleRecordID" json:"items"`
}

// SaleItem is one line of a sale. UnitPrice is the price actually
// charged, captured at sale time so historical revenue survives future
// catalog changes.
type SaleItem struct {
	BaseModel
	SaleRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_record_id"`
	SKU          string    `gorm:"type:varchar(50);not null" json:"sku"`
	ProductName  string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Qty          int       `gorm:"not null" json:"qty"`
	UnitPrice    int64     `gorm:"not null" json:"unit_price"`
}
