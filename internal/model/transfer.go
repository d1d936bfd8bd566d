package model

import "github.com/google/uuid"

// TransferStatusSuccess is the only status a persisted transfer can
// have: rejected transfers are never recorded.
const TransferStatusSuccess = "success"

// TransferRecord is the immutable history entry for one hub-to-outlet
// distribution. Never updated or deleted once written.
type TransferRecord struct {
	BaseModel
	OutletCode string `gorm:"type:varchar(50);not null;index" json:"outlet_code"`
	OutletName string `gorm:"type:varchar(255);not null" json:"outlet_name"`
	TotalQty   int    `gorm:"not null" json:"total_qty"`
	Status     string `gorm:"type:varchar(20);not null" json:"status"`

	Items []TransferItem `gorm:"foreignKey:TransferRecordID" json:"items"`
}

// TransferItem is one line of a transfer.
type TransferItem struct {
	BaseModel
	TransferRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"transfer_record_id"`
	SKU              string    `gorm:"type:varchar(50);not null" json:"sku"`
	ProductName      string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Qty              int       `gorm:"not null" json:"qty"`
}
