package model

import "github.com/google/uuid"

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestFulfilled RequestStatus = "FULFILLED"
	RequestRejected  RequestStatus = "REJECTED"
)

// StockRequest is an advisory outlet-to-hub replenishment ask. It never
// mutates stock; only its status moves, and only away from PENDING.
type StockRequest struct {
	BaseModel
	OutletCode string        `gorm:"type:varchar(50);not null;index" json:"outlet_code"`
	Note       string        `gorm:"type:text" json:"note"`
	Status     RequestStatus `gorm:"type:varchar(20);not null" json:"status"`

	Items []StockRequestItem `gorm:"foreignKey:StockRequestID" json:"items"`
}

// StockRequestItem is one requested line. Label is free text from the
// outlet, never parsed for quantities.
type StockRequestItem struct {
	BaseModel
	StockRequestID uuid.UUID `gorm:"type:uuid;not null;index" json:"stock_request_id"`
	Label          string    `gorm:"type:varchar(255);not null" json:"label"`
	Qty            int       `gorm:"not null" json:"qty"`
}
