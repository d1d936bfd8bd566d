package model

// StockEntry is the persisted quantity for one (location, SKU) pair.
// The in-memory ledger is authoritative at runtime; these rows exist to
// rehydrate it across restarts and are rewritten per applied event.
type StockEntry struct {
	BaseModel
	LocationCode string `gorm:"type:varchar(50);uniqueIndex:idx_location_sku;not null" json:"location_code"`
	SKU          string `gorm:"type:varchar(50);uniqueIndex:idx_location_sku;not null" json:"sku"`
	Quantity     int    `gorm:"not null;default:0" json:"quantity"`
}
