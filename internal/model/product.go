package model

// DefaultLowStockThreshold is the per-SKU quantity below which an
// outlet's stock is flagged CRITICAL unless the product overrides it.
const DefaultLowStockThreshold = 10

// Product is one catalog entry. Catalog rows are immutable after
// creation: price changes would silently rewrite historical revenue, so
// a new price means a new SKU.
type Product struct {
	BaseModel
	SKU      string `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price    int64  `gorm:"not null" json:"price" validate:"gte=0"` // rupiah, smallest unit
	ImageURL string `gorm:"type:text" json:"image"`

	// Quantity below this is CRITICAL for any single location.
	LowStockThreshold int `gorm:"default:10" json:"low_stock_threshold"`
}

// Threshold returns the effective low-stock threshold.
func (p *Product) Threshold() int {
	if p.LowStockThreshold <= 0 {
		return DefaultLowStockThreshold
	}
	return p.LowStockThreshold
}
