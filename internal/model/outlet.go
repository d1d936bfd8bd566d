package model

// HubCode identifies the single central warehouse. It shares the
// location namespace with outlet codes and is the sole origin of
// transfers.
const HubCode = "hub_pusat"

// Outlet is a retail location. Outlets receive stock exclusively via
// hub transfers and deplete it via POS sales.
type Outlet struct {
	BaseModel
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}
