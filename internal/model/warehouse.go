package model

type Warehouse struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Status   int    `json:"status" validate:"oneof=0 1"`
}

// WarehouseLocation is a storage slot inside a warehouse.
// WarehouseName is a denormalised copy resolved on every save.
type WarehouseLocation struct {
	BaseModel
	Name          string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	WarehouseID   int64  `gorm:"index;not null" json:"warehouseId" validate:"required"`
	WarehouseName string `gorm:"type:varchar(100)" json:"warehouseName"`
	Status        int    `json:"status" validate:"oneof=0 1"`
	Sort          int    `json:"sort"`
}
