package model

// Unit of measure. Precision is the number of decimal places quantities keep.
type Unit struct {
	BaseModel
	Name      string `gorm:"type:varchar(50);not null" json:"name" validate:"required"`
	Code      string `gorm:"type:varchar(20)" json:"code" validate:"required"`
	Precision int    `json:"precision" validate:"gte=0,lte=6"`
	Status    int    `json:"status" validate:"oneof=0 1"`
	Sort      int    `json:"sort"`
}
