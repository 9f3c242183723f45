package model

// RootCategoryID is the parentId of top-level categories
const RootCategoryID int64 = 0

// Category forms a tree through ParentID
type Category struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	ParentID int64  `gorm:"index;not null;default:0" json:"parentId" validate:"gte=0"`
	Level    int    `json:"level" validate:"gte=0"`
	Status   int    `json:"status" validate:"oneof=0 1"`
	Sort     int    `json:"sort"`
}
