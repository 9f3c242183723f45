package model

// Customer levels
const (
	LevelA = "A"
	LevelB = "B"
	LevelC = "C"
)

type Customer struct {
	BaseModel
	Ordered
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Contact string `gorm:"type:varchar(100)" json:"contact"`
	Phone   string `gorm:"type:varchar(20)" json:"phone" validate:"omitempty,mobile"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	Level   string `gorm:"type:varchar(1)" json:"level" validate:"required,oneof=A B C"`
}
