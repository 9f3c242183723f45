package model

import "time"

// Wire formats used by the console for timestamps and calendar dates.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// Status values shared by categories, units, warehouses, locations and products.
const (
	StatusInactive = 0
	StatusActive   = 1
)

// Timestamps handles the audit trail carried by every record
type Timestamps struct {
	CreateTime string `gorm:"type:varchar(19)" json:"createTime"`
	UpdateTime string `gorm:"type:varchar(19)" json:"updateTime"`
}

// Stamp sets both create and update time, used on create
func (t *Timestamps) Stamp(now time.Time) {
	t.CreateTime = now.Format(TimeLayout)
	t.UpdateTime = t.CreateTime
}

// Touch refreshes the update time, used on update
func (t *Timestamps) Touch(now time.Time) {
	t.UpdateTime = now.Format(TimeLayout)
}

// BaseModel handles the numeric ID assigned by the store and the timestamps.
// SQLite AUTOINCREMENT keeps ids monotonic and never reuses a deleted one.
type BaseModel struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamps
}

// Ordered is embedded by tables whose list order is not the id order
// (customers and purchase orders are prepended on create).
type Ordered struct {
	Position int64 `gorm:"index;not null;default:0" json:"-"`
}
