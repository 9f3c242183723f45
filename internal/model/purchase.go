package model

// PurchaseStatus is the approval stage of a purchase order
type PurchaseStatus int

const (
	PurchaseDraft PurchaseStatus = iota
	PurchasePending
	PurchaseApproved
	PurchaseRejected
)

func (s PurchaseStatus) String() string {
	switch s {
	case PurchaseDraft:
		return "draft"
	case PurchasePending:
		return "pending"
	case PurchaseApproved:
		return "approved"
	case PurchaseRejected:
		return "rejected"
	}
	return "unknown"
}

// PurchaseOrder. OrderNo is generated on create and never changes afterwards.
type PurchaseOrder struct {
	BaseModel
	Ordered
	OrderNo    string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"orderNo"`
	Supplier   string         `gorm:"type:varchar(255);not null" json:"supplier" validate:"required"`
	Amount     float64        `json:"amount" validate:"gte=0"`
	Status     PurchaseStatus `gorm:"index" json:"status"`
	CreateDate string         `gorm:"type:varchar(10)" json:"createDate"`
}

// PurchaseOrderRequest is the payload accepted when adding a purchase order
type PurchaseOrderRequest struct {
	Supplier string  `json:"supplier" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}
