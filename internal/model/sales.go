package model

// SalesStatus is the approval stage of a sales order
type SalesStatus string

const (
	SalesDraft    SalesStatus = "Draft"
	SalesPending  SalesStatus = "Pending"
	SalesApproved SalesStatus = "Approved"
	SalesRejected SalesStatus = "Rejected"
)

// SalesItem is a snapshot of a product line taken when the order is saved
type SalesItem struct {
	ProductID   int64   `json:"productId" validate:"required"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	Total       float64 `json:"total"`
}

type SalesOrder struct {
	ID string `gorm:"type:varchar(32);primaryKey" json:"id"`
	Timestamps
	Ordered
	CustomerID   int64       `gorm:"index" json:"customerId" validate:"required"`
	CustomerName string      `gorm:"type:varchar(255)" json:"customerName"`
	Date         string      `gorm:"type:varchar(10)" json:"date"`
	Status       SalesStatus `gorm:"type:varchar(16);index" json:"status"`
	Items        []SalesItem `gorm:"type:text;serializer:json" json:"items" validate:"required,min=1,dive"`
	TotalAmount  float64     `json:"totalAmount"`
}
