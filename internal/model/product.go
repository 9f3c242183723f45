package model

// ProductAttribute flags what a product is used for
type ProductAttribute string

const (
	AttrPurchase     ProductAttribute = "purchase"
	AttrSale         ProductAttribute = "sale"
	AttrOutsourcing  ProductAttribute = "outsourcing"
	AttrProduction   ProductAttribute = "production"
	AttrSemiFinished ProductAttribute = "semi_finished"
	AttrMaterial     ProductAttribute = "material"
)

// Sale price types
const (
	PriceBeforeTax = 1
	PriceAfterTax  = 2
)

// Product references a category, units, a default warehouse and location.
// Every *Name field is a denormalised copy resynchronised on save.
type Product struct {
	BaseModel
	Code string `gorm:"type:varchar(50);index;not null" json:"code" validate:"required"`
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`

	CategoryID        int64   `gorm:"index" json:"categoryId"`
	CategoryName      string  `gorm:"type:varchar(100)" json:"categoryName"`
	UnitID            int64   `gorm:"index" json:"unitId"`
	UnitName          string  `gorm:"type:varchar(50)" json:"unitName"`
	AuxiliaryUnitID   int64   `gorm:"index" json:"auxiliaryUnitId"`
	AuxiliaryUnitName string  `gorm:"type:varchar(50)" json:"auxiliaryUnitName"`
	UnitConversion    float64 `json:"unitConversion" validate:"gte=0"`
	UnitPrecision     int     `json:"unitPrecision" validate:"gte=0"`
	PricePrecision    int     `json:"pricePrecision" validate:"gte=0"`

	Attributes []ProductAttribute `gorm:"type:text;serializer:json" json:"attributes" validate:"dive,oneof=purchase sale outsourcing production semi_finished material"`
	Status     int                `json:"status" validate:"oneof=0 1"`

	// Stock settings
	UseSupplier          bool   `json:"useSupplier"`
	UseProductionDate    bool   `json:"useProductionDate"`
	UseBatchNumber       bool   `json:"useBatchNumber"`
	UseExpiryDate        bool   `json:"useExpiryDate"`
	UseSerialNumber      bool   `json:"useSerialNumber"`
	DefaultWarehouseID   int64  `gorm:"index" json:"defaultWarehouseId"`
	DefaultWarehouseName string `gorm:"type:varchar(100)" json:"defaultWarehouseName"`
	DefaultLocationID    int64  `gorm:"index" json:"defaultLocationId"`
	DefaultLocationName  string `gorm:"type:varchar(100)" json:"defaultLocationName"`

	// Sales
	Price           float64 `json:"price" validate:"gte=0"`
	PriceType       int     `json:"priceType" validate:"omitempty,oneof=1 2"`
	MinSaleQuantity float64 `json:"minSaleQuantity" validate:"gte=0"`
	MaxSaleQuantity float64 `json:"maxSaleQuantity" validate:"gte=0"`
	SaleDiscount    bool    `json:"saleDiscount"`

	// Purchasing
	PurchasePrice       float64 `json:"purchasePrice" validate:"gte=0"`
	MinPurchaseQuantity float64 `json:"minPurchaseQuantity" validate:"gte=0"`
	MaxPurchaseQuantity float64 `json:"maxPurchaseQuantity" validate:"gte=0"`

	Images      []string `gorm:"type:text;serializer:json" json:"images"`
	Description string   `gorm:"type:text" json:"description"`
	Stock       float64  `json:"stock"`
}

// LowStockThreshold is the stock level under which the dashboard flags a product
const LowStockThreshold = 10
