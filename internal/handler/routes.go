package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers is every handler the API serves
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Customer  *CustomerHandler
	Product   *ProductHandler
	Category  *CategoryHandler
	Unit      *UnitHandler
	Warehouse *WarehouseHandler
	Location  *LocationHandler
	Purchase  *PurchaseHandler
	Sales     *SalesHandler
	Export    *ExportHandler
}

// RegisterRoutes mounts the API under /api. requireAuth guards everything
// except the login routes.
func RegisterRoutes(app *fiber.App, h Handlers, requireAuth fiber.Handler) {
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/login", h.Auth.Login)
	api.Post("/sms-code", h.Auth.SmsCode)
	api.Post("/validate-token", h.Auth.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", requireAuth)

	protected.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)

	// Static segments before /:id
	protected.Get("/customers", h.Customer.List)
	protected.Get("/customers/options", h.Customer.Options)
	protected.Get("/customers/:id", h.Customer.Get)
	protected.Post("/customers", h.Customer.Create)
	protected.Put("/customers/:id", h.Customer.Update)
	protected.Delete("/customers/:id", h.Customer.Delete)

	protected.Get("/products", h.Product.List)
	protected.Get("/products/options", h.Product.Options)
	protected.Get("/products/:id", h.Product.Get)
	protected.Post("/products", h.Product.Create)
	protected.Put("/products/:id", h.Product.Update)
	protected.Delete("/products/:id", h.Product.Delete)

	protected.Get("/categories", h.Category.List)
	protected.Get("/categories/all", h.Category.All)
	protected.Get("/categories/:id", h.Category.Get)
	protected.Post("/categories", h.Category.Create)
	protected.Put("/categories/:id", h.Category.Update)
	protected.Delete("/categories/:id", h.Category.Delete)

	protected.Get("/units", h.Unit.List)
	protected.Get("/units/all", h.Unit.All)
	protected.Get("/units/:id", h.Unit.Get)
	protected.Post("/units", h.Unit.Create)
	protected.Put("/units/:id", h.Unit.Update)
	protected.Delete("/units/:id", h.Unit.Delete)

	protected.Get("/warehouses", h.Warehouse.List)
	protected.Get("/warehouses/all", h.Warehouse.All)
	protected.Get("/warehouses/:id/locations", h.Location.ByWarehouse)
	protected.Get("/warehouses/:id", h.Warehouse.Get)
	protected.Post("/warehouses", h.Warehouse.Create)
	protected.Put("/warehouses/:id", h.Warehouse.Update)
	protected.Delete("/warehouses/:id", h.Warehouse.Delete)

	protected.Get("/locations", h.Location.List)
	protected.Get("/locations/:id", h.Location.Get)
	protected.Post("/locations", h.Location.Create)
	protected.Put("/locations/:id", h.Location.Update)
	protected.Delete("/locations/:id", h.Location.Delete)

	protected.Get("/purchase-orders", h.Purchase.List)
	protected.Get("/purchase-orders/:id", h.Purchase.Get)
	protected.Post("/purchase-orders", h.Purchase.Create)
	protected.Post("/purchase-orders/:id/submit", h.Purchase.Submit)
	protected.Post("/purchase-orders/:id/approve", h.Purchase.Approve)

	protected.Get("/sales-orders", h.Sales.List)
	protected.Get("/sales-orders/:id", h.Sales.Get)
	protected.Post("/sales-orders", h.Sales.Save)
	protected.Put("/sales-orders/:id", h.Sales.Update)
	protected.Post("/sales-orders/:id/submit", h.Sales.Submit)

	protected.Get("/export/:resource", h.Export.Export)
}
