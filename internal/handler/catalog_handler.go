package handler

import (
	"go-erp-admin/internal/model"
	"go-erp-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	crud[model.Product]
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{crud: crud[model.Product]{svc: s, merge: true}, service: s}
}

// List handles GET /api/products?page&size&keyword
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return fail(c, err)
	}
	page, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", page)
}

// Options handles GET /api/products/options
func (h *ProductHandler) Options(c *fiber.Ctx) error {
	options, err := h.service.Options(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", options)
}

type CategoryHandler struct {
	crud[model.Category]
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{crud: crud[model.Category]{svc: s, merge: true}, service: s}
}

// List handles GET /api/categories?parentId&keyword&page&size
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return fail(c, err)
	}
	parentID, err := optionalID(c, "parentId")
	if err != nil {
		return fail(c, err)
	}
	page, err := h.service.List(c.UserContext(), params, parentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", page)
}

// All handles GET /api/categories/all
func (h *CategoryHandler) All(c *fiber.Ctx) error {
	rows, err := h.service.All(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", rows)
}

type UnitHandler struct {
	crud[model.Unit]
	service service.UnitService
}

func NewUnitHandler(s service.UnitService) *UnitHandler {
	return &UnitHandler{crud: crud[model.Unit]{svc: s, merge: true}, service: s}
}

// List handles GET /api/units, active units only
func (h *UnitHandler) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return fail(c, err)
	}
	page, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", page)
}

// All handles GET /api/units/all
func (h *UnitHandler) All(c *fiber.Ctx) error {
	rows, err := h.service.All(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", rows)
}

type WarehouseHandler struct {
	crud[model.Warehouse]
	service service.WarehouseService
}

func NewWarehouseHandler(s service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{crud: crud[model.Warehouse]{svc: s, merge: true}, service: s}
}

// List handles GET /api/warehouses, active warehouses only
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return fail(c, err)
	}
	page, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", page)
}

// All handles GET /api/warehouses/all
func (h *WarehouseHandler) All(c *fiber.Ctx) error {
	rows, err := h.service.All(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", rows)
}

type LocationHandler struct {
	crud[model.WarehouseLocation]
	service service.LocationService
}

func NewLocationHandler(s service.LocationService) *LocationHandler {
	return &LocationHandler{crud: crud[model.WarehouseLocation]{svc: s, merge: true}, service: s}
}

// List handles GET /api/locations?warehouseId&keyword&page&size
func (h *LocationHandler) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return fail(c, err)
	}
	warehouseID, err := optionalID(c, "warehouseId")
	if err != nil {
		return fail(c, err)
	}
	page, err := h.service.List(c.UserContext(), params, warehouseID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", page)
}

// ByWarehouse handles GET /api/warehouses/:id/locations, active locations only
func (h *LocationHandler) ByWarehouse(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	rows, err := h.service.ByWarehouse(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", rows)
}
