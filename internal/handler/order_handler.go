package handler

import (
	"go-erp-admin/internal/model"
	"go-erp-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// List handles GET /api/purchase-orders?page&size&keyword
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
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

func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	order, err := h.service.Get(c.UserContext(), id)
	return found(c, order, err)
}

// Create handles POST /api/purchase-orders {supplier, amount}
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req model.PurchaseOrderRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	order, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Created successfully", order)
}

// Submit handles POST /api/purchase-orders/:id/submit
func (h *PurchaseHandler) Submit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	order, err := h.service.Submit(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Submitted for approval", order)
}

// Approve handles POST /api/purchase-orders/:id/approve
func (h *PurchaseHandler) Approve(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	order, err := h.service.Approve(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Approved", order)
}

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// List handles GET /api/sales-orders?page&size&keyword
func (h *SalesHandler) List(c *fiber.Ctx) error {
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

func (h *SalesHandler) Get(c *fiber.Ctx) error {
	order, err := h.service.Get(c.UserContext(), c.Params("id"))
	return found(c, order, err)
}

// Save handles POST /api/sales-orders. A body without id creates a draft,
// a body with the id of a stored order replaces it.
func (h *SalesHandler) Save(c *fiber.Ctx) error {
	var req model.SalesOrder
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	isNew := req.ID == ""
	order, err := h.service.Save(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	if isNew {
		return created(c, "Created successfully", order)
	}
	return ok(c, "Saved successfully", order)
}

// Update handles PUT /api/sales-orders/:id
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var req model.SalesOrder
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	req.ID = c.Params("id")
	order, err := h.service.Save(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Saved successfully", order)
}

// Submit handles POST /api/sales-orders/:id/submit
func (h *SalesHandler) Submit(c *fiber.Ctx) error {
	order, err := h.service.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Submitted for approval", order)
}
