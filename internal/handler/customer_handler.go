package handler

import (
	"go-erp-admin/internal/model"
	"go-erp-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	crud[model.Customer]
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{crud: crud[model.Customer]{svc: s}, service: s}
}

// List handles GET /api/customers?page&size&keyword
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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

// Options handles GET /api/customers/options
func (h *CustomerHandler) Options(c *fiber.Ctx) error {
	options, err := h.service.Options(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", options)
}
