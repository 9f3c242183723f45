package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// crudService is the get/create/update/delete shape shared by the
// numeric-id services
type crudService[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, req *T) (*T, error)
	Update(ctx context.Context, id int64, req *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// crud implements the record routes /:id for one entity. With merge set,
// an update body is decoded over the stored record so omitted fields keep
// their stored values.
type crud[T any] struct {
	svc   crudService[T]
	merge bool
}

// Get handles GET /:id
func (h crud[T]) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	v, err := h.svc.Get(c.UserContext(), id)
	return found(c, v, err)
}

// Create handles POST /
func (h crud[T]) Create(c *fiber.Ctx) error {
	req := new(T)
	if err := parseBody(c, req); err != nil {
		return fail(c, err)
	}
	v, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Created successfully", v)
}

// Update handles PUT /:id. The id in the path wins over one in the body.
func (h crud[T]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	req := new(T)
	if h.merge {
		if req, err = h.svc.Get(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
	}
	if err := parseBody(c, req); err != nil {
		return fail(c, err)
	}
	v, err := h.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Saved successfully", v)
}

// Delete handles DELETE /:id
func (h crud[T]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "Deleted successfully", nil)
}
