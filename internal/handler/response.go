package handler

import (
	"strconv"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/service"
	"go-erp-admin/internal/workflow"
	"go-erp-admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func ok(c *fiber.Ctx, msg string, data interface{}) error {
	return c.JSON(model.Response{Code: model.CodeOK, Msg: msg, Data: data})
}

func created(c *fiber.Ctx, msg string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(model.Response{Code: model.CodeOK, Msg: msg, Data: data})
}

// fail answers with the envelope of err. The HTTP status mirrors the envelope code.
func fail(c *fiber.Ctx, err error) error {
	code, msg := classify(err)
	if code >= model.CodeServerError {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		msg = "Internal Server Error"
	}
	return c.Status(code).JSON(model.Response{Code: code, Msg: msg})
}

func classify(err error) (int, string) {
	var (
		validationErr *service.ValidationError
		guardErr      *service.GuardError
		fiberErr      *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &guardErr):
		return model.CodeBadRequest, err.Error()
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, service.ErrUnsupportedLoginType):
		return model.CodeBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUnknownResource):
		return model.CodeNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidSmsCode),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrMissingToken):
		return model.CodeUnauthorized, err.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	}
	return model.CodeServerError, err.Error()
}

// found answers a get: a missing record is a success with null data
func found[T any](c *fiber.Ctx, v *T, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return ok(c, "not found", nil)
	}
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "success", v)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON")
	}
	return nil
}

func listParams(c *fiber.Ctx) (model.ListParams, error) {
	var p model.ListParams
	if err := c.QueryParser(&p); err != nil {
		return p, fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	return p, nil
}

// optionalID reads an integer query parameter that may be left out
func optionalID(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key)
	}
	return &v, nil
}
