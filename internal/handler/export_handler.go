package handler

import (
	"bytes"
	"fmt"
	"strings"

	"go-erp-admin/internal/service"
	"go-erp-admin/pkg/export"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

// Export handles GET /api/export/:resource?format=csv|xlsx&keyword=
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", export.FormatCSV))
	if format != export.FormatCSV && format != export.FormatXLSX {
		return fail(c, fiber.NewError(fiber.StatusBadRequest, "format must be csv or xlsx"))
	}

	resource := c.Params("resource")
	table, err := h.service.Table(c.UserContext(), resource, c.Query("keyword"))
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if format == export.FormatXLSX {
		err = export.Excel(&buf, table.Name, table.Headers, table.Rows)
	} else {
		err = export.CSV(&buf, table.Headers, table.Rows)
	}
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.%s"`, resource, format))
	return c.Send(buf.Bytes())
}
