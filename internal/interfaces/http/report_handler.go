package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/report"
)

// ReportHandler expone el reporte de productos activos en CSV y JSON.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CSV godoc
// @Summary      Descargar reporte de productos en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/reports/products.csv [get]
func (h *ReportHandler) CSV(c *fiber.Ctx) error {
	data, err := h.uc.GenerateCSV()
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_productos.csv"`)
	return c.Send(data)
}

// JSON godoc
// @Summary      Obtener reporte de productos en JSON
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductReport
// @Router       /api/reports/products [get]
func (h *ReportHandler) JSON(c *fiber.Ctx) error {
	out, err := h.uc.BuildReport()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
