package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inventoree/inventoree-api/internal/application/analytics"
	"github.com/inventoree/inventoree-api/internal/application/dto"
)

// AnalyticsHandler consultas derivadas y reporte PDF.
type AnalyticsHandler struct {
	uc      *analytics.AnalyticsUseCase
	reports *analytics.ReportUseCase
}

// NewAnalyticsHandler construye el handler de analytics.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase, reports *analytics.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, reports: reports}
}

// LowStock godoc
// @Summary      Productos con stock en o bajo el mínimo
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/analytics/low-stock [get]
func (h *AnalyticsHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.uc.LowStockProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// InventoryValue godoc
// @Summary      Valor total del inventario (Σ cantidad × costo)
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.InventoryValueResponse
// @Router       /api/analytics/inventory-value [get]
func (h *AnalyticsHandler) InventoryValue(c *fiber.Ctx) error {
	value, err := h.uc.TotalInventoryValue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(value)
}

// Sales godoc
// @Summary      Métricas de ventas del período (default 30 días)
// @Tags         analytics
// @Produce      json
// @Param        period  query  int  false  "días hacia atrás"  default(30)
// @Success      200  {object}  dto.SalesAnalyticsResponse
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) Sales(c *fiber.Ctx) error {
	period := c.QueryInt("period", 30)
	if period <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser mayor a cero"})
	}
	metrics, err := h.uc.SalesAnalytics(c.Context(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(metrics)
}

// Dashboard godoc
// @Summary      Resumen de la pantalla de inicio
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.uc.DashboardSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// SalesReport godoc
// @Summary      Descargar el reporte de ventas en PDF
// @Tags         analytics
// @Produce      application/pdf
// @Param        period  query  int  false  "días hacia atrás"  default(30)
// @Success      200  {file}  binary
// @Router       /api/reports/sales/pdf [get]
func (h *AnalyticsHandler) SalesReport(c *fiber.Ctx) error {
	period := c.QueryInt("period", 30)
	if period <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser mayor a cero"})
	}
	pdf, err := h.reports.SalesReportPDF(c.Context(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reporte-ventas-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}
