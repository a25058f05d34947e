package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/application/inventory"
	"github.com/inventoree/inventoree-api/internal/domain"
)

// SaleHandler registro y consulta de ventas.
type SaleHandler struct {
	uc *inventory.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *inventory.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta y descontar stock
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.RecordSale(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad debe ser mayor a cero"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la venta"})
		case errors.Is(err, domain.ErrConcurrentModification):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_CONFLICT", Message: "el producto fue modificado por otra operación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List godoc
// @Summary      Listar ventas en orden de registro
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sales)
}
