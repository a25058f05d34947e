package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest registro de una venta.
// UnitPrice nil toma el precio actual del producto. ProductVersion, si se
// envía, habilita el check-and-set optimista contra escrituras solapadas.
type RecordSaleRequest struct {
	ProductID      string           `json:"productId"`
	Quantity       int              `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	CustomerName   string           `json:"customerName,omitempty"`
	ProductVersion *int64           `json:"productVersion,omitempty"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CustomerName string          `json:"customerName,omitempty"`
	UserID       string          `json:"userId"`
	CreatedAt    time.Time       `json:"createdAt"`
}
