package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro inmutable de una venta. Crear una venta descuenta
// Quantity del producto referenciado en la misma transacción.
type Sale struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CustomerName string          `json:"customerName,omitempty"`
	UserID       string          `json:"userId"`
	CreatedAt    time.Time       `json:"createdAt"`
}
