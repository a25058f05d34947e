package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CategoryID y SupplierID son referencias débiles: si la entidad referenciada
// no existe, la consulta resuelve el nombre como "Unknown" en lugar de fallar.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"minQuantity"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	CategoryID  string          `json:"categoryId"`
	SupplierID  string          `json:"supplierId"`
	Description string          `json:"description"`
	Version     int64           `json:"version"` // check-and-set en mutaciones de stock
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// LowStock indica si el stock cayó al mínimo configurado o por debajo.
func (p *Product) LowStock() bool { return p.Quantity <= p.MinQuantity }

// InventoryValue devuelve quantity × cost.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
