package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. El SKU se genera del lado del servicio.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"minQuantity"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	CategoryID  string          `json:"categoryId"`
	SupplierID  string          `json:"supplierId"`
	Description string          `json:"description"`
}

// UpdateProductRequest campos editables; nil = sin cambios. El SKU no se modifica.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	MinQuantity *int             `json:"minQuantity,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	SupplierID  *string          `json:"supplierId,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ProductResponse producto con los nombres resueltos de categoría y proveedor.
// Las referencias colgantes se muestran como "Unknown" en lugar de fallar.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"minQuantity"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	SupplierID   string          `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	Description  string          `json:"description"`
	LowStock     bool            `json:"lowStock"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
