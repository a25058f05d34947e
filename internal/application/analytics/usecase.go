// Package analytics contiene los casos de uso de reportes: stock bajo,
// valor de inventario, métricas de ventas por período y el resumen del
// tablero de inicio.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// AnalyticsUseCase consultas derivadas sobre productos y ventas (read-only).
type AnalyticsUseCase struct {
	products   repository.ProductRepository
	sales      repository.SaleRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{products: products, sales: sales, categories: categories, suppliers: suppliers}
}

// LowStockProducts devuelve los productos con quantity <= minQuantity,
// en orden de inserción (estable entre llamadas).
func (uc *AnalyticsUseCase) LowStockProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		resp, err := uc.toProductResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// TotalInventoryValue devuelve Σ quantity × cost sobre todos los productos.
func (uc *AnalyticsUseCase) TotalInventoryValue(ctx context.Context) (*dto.InventoryValueResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.InventoryValue())
	}
	return &dto.InventoryValueResponse{TotalValue: total}, nil
}

// SalesAnalytics calcula las métricas de las ventas cuyo createdAt cae en
// [now - periodDays, now]. Con cero ventas todas las métricas son 0,
// incluido AverageOrderValue.
func (uc *AnalyticsUseCase) SalesAnalytics(ctx context.Context, periodDays int) (*dto.SalesAnalyticsResponse, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, -periodDays)

	out := &dto.SalesAnalyticsResponse{
		PeriodDays:        periodDays,
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	for _, s := range sales {
		if s.CreatedAt.Before(cutoff) {
			continue
		}
		out.TotalSales++
		out.TotalRevenue = out.TotalRevenue.Add(s.TotalAmount)
		out.TotalQuantitySold += s.Quantity
	}
	if out.TotalSales > 0 {
		out.AverageOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(out.TotalSales))).Round(2)
	}
	return out, nil
}

// DashboardSummary arma el resumen de la pantalla de inicio: totales de
// inventario y las ventas del día en curso (desde las 00:00 locales).
func (uc *AnalyticsUseCase) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := &dto.DashboardSummaryResponse{
		TotalProducts:       len(products),
		TotalInventoryValue: decimal.Zero,
		TodayRevenue:        decimal.Zero,
	}
	for _, p := range products {
		out.TotalInventoryValue = out.TotalInventoryValue.Add(p.InventoryValue())
		if p.LowStock() {
			out.LowStockCount++
		}
	}
	for _, s := range sales {
		if s.CreatedAt.Before(todayStart) {
			continue
		}
		out.TodaySales++
		out.TodayRevenue = out.TodayRevenue.Add(s.TotalAmount)
	}
	return out, nil
}

func (uc *AnalyticsUseCase) toProductResponse(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	categoryName := "Unknown"
	if c, err := uc.categories.GetByID(ctx, p.CategoryID); err != nil {
		return nil, err
	} else if c != nil {
		categoryName = c.Name
	}
	supplierName := "Unknown"
	if s, err := uc.suppliers.GetByID(ctx, p.SupplierID); err != nil {
		return nil, err
	} else if s != nil {
		supplierName = s.Name
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		Price:        p.Price,
		Cost:         p.Cost,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		SupplierID:   p.SupplierID,
		SupplierName: supplierName,
		Description:  p.Description,
		LowStock:     true,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}
