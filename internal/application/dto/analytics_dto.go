package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesAnalyticsResponse métricas de ventas dentro de un período.
// AverageOrderValue es 0 cuando no hubo ventas en el período.
type SalesAnalyticsResponse struct {
	PeriodDays        int             `json:"periodDays"`
	TotalSales        int             `json:"totalSales"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalQuantitySold int             `json:"totalQuantitySold"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// DashboardSummaryResponse resumen para la pantalla de inicio.
type DashboardSummaryResponse struct {
	TotalProducts       int             `json:"totalProducts"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	LowStockCount       int             `json:"lowStockCount"`
	TodaySales          int             `json:"todaySales"`
	TodayRevenue        decimal.Decimal `json:"todayRevenue"`
}

// InventoryValueResponse valor total del inventario (Σ quantity × cost).
type InventoryValueResponse struct {
	TotalValue decimal.Decimal `json:"totalValue"`
}

// SalesReportData insumo para la representación PDF del reporte de ventas.
type SalesReportData struct {
	AppName             string
	GeneratedAt         time.Time
	Analytics           SalesAnalyticsResponse
	TotalInventoryValue decimal.Decimal
	LowStock            []ProductResponse
}
