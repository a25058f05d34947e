package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/inventoree/inventoree-api/internal/application/dto"
)

// SalesReportGenerator puerto para la representación PDF del reporte de ventas.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, data *dto.SalesReportData) ([]byte, error)
}

// ReportUseCase arma los datos del reporte y delega la representación al generador.
type ReportUseCase struct {
	analytics *AnalyticsUseCase
	generator SalesReportGenerator
	appName   string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analytics *AnalyticsUseCase, generator SalesReportGenerator, appName string) *ReportUseCase {
	return &ReportUseCase{analytics: analytics, generator: generator, appName: appName}
}

// SalesReportPDF genera el PDF del reporte: métricas del período, valor de
// inventario y tabla de productos con stock bajo.
func (uc *ReportUseCase) SalesReportPDF(ctx context.Context, periodDays int) ([]byte, error) {
	metrics, err := uc.analytics.SalesAnalytics(ctx, periodDays)
	if err != nil {
		return nil, fmt.Errorf("reporte: métricas de ventas: %w", err)
	}
	value, err := uc.analytics.TotalInventoryValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: valor de inventario: %w", err)
	}
	lowStock, err := uc.analytics.LowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: stock bajo: %w", err)
	}
	return uc.generator.GenerateSalesReport(ctx, &dto.SalesReportData{
		AppName:             uc.appName,
		GeneratedAt:         time.Now(),
		Analytics:           *metrics,
		TotalInventoryValue: value.TotalValue,
		LowStock:            lowStock,
	})
}
