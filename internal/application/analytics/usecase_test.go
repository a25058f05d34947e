package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventoree/inventoree-api/internal/application/analytics"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// Fakes de solo lectura: analytics nunca escribe.

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ string) error          { return nil }
func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) CountByCategory(_ context.Context, _ string) (int, error) { return 0, nil }
func (r *fakeProductRepo) CountBySupplier(_ context.Context, _ string) (int, error) { return 0, nil }

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}
func (r *fakeSaleRepo) List(_ context.Context) ([]*entity.Sale, error) { return r.sales, nil }

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) Create(_ context.Context, _ *entity.Category) error { return nil }
func (fakeCategoryRepo) GetByID(_ context.Context, _ string) (*entity.Category, error) {
	return nil, nil
}
func (fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }
func (fakeCategoryRepo) Delete(_ context.Context, _ string) error           { return nil }
func (fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) { return nil, nil }

type fakeSupplierRepo struct{}

func (fakeSupplierRepo) Create(_ context.Context, _ *entity.Supplier) error { return nil }
func (fakeSupplierRepo) GetByID(_ context.Context, _ string) (*entity.Supplier, error) {
	return nil, nil
}
func (fakeSupplierRepo) Update(_ context.Context, _ *entity.Supplier) error { return nil }
func (fakeSupplierRepo) Delete(_ context.Context, _ string) error           { return nil }
func (fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) { return nil, nil }

func newAnalytics(products []*entity.Product, sales []*entity.Sale) *analytics.AnalyticsUseCase {
	return analytics.NewAnalyticsUseCase(
		&fakeProductRepo{products: products},
		&fakeSaleRepo{sales: sales},
		fakeCategoryRepo{},
		fakeSupplierRepo{},
	)
}

func product(id string, qty, minQty int, cost int64) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        "Producto " + id,
		Quantity:    qty,
		MinQuantity: minQty,
		Cost:        decimal.NewFromInt(cost),
	}
}

func sale(amount int64, qty int, at time.Time) *entity.Sale {
	return &entity.Sale{
		ID:          "sale-" + at.Format("150405.000000000"),
		Quantity:    qty,
		TotalAmount: decimal.NewFromInt(amount),
		CreatedAt:   at,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesAnalytics
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesAnalytics_SinVentas_TodoEnCero(t *testing.T) {
	uc := newAnalytics(nil, nil)

	metrics, err := uc.SalesAnalytics(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 30, metrics.PeriodDays)
	assert.Equal(t, 0, metrics.TotalSales)
	assert.Equal(t, 0, metrics.TotalQuantitySold)
	assert.True(t, metrics.TotalRevenue.IsZero())
	assert.True(t, metrics.AverageOrderValue.IsZero(),
		"sin ventas el promedio es 0, no división por cero")
}

func TestSalesAnalytics_FiltraPorPeriodo(t *testing.T) {
	now := time.Now()
	uc := newAnalytics(nil, []*entity.Sale{
		sale(100, 2, now.AddDate(0, 0, -5)),
		sale(50, 1, now.AddDate(0, 0, -10)),
		sale(999, 9, now.AddDate(0, 0, -45)), // fuera del período
	})

	metrics, err := uc.SalesAnalytics(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TotalSales)
	assert.Equal(t, 3, metrics.TotalQuantitySold)
	assert.True(t, metrics.TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, metrics.AverageOrderValue.Equal(decimal.NewFromInt(75)))
}

func TestSalesAnalytics_PromedioRedondeadoADosDecimales(t *testing.T) {
	now := time.Now()
	uc := newAnalytics(nil, []*entity.Sale{
		sale(10, 1, now),
		sale(10, 1, now),
		sale(5, 1, now),
	})

	metrics, err := uc.SalesAnalytics(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, metrics.AverageOrderValue.Equal(decimal.NewFromFloat(8.33)),
		"25 / 3 se redondea a 8.33, obtuvo %s", metrics.AverageOrderValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStockProducts / TotalInventoryValue
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockProducts_OrdenDeInsercion(t *testing.T) {
	uc := newAnalytics([]*entity.Product{
		product("a", 2, 5, 10),  // bajo
		product("b", 50, 5, 10), // ok
		product("c", 5, 5, 10),  // justo en el mínimo cuenta como bajo
	}, nil)

	low, err := uc.LowStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "a", low[0].ID)
	assert.Equal(t, "c", low[1].ID)
	assert.Equal(t, "Unknown", low[0].CategoryName, "sin categoría resuelve Unknown")
	assert.True(t, low[0].LowStock)
}

func TestTotalInventoryValue(t *testing.T) {
	uc := newAnalytics([]*entity.Product{
		product("a", 3, 1, 10), // 30
		product("b", 2, 1, 25), // 50
	}, nil)

	value, err := uc.TotalInventoryValue(context.Background())
	require.NoError(t, err)
	assert.True(t, value.TotalValue.Equal(decimal.NewFromInt(80)))
}

func TestTotalInventoryValue_SinProductos(t *testing.T) {
	uc := newAnalytics(nil, nil)

	value, err := uc.TotalInventoryValue(context.Background())
	require.NoError(t, err)
	assert.True(t, value.TotalValue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// DashboardSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	uc := newAnalytics(
		[]*entity.Product{
			product("a", 2, 5, 10), // bajo, valor 20
			product("b", 8, 5, 5),  // ok, valor 40
		},
		[]*entity.Sale{
			sale(100, 1, now),       // hoy
			sale(40, 1, yesterday),  // ayer, no cuenta
		},
	)

	summary, err := uc.DashboardSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.True(t, summary.TotalInventoryValue.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 1, summary.TodaySales)
	assert.True(t, summary.TodayRevenue.Equal(decimal.NewFromInt(100)))
}
