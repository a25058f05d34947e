package storage

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre la colección "sales".
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(kv *KV) *SaleRepo {
	return &SaleRepo{q: kv.db}
}

// Create agrega la venta al final de la colección.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	sales, err := loadList[entity.Sale](ctx, r.q, KeySales)
	if err != nil {
		return err
	}
	sales = append(sales, sale)
	return saveList(ctx, r.q, KeySales, sales)
}

// List devuelve todas las ventas en orden de registro.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return loadList[entity.Sale](ctx, r.q, KeySales)
}
