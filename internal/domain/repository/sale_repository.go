package repository

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son append-only; no existe Update ni Delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]*entity.Sale, error)
}
