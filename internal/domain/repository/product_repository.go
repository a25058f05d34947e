package repository

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// List conserva el orden de inserción (estable entre llamadas).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	CountBySupplier(ctx context.Context, supplierID string) (int, error)
}
