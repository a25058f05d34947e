package storage

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección "products".
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(kv *KV) *ProductRepo {
	return &ProductRepo{q: kv.db}
}

// Create agrega el producto al final de la colección (orden de inserción estable).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	products, err := loadList[entity.Product](ctx, r.q, KeyProducts)
	if err != nil {
		return err
	}
	products = append(products, product)
	return saveList(ctx, r.q, KeyProducts, products)
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := loadList[entity.Product](ctx, r.q, KeyProducts)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID conservando su posición.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	products, err := loadList[entity.Product](ctx, r.q, KeyProducts)
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return saveList(ctx, r.q, KeyProducts, products)
		}
	}
	return nil
}

// Delete elimina el producto de la colección.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	products, err := loadList[entity.Product](ctx, r.q, KeyProducts)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return saveList(ctx, r.q, KeyProducts, kept)
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return loadList[entity.Product](ctx, r.q, KeyProducts)
}

// CountByCategory cuenta los productos que referencian la categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	products, err := loadList[entity.Product](ctx, r.q, KeyProducts)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// CountBySupplier cuenta los productos que referencian el proveedor.
func (r *ProductRepo) CountBySupplier(ctx context.Context, supplierID string) (int, error) {
	products, err := loadList[entity.Product](ctx, r.q, KeyProducts)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range products {
		if p.SupplierID == supplierID {
			count++
		}
	}
	return count, nil
}
