package storage

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre la colección "suppliers".
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(kv *KV) *SupplierRepo {
	return &SupplierRepo{q: kv.db}
}

// Create agrega el proveedor al final de la colección.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	suppliers, err := loadList[entity.Supplier](ctx, r.q, KeySuppliers)
	if err != nil {
		return err
	}
	suppliers = append(suppliers, supplier)
	return saveList(ctx, r.q, KeySuppliers, suppliers)
}

// GetByID devuelve el proveedor o (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	suppliers, err := loadList[entity.Supplier](ctx, r.q, KeySuppliers)
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	suppliers, err := loadList[entity.Supplier](ctx, r.q, KeySuppliers)
	if err != nil {
		return err
	}
	for i, s := range suppliers {
		if s.ID == supplier.ID {
			suppliers[i] = supplier
			return saveList(ctx, r.q, KeySuppliers, suppliers)
		}
	}
	return nil
}

// Delete elimina el proveedor. La verificación referencial vive en el caso de uso.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	suppliers, err := loadList[entity.Supplier](ctx, r.q, KeySuppliers)
	if err != nil {
		return err
	}
	kept := suppliers[:0]
	for _, s := range suppliers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return saveList(ctx, r.q, KeySuppliers, kept)
}

// List devuelve todos los proveedores en orden de inserción.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	return loadList[entity.Supplier](ctx, r.q, KeySuppliers)
}
