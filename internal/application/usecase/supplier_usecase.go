package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores con verificación referencial.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, products repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, products: products}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
	}
	if err := uc.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, supplier)
}

// Update actualiza los campos enviados; ErrNotFound si el proveedor no existe.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if err := uc.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, supplier)
}

// Delete elimina el proveedor solo si ningún producto lo referencia;
// con referencias vivas responde ErrEntityInUse y el proveedor permanece.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	count, err := uc.products.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrEntityInUse
	}
	return uc.suppliers.Delete(ctx, id)
}

// List devuelve todos los proveedores en orden de inserción.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		resp, err := uc.toResponse(ctx, s)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *SupplierUseCase) toResponse(ctx context.Context, s *entity.Supplier) (*dto.SupplierResponse, error) {
	count, err := uc.products.CountBySupplier(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		ProductCount:  count,
	}, nil
}
