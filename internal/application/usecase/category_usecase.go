package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías con verificación referencial.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, category)
}

// Update actualiza los campos enviados; ErrNotFound si la categoría no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, category)
}

// Delete elimina la categoría solo si ningún producto la referencia;
// con referencias vivas responde ErrEntityInUse y la categoría permanece.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrEntityInUse
	}
	return uc.categories.Delete(ctx, id)
}

// List devuelve todas las categorías en orden de inserción.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp, err := uc.toResponse(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *CategoryUseCase) toResponse(ctx context.Context, c *entity.Category) (*dto.CategoryResponse, error) {
	count, err := uc.products.CountByCategory(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Color:        c.Color,
		ProductCount: count,
	}, nil
}
