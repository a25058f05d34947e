package storage

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre la colección "categories".
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(kv *KV) *CategoryRepo {
	return &CategoryRepo{q: kv.db}
}

// Create agrega la categoría al final de la colección.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	categories, err := loadList[entity.Category](ctx, r.q, KeyCategories)
	if err != nil {
		return err
	}
	categories = append(categories, category)
	return saveList(ctx, r.q, KeyCategories, categories)
}

// GetByID devuelve la categoría o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	categories, err := loadList[entity.Category](ctx, r.q, KeyCategories)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	categories, err := loadList[entity.Category](ctx, r.q, KeyCategories)
	if err != nil {
		return err
	}
	for i, c := range categories {
		if c.ID == category.ID {
			categories[i] = category
			return saveList(ctx, r.q, KeyCategories, categories)
		}
	}
	return nil
}

// Delete elimina la categoría. La verificación referencial vive en el caso de uso.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	categories, err := loadList[entity.Category](ctx, r.q, KeyCategories)
	if err != nil {
		return err
	}
	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return saveList(ctx, r.q, KeyCategories, kept)
}

// List devuelve todas las categorías en orden de inserción.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return loadList[entity.Category](ctx, r.q, KeyCategories)
}
