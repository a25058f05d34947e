package usecase_test

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete. Conservan el
// orden de inserción, igual que el almacenamiento real.

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	copied := *product
	r.products = append(r.products, &copied)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			copied := *product
			r.products[i] = &copied
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	count := 0
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) CountBySupplier(_ context.Context, supplierID string) (int, error) {
	count := 0
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	copied := *category
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			copied := *category
			r.categories[i] = &copied
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	copied := *supplier
	r.suppliers = append(r.suppliers, &copied)
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	for i, s := range r.suppliers {
		if s.ID == supplier.ID {
			copied := *supplier
			r.suppliers[i] = &copied
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	return r.suppliers, nil
}

type fakePreferencesRepo struct {
	theme string
	prefs *entity.Preferences
}

func (r *fakePreferencesRepo) GetTheme(_ context.Context) (string, error) { return r.theme, nil }

func (r *fakePreferencesRepo) SaveTheme(_ context.Context, theme string) error {
	r.theme = theme
	return nil
}

func (r *fakePreferencesRepo) Get(_ context.Context) (*entity.Preferences, error) {
	if r.prefs == nil {
		return nil, nil
	}
	copied := *r.prefs
	return &copied, nil
}

func (r *fakePreferencesRepo) Save(_ context.Context, prefs *entity.Preferences) error {
	copied := *prefs
	r.prefs = &copied
	return nil
}
