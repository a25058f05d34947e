package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/application/usecase"
	"github.com/inventoree/inventoree-api/internal/domain"
)

func TestCategoryDelete_ConProductos_RetornaErrEntityInUse(t *testing.T) {
	products := &fakeProductRepo{}
	categories := &fakeCategoryRepo{}
	catUC := usecase.NewCategoryUseCase(categories, products)
	prodUC := usecase.NewProductUseCase(products, categories, &fakeSupplierRepo{})
	ctx := context.Background()

	category, err := catUC.Create(ctx, dto.CreateCategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)

	_, err = prodUC.Create(ctx, dto.CreateProductRequest{Name: "Martillo", Quantity: 1, CategoryID: category.ID})
	require.NoError(t, err)

	err = catUC.Delete(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrEntityInUse)

	// La categoría sigue existiendo y reporta su conteo.
	list, err := catUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ProductCount)
}

func TestCategoryDelete_SinProductos_Elimina(t *testing.T) {
	categories := &fakeCategoryRepo{}
	uc := usecase.NewCategoryUseCase(categories, &fakeProductRepo{})
	ctx := context.Background()

	category, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Vacía"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, category.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&fakeCategoryRepo{}, &fakeProductRepo{})

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&fakeCategoryRepo{}, &fakeProductRepo{})

	name := "Nueva"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
