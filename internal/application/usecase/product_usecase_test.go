package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/application/usecase"
	"github.com/inventoree/inventoree-api/internal/domain"
)

func newProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeSupplierRepo) {
	products := &fakeProductRepo{}
	categories := &fakeCategoryRepo{}
	suppliers := &fakeSupplierRepo{}
	return usecase.NewProductUseCase(products, categories, suppliers), products, categories, suppliers
}

func TestProductCreate_GeneraIDySKU(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Martillo",
		Quantity: 10,
		Price:    decimal.NewFromInt(25),
		Cost:     decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Regexp(t, regexp.MustCompile(`^PRD-\d{8}$`), resp.SKU,
		"SKU: PRD- + 4 dígitos de timestamp + 4 aleatorios")
	assert.Equal(t, 1, resp.MinQuantity, "minQuantity por defecto es 1")
	assert.Equal(t, int64(0), resp.Version)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc, _, _, _ := newProductUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUpdate_SKUInmutableYVersionIncrementa(t *testing.T) {
	uc, _, _, _ := newProductUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Martillo", Quantity: 10, Price: decimal.NewFromInt(25), Cost: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	newName := "Martillo de carpintero"
	newQty := 7
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &newName, Quantity: &newQty})
	require.NoError(t, err)

	assert.Equal(t, created.SKU, updated.SKU, "el SKU nunca cambia en update")
	assert.Equal(t, "Martillo de carpintero", updated.Name)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, created.Version+1, updated.Version)
}

func TestProductList_BusquedaIgnoraAcentosYMayusculas(t *testing.T) {
	uc, _, _, _ := newProductUseCase()
	ctx := context.Background()

	for _, name := range []string{"Camión de juguete", "Pelota", "CAMISA"} {
		_, err := uc.Create(ctx, dto.CreateProductRequest{Name: name, Quantity: 1})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, "cami")
	require.NoError(t, err)
	require.Equal(t, 2, list.Total, `"cami" debe encontrar Camión y CAMISA`)
	assert.Equal(t, "Camión de juguete", list.Items[0].Name, "se conserva el orden de inserción")
	assert.Equal(t, "CAMISA", list.Items[1].Name)

	list, err = uc.List(ctx, "CAMIÓN")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total, "la consulta también se normaliza")

	list, err = uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total, "consulta vacía devuelve todo")
}

func TestProductList_ReferenciaColganteMuestraUnknown(t *testing.T) {
	uc, _, _, _ := newProductUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Huérfano", Quantity: 1, CategoryID: "categoria-borrada", SupplierID: "proveedor-borrado",
	})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.CategoryName)
	assert.Equal(t, "Unknown", got.SupplierName)
}

func TestProductDelete(t *testing.T) {
	uc, products, _, _ := newProductUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Efímero", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Empty(t, products.products)

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound, "borrar dos veces es not found")
}

func TestFold(t *testing.T) {
	assert.Equal(t, "camion", usecase.Fold("Camión"))
	assert.Equal(t, "nino", usecase.Fold("NIÑO"))
	assert.Equal(t, "cafe con leche", usecase.Fold("Café con Leche"))
	assert.Equal(t, "", usecase.Fold(""))
}
