package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// unknownName se muestra cuando una referencia a categoría o proveedor quedó colgante.
const unknownName = "Unknown"

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, suppliers: suppliers}
}

// generateSKU arma el código visible del producto: últimos 4 dígitos del
// timestamp + 4 dígitos aleatorios. Formato heredado de los datos existentes.
func generateSKU() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("PRD-%s%04d", ts[len(ts)-4:], rand.IntN(10000))
}

// Create crea un producto con ID y SKU generados. MinQuantity por defecto es 1.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	minQty := in.MinQuantity
	if minQty <= 0 {
		minQty = 1
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         generateSKU(),
		Quantity:    in.Quantity,
		MinQuantity: minQty,
		Price:       in.Price,
		Cost:        in.Cost,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, product)
}

// GetByID obtiene un producto; ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return uc.toResponse(ctx, product)
}

// Update actualiza los campos enviados. El SKU nunca cambia; Quantity sí es
// editable aquí (corrección manual de stock), incrementando Version.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		product.MinQuantity = *in.MinQuantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.Version++
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, product)
}

// Delete elimina un producto; ErrProductNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.products.Delete(ctx, id)
}

// List devuelve los productos en orden de inserción; query no vacío filtra
// por nombre o SKU ignorando mayúsculas y acentos.
func (uc *ProductUseCase) List(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := Fold(query)
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(Fold(p.Name), needle) && !strings.Contains(Fold(p.SKU), needle) {
			continue
		}
		resp, err := uc.toResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// toResponse resuelve los nombres de categoría y proveedor. Las referencias
// colgantes no son un error: se muestran como "Unknown".
func (uc *ProductUseCase) toResponse(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	categoryName := unknownName
	if c, err := uc.categories.GetByID(ctx, p.CategoryID); err != nil {
		return nil, err
	} else if c != nil {
		categoryName = c.Name
	}
	supplierName := unknownName
	if s, err := uc.suppliers.GetByID(ctx, p.SupplierID); err != nil {
		return nil, err
	} else if s != nil {
		supplierName = s.Name
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		Price:        p.Price,
		Cost:         p.Cost,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		SupplierID:   p.SupplierID,
		SupplierName: supplierName,
		Description:  p.Description,
		LowStock:     p.LowStock(),
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza para búsqueda: minúsculas y sin marcas diacríticas
// ("Camión" → "camion").
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
