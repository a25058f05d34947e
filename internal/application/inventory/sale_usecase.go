// Package inventory contiene el caso de uso transaccional de ventas:
// el alta de la venta y el descuento de stock se aplican como una sola
// operación lógica contra el almacenamiento.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn devuelve error, nada queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error) error
}

// SaleUseCase registro y consulta de ventas.
type SaleUseCase struct {
	tx    TxRunner
	sales repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales}
}

// RecordSale registra una venta y descuenta el stock del producto en una
// sola transacción. Precondiciones, en orden:
//   - el producto existe (ErrProductNotFound)
//   - cantidad > 0 (ErrInvalidInput)
//   - si el request trae ProductVersion, debe coincidir con la versión
//     persistida (ErrConcurrentModification)
//   - cantidad <= stock actual (ErrInsufficientStock)
//
// Si cualquier precondición falla, ni la venta ni el descuento se aplican.
func (uc *SaleUseCase) RecordSale(ctx context.Context, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.ProductVersion != nil && *in.ProductVersion != product.Version {
			return domain.ErrConcurrentModification
		}
		if in.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}

		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		sale = &entity.Sale{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			Quantity:     in.Quantity,
			UnitPrice:    unitPrice,
			TotalAmount:  unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
			CustomerName: in.CustomerName,
			UserID:       userID,
			CreatedAt:    time.Now(),
		}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}

		product.Quantity -= in.Quantity
		product.Version++
		product.UpdatedAt = sale.CreatedAt
		return products.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas en orden de registro.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		TotalAmount:  s.TotalAmount,
		CustomerName: s.CustomerName,
		UserID:       s.UserID,
		CreatedAt:    s.CreatedAt,
	}
}
