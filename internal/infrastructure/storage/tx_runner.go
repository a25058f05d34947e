package storage

import (
	"context"
	"fmt"

	"github.com/inventoree/inventoree-api/internal/application/inventory"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción sqlite, de modo que
// el alta de la venta y el descuento de stock se confirman (o revierten) juntos.
type TxRunner struct {
	kv *KV
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(kv *KV) *TxRunner {
	return &TxRunner{kv: kv}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
) error) error {
	tx, err := r.kv.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&ProductRepo{q: tx}, &SaleRepo{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
