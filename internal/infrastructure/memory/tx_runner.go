package memory

import (
	"context"

	"github.com/jhoicas/smart-inventory/internal/application/inventory"
	"github.com/jhoicas/smart-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las escrituras sobre Store: fn ve la colección y la modifica
// con el lock exclusivo tomado. Si fn falla se descartan los artículos agregados.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con un repositorio atado a la "transacción" y hace commit o rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(itemRepo repository.InventoryItemRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	mark := len(r.store.items)
	if err := fn(&InventoryItemRepo{store: r.store, inTx: true}); err != nil {
		r.store.items = r.store.items[:mark]
		return err
	}
	return nil
}
