package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/smart-inventory/internal/domain"
	"github.com/jhoicas/smart-inventory/internal/domain/entity"
	"github.com/jhoicas/smart-inventory/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación de InventoryItemRepository sobre Store.
// Fuera de una transacción toma el lock en cada llamada; dentro de TxRunner.Run
// el lock ya lo tiene el runner.
type InventoryItemRepo struct {
	store *Store
	inTx  bool
}

// NewInventoryItemRepository construye el adaptador.
func NewInventoryItemRepository(store *Store) *InventoryItemRepo {
	return &InventoryItemRepo{store: store}
}

// List devuelve una copia de la colección en orden de inserción.
func (r *InventoryItemRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]entity.InventoryItem, 0, len(r.store.items))
	for _, it := range r.store.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// GetByID obtiene un artículo; retorna (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, it := range r.store.items {
		if it.ID == id {
			cp := it.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

// Append agrega el artículo al final. El ID debe ser único en la colección.
func (r *InventoryItemRepo) Append(ctx context.Context, item entity.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for _, it := range r.store.items {
		if it.ID == item.ID {
			return fmt.Errorf("append item %d: %w", item.ID, domain.ErrDuplicate)
		}
	}
	r.store.items = append(r.store.items, item.Clone())
	return nil
}
