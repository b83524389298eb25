package repository

import (
	"context"

	"github.com/jhoicas/smart-inventory/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
// La colección conserva el orden de inserción.
type InventoryItemRepository interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	Append(ctx context.Context, item entity.InventoryItem) error
}
