// Package memory implementa los puertos de persistencia sobre una colección en memoria.
// El inventario vive lo que vive el proceso; no hay almacenamiento durable.
package memory

import (
	"sync"

	"github.com/jhoicas/smart-inventory/internal/domain/entity"
)

// Store colección ordenada de artículos compartida por repositorios y TxRunner.
type Store struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
}

// NewStore construye el store con los artículos iniciales (se copian).
func NewStore(seed []entity.InventoryItem) *Store {
	items := make([]entity.InventoryItem, 0, len(seed))
	for _, it := range seed {
		items = append(items, it.Clone())
	}
	return &Store{items: items}
}

// Len número de artículos almacenados.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
