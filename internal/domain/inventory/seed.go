package inventory

import "github.com/jhoicas/smart-inventory/internal/domain/entity"

// SeedItems devuelve el inventario de demostración con el que arranca el proceso.
// Cada llamada retorna una copia nueva.
func SeedItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: 1, Name: "Milk", Quantity: 20, Expiry: entity.MustParseExpiry("2024-10-30"), Sales: []int{5, 3, 4, 7}, ReorderLevel: 10},
		{ID: 2, Name: "T-Shirt", Quantity: 50, Expiry: entity.NoExpiry(), Sales: []int{15, 20, 5, 8}, ReorderLevel: 30},
		{ID: 3, Name: "Laptop", Quantity: 10, Expiry: entity.NoExpiry(), Sales: []int{2, 1, 3, 4}, ReorderLevel: 5},
	}
}
