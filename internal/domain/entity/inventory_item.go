package entity

// InventoryItem representa un artículo en stock con su historial de ventas.
// Es inmutable una vez creado; la colección se ordena por orden de inserción.
type InventoryItem struct {
	ID           int64
	Name         string
	Quantity     int        // unidades en stock (>= 0)
	Expiry       ExpiryDate // vacío = "N/A"
	Sales        []int      // ventas por periodo, en orden cronológico
	ReorderLevel int        // umbral de reorden (> 0)
}

// Clone devuelve una copia que no comparte el slice de ventas.
func (i InventoryItem) Clone() InventoryItem {
	out := i
	if i.Sales != nil {
		out.Sales = make([]int, len(i.Sales))
		copy(out.Sales, i.Sales)
	}
	return out
}
