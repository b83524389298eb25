package inventory

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/smart-inventory/internal/domain"
	"github.com/jhoicas/smart-inventory/internal/domain/entity"
)

// DefaultReorderLevel nivel de reorden asignado a los artículos nuevos (el formulario no lo captura).
const DefaultReorderLevel = 10

// Nombres de campo del formulario, usados en domain.ValidationError.
const (
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldExpiry   = "expiry"
	FieldSales    = "sales"
)

// RawItemForm campos del formulario de alta tal como llegan de la capa de presentación.
type RawItemForm struct {
	Name     string
	Quantity string
	Expiry   string // YYYY-MM-DD, vacío = sin vencimiento
	Sales    string // enteros separados por coma
}

// Ingester valida y normaliza formularios de alta.
type Ingester struct {
	ReorderLevel int
}

// NewIngester construye el ingestor; un nivel de reorden <= 0 se reemplaza por DefaultReorderLevel.
func NewIngester(reorderLevel int) Ingester {
	if reorderLevel <= 0 {
		reorderLevel = DefaultReorderLevel
	}
	return Ingester{ReorderLevel: reorderLevel}
}

// Ingest valida el formulario con el nivel de reorden por defecto.
func Ingest(form RawItemForm, existing []entity.InventoryItem) (entity.InventoryItem, error) {
	return NewIngester(DefaultReorderLevel).Ingest(form, existing)
}

// Ingest valida el formulario y produce un artículo nuevo con ID = max(existing) + 1.
// No modifica existing; agregar el artículo a la colección es responsabilidad del caller.
//
// Errores (siempre *domain.ValidationError):
//   - domain.ErrMissingField   si name, quantity o sales están vacíos.
//   - domain.ErrInvalidNumber  si quantity o alguna venta no es un entero >= 0.
//   - domain.ErrInvalidDate    si expiry no es YYYY-MM-DD.
func (ing Ingester) Ingest(form RawItemForm, existing []entity.InventoryItem) (entity.InventoryItem, error) {
	name := norm.NFC.String(strings.TrimSpace(form.Name))
	rawQty := strings.TrimSpace(form.Quantity)
	rawSales := strings.TrimSpace(form.Sales)

	// 1. Campos obligatorios
	switch {
	case name == "":
		return entity.InventoryItem{}, invalid(FieldName, domain.ErrMissingField)
	case rawQty == "":
		return entity.InventoryItem{}, invalid(FieldQuantity, domain.ErrMissingField)
	case rawSales == "":
		return entity.InventoryItem{}, invalid(FieldSales, domain.ErrMissingField)
	}

	// 2. Cantidad
	qty, err := parseNonNegative(rawQty)
	if err != nil {
		return entity.InventoryItem{}, invalid(FieldQuantity, domain.ErrInvalidNumber)
	}

	// 3. Historial de ventas
	sales, err := parseSales(rawSales)
	if err != nil {
		return entity.InventoryItem{}, invalid(FieldSales, domain.ErrInvalidNumber)
	}

	expiry, err := entity.ParseExpiry(form.Expiry)
	if err != nil {
		return entity.InventoryItem{}, invalid(FieldExpiry, domain.ErrInvalidDate)
	}

	reorder := ing.ReorderLevel
	if reorder <= 0 {
		reorder = DefaultReorderLevel
	}

	return entity.InventoryItem{
		ID:           NextID(existing),
		Name:         name,
		Quantity:     qty,
		Expiry:       expiry,
		Sales:        sales,
		ReorderLevel: reorder,
	}, nil
}

// NextID devuelve el mayor ID existente + 1, de modo que un ID nunca se reutiliza
// aunque en el futuro se eliminen artículos.
func NextID(existing []entity.InventoryItem) int64 {
	var max int64
	for _, it := range existing {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

func parseSales(raw string) ([]int, error) {
	tokens := strings.Split(raw, ",")
	sales := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := parseNonNegative(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		sales = append(sales, n)
	}
	if len(sales) == 0 {
		return nil, domain.ErrInvalidNumber
	}
	return sales, nil
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, domain.ErrInvalidNumber
	}
	return n, nil
}

func invalid(field string, err error) error {
	return &domain.ValidationError{Field: field, Err: err}
}
