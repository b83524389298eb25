package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-inventory/internal/domain/entity"
	"github.com/jhoicas/smart-inventory/internal/domain/inventory"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func names(items []entity.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

// Con los datos semilla y hoy = 2025-01-01 solo Milk está en alerta (vencida).
// Laptop queda fuera porque 10 no es > 5*2.
func TestEvaluateAlerts_DatosSemilla(t *testing.T) {
	alerts := inventory.EvaluateAlerts(inventory.SeedItems(), day("2025-01-01"))
	assert.Equal(t, []string{"Milk"}, names(alerts))
}

func TestEvaluateAlerts_PreservaOrdenDeEntrada(t *testing.T) {
	items := []entity.InventoryItem{
		{ID: 7, Name: "Queso", Quantity: 100, ReorderLevel: 10},
		{ID: 2, Name: "Pan", Quantity: 1, ReorderLevel: 10},
		{ID: 3, Name: "Yogur", Quantity: 1, ReorderLevel: 10, Expiry: entity.MustParseExpiry("2024-01-01")},
	}
	alerts := inventory.EvaluateAlerts(items, day("2024-06-01"))
	assert.Equal(t, []string{"Queso", "Yogur"}, names(alerts))
}

// La comparación es por fecha de calendario: vencer hoy no es "vencido".
func TestIsExpiring_ComparacionPorFecha(t *testing.T) {
	item := entity.InventoryItem{Name: "Leche", Expiry: entity.MustParseExpiry("2025-03-10"), ReorderLevel: 10}

	lateSameDay := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.False(t, inventory.IsExpiring(item, lateSameDay), "vence hoy: aún no está vencido")
	assert.True(t, inventory.IsExpiring(item, day("2025-03-11")))
	assert.False(t, inventory.IsExpiring(item, day("2025-03-09")))
}

func TestIsExpiring_SinVencimientoNuncaAlerta(t *testing.T) {
	item := entity.InventoryItem{Name: "Laptop", Expiry: entity.NoExpiry(), ReorderLevel: 5}
	assert.False(t, inventory.IsExpiring(item, day("2999-12-31")))
}

func TestIsOverstocked_Umbral(t *testing.T) {
	cases := []struct {
		qty, reorder int
		want         bool
	}{
		{qty: 10, reorder: 5, want: false},
		{qty: 11, reorder: 5, want: true},
		{qty: 60, reorder: 30, want: false},
		{qty: 1, reorder: 0, want: true},
		{qty: 0, reorder: 0, want: false},
	}
	for _, c := range cases {
		item := entity.InventoryItem{Quantity: c.qty, ReorderLevel: c.reorder}
		assert.Equal(t, c.want, inventory.IsOverstocked(item), "qty=%d reorder=%d", c.qty, c.reorder)
	}
}

// Un artículo está en alerta si y solo si está vencido o con sobrestock.
func TestEvaluateAlerts_EquivalenciaConReglas(t *testing.T) {
	today := day("2025-01-01")
	var items []entity.InventoryItem
	id := int64(1)
	for _, qty := range []int{0, 10, 20, 21} {
		for _, exp := range []string{"", "2024-12-31", "2025-01-01", "2025-01-02"} {
			items = append(items, entity.InventoryItem{
				ID: id, Name: "x", Quantity: qty, ReorderLevel: 10,
				Expiry: entity.MustParseExpiry(exp),
			})
			id++
		}
	}

	alerts := inventory.EvaluateAlerts(items, today)
	inAlerts := make(map[int64]bool, len(alerts))
	for _, a := range alerts {
		inAlerts[a.ID] = true
	}
	for _, it := range items {
		want := inventory.IsExpiring(it, today) || inventory.IsOverstocked(it)
		assert.Equal(t, want, inAlerts[it.ID], "item %d", it.ID)
	}
}

func TestEvaluateAlerts_Idempotente(t *testing.T) {
	items := inventory.SeedItems()
	today := day("2025-01-01")
	first := inventory.EvaluateAlerts(items, today)
	second := inventory.EvaluateAlerts(items, today)
	require.Equal(t, first, second)
	assert.Equal(t, inventory.SeedItems(), items, "la evaluación no debe modificar la colección")
}

func TestEvaluateAlerts_ColeccionVacia(t *testing.T) {
	alerts := inventory.EvaluateAlerts(nil, day("2025-01-01"))
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestAlertReasons(t *testing.T) {
	item := entity.InventoryItem{Quantity: 50, ReorderLevel: 10, Expiry: entity.MustParseExpiry("2024-01-01")}
	assert.Equal(t,
		[]inventory.AlertReason{inventory.AlertReasonExpired, inventory.AlertReasonOverstocked},
		inventory.AlertReasons(item, day("2025-01-01")))

	item.Quantity = 5
	assert.Equal(t, []inventory.AlertReason{inventory.AlertReasonExpired}, inventory.AlertReasons(item, day("2025-01-01")))
	assert.Empty(t, inventory.AlertReasons(item, day("2023-01-01")))
}
