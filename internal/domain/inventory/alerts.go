package inventory

import (
	"time"

	"github.com/jhoicas/smart-inventory/internal/domain/entity"
)

// AlertReason motivo por el que un artículo entra en la lista de alertas.
type AlertReason string

const (
	AlertReasonExpired     AlertReason = "EXPIRED"
	AlertReasonOverstocked AlertReason = "OVERSTOCKED"
)

// OverstockFactor múltiplo del nivel de reorden a partir del cual hay sobrestock.
const OverstockFactor = 2

// IsExpiring indica si el artículo tiene vencimiento y este es anterior a today
// (comparación por fecha de calendario, sin hora).
func IsExpiring(item entity.InventoryItem, today time.Time) bool {
	return item.Expiry.Before(today)
}

// IsOverstocked: quantity > reorderLevel * 2.
func IsOverstocked(item entity.InventoryItem) bool {
	return item.Quantity > item.ReorderLevel*OverstockFactor
}

// AlertReasons devuelve las reglas que dispara el artículo; vacío si no está en riesgo.
func AlertReasons(item entity.InventoryItem, today time.Time) []AlertReason {
	var reasons []AlertReason
	if IsExpiring(item, today) {
		reasons = append(reasons, AlertReasonExpired)
	}
	if IsOverstocked(item) {
		reasons = append(reasons, AlertReasonOverstocked)
	}
	return reasons
}

// EvaluateAlerts devuelve, en el orden de entrada, los artículos vencidos o con sobrestock.
// Función pura: se recalcula completa en cada llamada.
func EvaluateAlerts(items []entity.InventoryItem, today time.Time) []entity.InventoryItem {
	alerts := make([]entity.InventoryItem, 0)
	for _, item := range items {
		if IsExpiring(item, today) || IsOverstocked(item) {
			alerts = append(alerts, item)
		}
	}
	return alerts
}
