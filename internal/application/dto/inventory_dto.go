package dto

import "time"

// AddItemRequest body para POST /api/inventory/items.
// Todos los campos llegan como texto, tal como los captura el formulario (JSON o form-urlencoded).
type AddItemRequest struct {
	Name     string `json:"name" form:"name"`
	Quantity string `json:"quantity" form:"quantity"`
	Expiry   string `json:"expiry" form:"expiry"` // YYYY-MM-DD; vacío = sin vencimiento
	Sales    string `json:"sales" form:"sales"`   // enteros separados por coma, ej. "5,3,4,7"
}

// InventoryItemResponse artículo con su demanda estimada.
type InventoryItemResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	Expiry          string `json:"expiry"` // YYYY-MM-DD o "N/A"
	Sales           []int  `json:"sales"`
	ReorderLevel    int    `json:"reorder_level"`
	PredictedDemand int    `json:"predicted_demand"` // media de ventas redondeada
}

// AlertResponse artículo en riesgo de merma (vencido o con sobrestock).
type AlertResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Expiry   string   `json:"expiry"`
	Reasons  []string `json:"reasons"` // EXPIRED | OVERSTOCKED
	Message  string   `json:"message"`
}

// AlertListResponse respuesta de GET /api/inventory/alerts.
type AlertListResponse struct {
	Today  string          `json:"today"`
	Total  int             `json:"total"`
	Alerts []AlertResponse `json:"alerts"`
}

// ForecastResponse respuesta de GET /api/inventory/items/{id}/forecast.
type ForecastResponse struct {
	ItemID          int64 `json:"item_id"`
	Periods         int   `json:"periods"`
	PredictedDemand int   `json:"predicted_demand"`
}

// NotificationResponse aviso transitorio tras un alta.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AddItemResponse respuesta de POST /api/inventory/items.
type AddItemResponse struct {
	Item         InventoryItemResponse `json:"item"`
	Alerts       []AlertResponse       `json:"alerts"`
	Notification NotificationResponse  `json:"notification"`
}

// InventorySnapshotResponse estado completo para renderizar la vista de inventario.
type InventorySnapshotResponse struct {
	Today        string                  `json:"today"`
	Items        []InventoryItemResponse `json:"items"`
	Alerts       []AlertResponse         `json:"alerts"`
	Notification *NotificationResponse   `json:"notification,omitempty"`
}

// ItemListResponse respuesta paginada de GET /api/inventory/items.
type ItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
