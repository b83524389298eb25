package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/smart-inventory/internal/application/dto"
	"github.com/jhoicas/smart-inventory/internal/application/notification"
	"github.com/jhoicas/smart-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo a la colección, pasando un repositorio
// atado a esa "transacción". Garantiza que asignar el ID y agregar el artículo sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.InventoryItemRepository) error) error
}

// Notifier publica el aviso transitorio posterior a un alta.
// Lo implementa *notification.Notifier.
type Notifier interface {
	Publish(message string) notification.Notification
	Current() (notification.Notification, bool)
}

// InventoryReport datos que se vuelcan en el reporte PDF.
type InventoryReport struct {
	AppName     string
	GeneratedAt time.Time
	Today       time.Time
	Items       []dto.InventoryItemResponse
	Alerts      []dto.AlertResponse
}

// ReportGenerator genera la representación PDF del inventario.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report InventoryReport) ([]byte, error)
}
