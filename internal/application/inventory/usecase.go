package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/smart-inventory/internal/application/dto"
	"github.com/jhoicas/smart-inventory/internal/domain"
	"github.com/jhoicas/smart-inventory/internal/domain/entity"
	invdomain "github.com/jhoicas/smart-inventory/internal/domain/inventory"
	"github.com/jhoicas/smart-inventory/internal/domain/repository"
)

// AlertMessage texto mostrado para cada artículo en riesgo.
const AlertMessage = "is at risk of waste (Expiring soon or Overstocked)!"

// Config parámetros opcionales del caso de uso.
type Config struct {
	AppName             string
	DefaultReorderLevel int              // <= 0 usa invdomain.DefaultReorderLevel
	Logger              *zerolog.Logger  // nil = sin logs
	Now                 func() time.Time // nil = time.Now
}

// InventoryUseCase controlador del inventario: es dueño de la referencia mutable a la colección
// (vía repositorio) y recalcula alertas después de cada alta. Las reglas de negocio viven en
// el paquete de dominio como funciones puras.
type InventoryUseCase struct {
	repo     repository.InventoryItemRepository
	txRunner TxRunner
	notifier Notifier
	reports  ReportGenerator
	ingester invdomain.Ingester
	appName  string
	log      zerolog.Logger
	now      func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryItemRepository,
	txRunner TxRunner,
	notifier Notifier,
	reports ReportGenerator,
	cfg Config,
) *InventoryUseCase {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("module", "inventory").Logger()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &InventoryUseCase{
		repo:     repo,
		txRunner: txRunner,
		notifier: notifier,
		reports:  reports,
		ingester: invdomain.NewIngester(cfg.DefaultReorderLevel),
		appName:  cfg.AppName,
		log:      log,
		now:      now,
	}
}

// Today fecha de referencia por defecto (fecha de calendario del reloj).
func (uc *InventoryUseCase) Today() time.Time {
	return entity.CalendarDate(uc.now())
}

// ParseToday interpreta "YYYY-MM-DD"; vacío devuelve la fecha actual.
func (uc *InventoryUseCase) ParseToday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uc.Today(), nil
	}
	t, err := time.Parse(entity.ExpiryLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("today %q: %w", s, domain.ErrInvalidDate)
	}
	return t, nil
}

// ListItems devuelve una página del inventario con la demanda estimada de cada artículo.
func (uc *InventoryUseCase) ListItems(ctx context.Context, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	total := len(items)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return &dto.ItemListResponse{
		Items: toItemResponses(items[start:end]),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// AddItem valida el formulario, agrega el artículo, publica el aviso y devuelve las alertas recalculadas.
//
// Retorna *domain.ValidationError (ErrMissingField, ErrInvalidNumber, ErrInvalidDate) si el
// formulario no es válido; en ese caso no se crea ningún artículo.
func (uc *InventoryUseCase) AddItem(ctx context.Context, in dto.AddItemRequest) (*dto.AddItemResponse, error) {
	form := invdomain.RawItemForm{
		Name:     in.Name,
		Quantity: in.Quantity,
		Expiry:   in.Expiry,
		Sales:    in.Sales,
	}

	var created entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository) error {
		existing, err := itemRepo.List(ctx)
		if err != nil {
			return err
		}
		item, err := uc.ingester.Ingest(form, existing)
		if err != nil {
			return err
		}
		if err := itemRepo.Append(ctx, item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			uc.log.Warn().Str("field", verr.Field).Err(verr.Err).Msg("alta de artículo rechazada")
			return nil, err
		}
		return nil, fmt.Errorf("agregar artículo: %w", err)
	}

	notif := uc.notifier.Publish(fmt.Sprintf("Item %q added to inventory.", created.Name))

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	today := uc.Today()
	alerts := toAlertResponses(invdomain.EvaluateAlerts(items, today), today)

	uc.log.Info().
		Int64("item_id", created.ID).
		Str("name", created.Name).
		Int("quantity", created.Quantity).
		Int("alerts", len(alerts)).
		Msg("artículo agregado al inventario")

	return &dto.AddItemResponse{
		Item:   toItemResponse(created),
		Alerts: alerts,
		Notification: dto.NotificationResponse{
			ID: notif.ID, Message: notif.Message, ExpiresAt: notif.ExpiresAt,
		},
	}, nil
}

// GetAlerts evalúa el inventario completo contra today (recalculo total en cada llamada).
func (uc *InventoryUseCase) GetAlerts(ctx context.Context, today time.Time) (*dto.AlertListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	alerts := toAlertResponses(invdomain.EvaluateAlerts(items, today), today)
	return &dto.AlertListResponse{
		Today:  today.Format(entity.ExpiryLayout),
		Total:  len(alerts),
		Alerts: alerts,
	}, nil
}

// GetForecast calcula la demanda estimada de un artículo.
// Retorna domain.ErrNotFound si no existe y domain.ErrInvalidInput si no tiene historial.
func (uc *InventoryUseCase) GetForecast(ctx context.Context, id int64) (*dto.ForecastResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	demand, err := invdomain.ForecastDemand(item.Sales)
	if err != nil {
		return nil, err
	}
	return &dto.ForecastResponse{ItemID: item.ID, Periods: len(item.Sales), PredictedDemand: demand}, nil
}

// CurrentNotification devuelve el aviso vigente o nil.
func (uc *InventoryUseCase) CurrentNotification() *dto.NotificationResponse {
	n, ok := uc.notifier.Current()
	if !ok {
		return nil
	}
	return &dto.NotificationResponse{ID: n.ID, Message: n.Message, ExpiresAt: n.ExpiresAt}
}

// GetSnapshot reúne inventario, alertas y aviso vigente en una sola respuesta.
func (uc *InventoryUseCase) GetSnapshot(ctx context.Context, today time.Time) (*dto.InventorySnapshotResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	return &dto.InventorySnapshotResponse{
		Today:        today.Format(entity.ExpiryLayout),
		Items:        toItemResponses(items),
		Alerts:       toAlertResponses(invdomain.EvaluateAlerts(items, today), today),
		Notification: uc.CurrentNotification(),
	}, nil
}

// DownloadReportPDF genera el reporte PDF del inventario y sus alertas.
func (uc *InventoryUseCase) DownloadReportPDF(ctx context.Context, today time.Time) (pdfBytes []byte, filename string, err error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("listar inventario: %w", err)
	}
	report := InventoryReport{
		AppName:     uc.appName,
		GeneratedAt: uc.now(),
		Today:       today,
		Items:       toItemResponses(items),
		Alerts:      toAlertResponses(invdomain.EvaluateAlerts(items, today), today),
	}
	pdfBytes, err = uc.reports.GenerateInventoryReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte: %w", err)
	}
	filename = fmt.Sprintf("inventario_%s.pdf", today.Format(entity.ExpiryLayout))
	return pdfBytes, filename, nil
}

func toItemResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	// Los artículos creados por Ingest siempre tienen historial; sin él la demanda queda en 0.
	demand, _ := invdomain.ForecastDemand(it.Sales)
	sales := it.Sales
	if sales == nil {
		sales = []int{}
	}
	return dto.InventoryItemResponse{
		ID:              it.ID,
		Name:            it.Name,
		Quantity:        it.Quantity,
		Expiry:          it.Expiry.String(),
		Sales:           sales,
		ReorderLevel:    it.ReorderLevel,
		PredictedDemand: demand,
	}
}

func toItemResponses(items []entity.InventoryItem) []dto.InventoryItemResponse {
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toAlertResponses(alerts []entity.InventoryItem, today time.Time) []dto.AlertResponse {
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, it := range alerts {
		reasons := invdomain.AlertReasons(it, today)
		codes := make([]string, 0, len(reasons))
		for _, r := range reasons {
			codes = append(codes, string(r))
		}
		out = append(out, dto.AlertResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Expiry:   it.Expiry.String(),
			Reasons:  codes,
			Message:  it.Name + " " + AlertMessage,
		})
	}
	return out
}
