package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-inventory/internal/application/dto"
	"github.com/jhoicas/smart-inventory/internal/application/inventory"
	"github.com/jhoicas/smart-inventory/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del inventario, alertas y pronóstico.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetSnapshot godoc
// @Summary      Estado del inventario
// @Description  Artículos con demanda estimada, alertas y aviso vigente en una sola respuesta.
// @Tags         inventory
// @Produce      json
// @Param        today  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.InventorySnapshotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetSnapshot(c *fiber.Ctx) error {
	today, err := h.uc.ParseToday(c.Query("today"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetSnapshot(c.Context(), today)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar artículos
// @Tags         inventory
// @Produce      json
// @Param        limit   query  int  false  "Máximo de artículos (default 20, max 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.ListItems(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar artículo
// @Description  Valida el formulario (campos de texto), asigna ID y nivel de reorden, y devuelve las alertas recalculadas.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "name, quantity, expiry (opcional), sales separados por coma"
// @Success      201   {object}  dto.AddItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetForecast godoc
// @Summary      Demanda estimada de un artículo
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ForecastResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/forecast [get]
func (h *InventoryHandler) GetForecast(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	out, err := h.uc.GetForecast(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetAlerts godoc
// @Summary      Alertas de merma y sobrestock
// @Description  Artículos vencidos (vencimiento anterior a today) o con cantidad mayor al doble del nivel de reorden.
// @Tags         inventory
// @Produce      json
// @Param        today  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.AlertListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) GetAlerts(c *fiber.Ctx) error {
	today, err := h.uc.ParseToday(c.Query("today"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetAlerts(c.Context(), today)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetNotification godoc
// @Summary      Aviso vigente
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.NotificationResponse
// @Success      204  "sin aviso vigente"
// @Router       /api/inventory/notification [get]
func (h *InventoryHandler) GetNotification(c *fiber.Ctx) error {
	n := h.uc.CurrentNotification()
	if n == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(n)
}

// DownloadReport godoc
// @Summary      Reporte PDF del inventario
// @Tags         inventory
// @Produce      application/pdf
// @Param        today  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) DownloadReport(c *fiber.Ctx) error {
	today, err := h.uc.ParseToday(c.Query("today"))
	if err != nil {
		return writeError(c, err)
	}
	pdfBytes, filename, err := h.uc.DownloadReportPDF(c.Context(), today)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FIELD", Message: validationMessage(err)})
	case errors.Is(err, domain.ErrInvalidNumber):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_NUMBER", Message: validationMessage(err)})
	case errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: validationMessage(err)})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "el artículo no tiene historial de ventas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func validationMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return err.Error()
}
