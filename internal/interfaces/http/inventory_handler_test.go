package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-inventory/internal/application/dto"
	appinventory "github.com/jhoicas/smart-inventory/internal/application/inventory"
	"github.com/jhoicas/smart-inventory/internal/application/notification"
	invdomain "github.com/jhoicas/smart-inventory/internal/domain/inventory"
	"github.com/jhoicas/smart-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/smart-inventory/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/smart-inventory/internal/interfaces/http"
	"github.com/jhoicas/smart-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildInventoryApp arma la API completa sobre el inventario semilla con reloj fijo en 2025-01-01.
func buildInventoryApp(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	store := memory.NewStore(invdomain.SeedItems())
	notifier := notification.NewNotifier(time.Minute)
	t.Cleanup(notifier.Stop)

	uc := appinventory.NewInventoryUseCase(
		memory.NewInventoryItemRepository(store),
		memory.NewTxRunner(store),
		notifier,
		pdf.NewMarotoReportGenerator(),
		appinventory.Config{
			AppName: "smart-inventory-test",
			Now:     func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) },
		},
	)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{InventoryUC: uc, JWTSecret: jwtSecret})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSnapshot_DatosSemilla(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	var snap dto.InventorySnapshotResponse
	decode(t, resp, &snap)
	assert.Equal(t, "2025-01-01", snap.Today)
	require.Len(t, snap.Items, 3)
	require.Len(t, snap.Alerts, 1)
	assert.Equal(t, "Milk", snap.Alerts[0].Name)
	assert.Nil(t, snap.Notification)
}

func TestListItems_Paginado(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/items?limit=1&offset=2", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ItemListResponse
	decode(t, resp, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Laptop", out.Items[0].Name)
	assert.Equal(t, 3, out.Items[0].PredictedDemand)
	assert.Equal(t, 3, out.Page.Total)
}

func TestGetAlerts_ConFechaDeReferencia(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/alerts?today=2024-10-30", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.AlertListResponse
	decode(t, resp, &out)
	assert.Equal(t, 0, out.Total, "Milk vence el 2024-10-30: ese día aún no está vencida")

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/alerts?today=2024-10-31", nil, "")
	decode(t, resp, &out)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, []string{"EXPIRED"}, out.Alerts[0].Reasons)
}

func TestGetAlerts_FechaInvalida_Retorna400(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/alerts?today=31-10-2024", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "INVALID_DATE", e.Code)
}

func TestGetForecast(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/items/2/forecast", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ForecastResponse
	decode(t, resp, &out)
	assert.Equal(t, int64(2), out.ItemID)
	assert.Equal(t, 12, out.PredictedDemand)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/items/99/forecast", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/items/abc/forecast", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetNotification_SinAviso_Retorna204(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/notification", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDownloadReport_DevuelvePDF(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/report.pdf", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_2025-01-01.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_Crea201YPublicaAviso(t *testing.T) {
	app := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/items",
		dto.AddItemRequest{Name: "Bread", Quantity: "15", Expiry: "", Sales: "1,2,3"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.AddItemResponse
	decode(t, resp, &out)
	assert.Equal(t, int64(4), out.Item.ID)
	assert.Equal(t, "N/A", out.Item.Expiry)
	assert.Equal(t, 10, out.Item.ReorderLevel)
	assert.Equal(t, []int{1, 2, 3}, out.Item.Sales)
	assert.Equal(t, `Item "Bread" added to inventory.`, out.Notification.Message)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/notification", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var n dto.NotificationResponse
	decode(t, resp, &n)
	assert.Equal(t, out.Notification.ID, n.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/items", nil, "")
	var list dto.ItemListResponse
	decode(t, resp, &list)
	assert.Len(t, list.Items, 4)
}

func TestAddItem_FormularioURLEncoded(t *testing.T) {
	app := buildInventoryApp(t, "")

	form := url.Values{"name": {"Yogur"}, "quantity": {"8"}, "expiry": {"2024-12-01"}, "sales": {"2, 4"}}
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.AddItemResponse
	decode(t, resp, &out)
	assert.Equal(t, "2024-12-01", out.Item.Expiry)
	assert.Equal(t, 3, out.Item.PredictedDemand)
	// Yogur vencido el 2024-12-01 → aparece en alertas junto a Milk
	require.Len(t, out.Alerts, 2)
	assert.Equal(t, "Yogur", out.Alerts[1].Name)
}

func TestAddItem_ErroresDeValidacion(t *testing.T) {
	cases := []struct {
		name string
		body dto.AddItemRequest
		code string
	}{
		{"nombre vacío", dto.AddItemRequest{Name: "", Quantity: "1", Sales: "1"}, "MISSING_FIELD"},
		{"ventas vacías", dto.AddItemRequest{Name: "A", Quantity: "1", Sales: ""}, "MISSING_FIELD"},
		{"cantidad negativa", dto.AddItemRequest{Name: "A", Quantity: "-5", Sales: "1"}, "INVALID_NUMBER"},
		{"venta inválida", dto.AddItemRequest{Name: "A", Quantity: "1", Sales: "1,dos"}, "INVALID_NUMBER"},
		{"fecha inválida", dto.AddItemRequest{Name: "A", Quantity: "1", Sales: "1", Expiry: "mañana"}, "INVALID_DATE"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app := buildInventoryApp(t, "")
			resp := doJSON(t, app, http.MethodPost, "/api/inventory/items", c.body, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var e dto.ErrorResponse
			decode(t, resp, &e)
			assert.Equal(t, c.code, e.Code)

			resp = doJSON(t, app, http.MethodGet, "/api/inventory/items", nil, "")
			var list dto.ItemListResponse
			decode(t, resp, &list)
			assert.Len(t, list.Items, 3, "un alta rechazada no crea artículos")
		})
	}
}

func TestAddItem_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildInventoryApp(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/items", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Con JWT configurado las altas exigen token con rol admin o bodeguero; las lecturas siguen públicas.
func TestAddItem_ConJWT(t *testing.T) {
	app := buildInventoryApp(t, testJWTSecret)
	body := dto.AddItemRequest{Name: "Bread", Quantity: "15", Sales: "1,2,3"}

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/items", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/items", body, tokenForRole(t, "vendedor"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/items", body, tokenForRole(t, "bodeguero"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/items", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
