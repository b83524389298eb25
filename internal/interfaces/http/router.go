package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-inventory/internal/application/inventory"
	"github.com/jhoicas/smart-inventory/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.InventoryUseCase
	JWTSecret   string // vacío = altas sin autenticación (modo demo)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory")

	// Lecturas (público)
	inv.Get("/", invHandler.GetSnapshot)
	inv.Get("/items", invHandler.ListItems)
	inv.Get("/items/:id/forecast", invHandler.GetForecast)
	inv.Get("/alerts", invHandler.GetAlerts)
	inv.Get("/notification", invHandler.GetNotification)
	inv.Get("/report.pdf", invHandler.DownloadReport)

	// Altas: con JWT configurado requieren Bearer Token de admin o bodeguero
	if deps.JWTSecret != "" {
		inv.Post("/items",
			AuthMiddleware(deps.JWTSecret),
			RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero),
			invHandler.AddItem,
		)
		return
	}
	inv.Post("/items", invHandler.AddItem)
}
