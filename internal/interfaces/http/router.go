package http

import (
	"github.com/gofiber/fiber/v2"

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	"github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/application/notify"
	"github.com/Allvasc/orcamento/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store  *appbudget.Store
	Export *export.UseCase
	Notify *notify.Center
	Log    *logger.Logger
}

// Router registra las rutas de la API. Todas las rutas comparten el
// middleware de sesión: un presupuesto por sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware())

	budgetHandler := NewBudgetHandler(deps.Store)
	presupuesto := api.Group("/presupuesto")
	presupuesto.Get("/", budgetHandler.Get)
	presupuesto.Post("/items", budgetHandler.AddItem)
	presupuesto.Delete("/items/:id", budgetHandler.RemoveItem)

	exportHandler := NewExportHandler(deps.Store, deps.Export, deps.Notify, deps.Log)
	presupuesto.Get("/export/:format", exportHandler.Export)

	notificationHandler := NewNotificationHandler(deps.Notify)
	api.Get("/notifications", notificationHandler.Get)
}
