package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/Devoluciones-api/internal/application/reporting"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reports        ReportGenerator
	Exporters      map[string]reporting.Exporter
	MetricsHandler nethttp.Handler // nil desactiva /metrics
	ServiceName    string
	Logger         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Reportes (solo lectura)
	reportes := api.Group("/reportes")
	reportHandler := NewReportHandler(deps.Reports, deps.Exporters, deps.Logger)
	reportes.Post("", reportHandler.Generate)
	reportes.Get("/exportar.xlsx", reportHandler.Export("xlsx"))
	reportes.Get("/exportar.pdf", reportHandler.Export("pdf"))
}
