package main

import (
	"context"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Devoluciones-api/internal/application/reporting"
	infrapdf "github.com/jhoicas/Devoluciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Devoluciones-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Devoluciones-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Devoluciones-api/internal/interfaces/http"
	"github.com/jhoicas/Devoluciones-api/pkg/config"
	"github.com/jhoicas/Devoluciones-api/pkg/logger"
	"github.com/jhoicas/Devoluciones-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Devoluciones-api/docs"
)

// @title        Devoluciones API
// @version      1.0
// @description  Reportes de devoluciones por zona, pasillo y persona responsable.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	returnQuery := postgres.NewReturnQuery(pool)
	staffRepo := postgres.NewStaffRepository(pool)

	opts := []reporting.Option{reporting.WithLogger(log.Zerolog())}
	var metricsHandler nethttp.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, reporting.WithMetrics(metrics.NewReportMetrics(reg)))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	reportUC := reporting.NewReportUseCase(returnQuery, staffRepo, reporting.Config{
		DefaultGrouping: cfg.Reports.DefaultGrouping,
		MaxDays:         cfg.Reports.MaxDays,
	}, opts...)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Devoluciones API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reports: reportUC,
		Exporters: map[string]reporting.Exporter{
			"xlsx": infraxlsx.NewExporter(),
			"pdf":  infrapdf.NewReportPDFGenerator("Reporte de devoluciones"),
		},
		MetricsHandler: metricsHandler,
		ServiceName:    cfg.App.Name,
		Logger:         log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
