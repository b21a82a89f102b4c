// Command dashboard sirve el dashboard de ventas sobre sales_data.
//
// @title        Ventas BI API
// @version      1.0
// @description  Dashboard de ventas sobre sales_data: KPIs, figuras y reportes PDF/XLSX.
// @host         127.0.0.1:8050
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/ventas-bi/docs"
	appanalytics "github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/ventas-bi/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-bi/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/ventas-bi/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/ventas-bi/internal/interfaces/http"
	"github.com/jhoicas/ventas-bi/pkg/config"
	"github.com/jhoicas/ventas-bi/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando dashboard")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	m := metrics.New(true)
	salesRepo := postgres.NewSalesRepository(pool)
	dashboardUC := appanalytics.NewDashboardUseCase(salesRepo, log.Component("dashboard"), m)
	reportUC := appanalytics.NewReportUseCase(
		dashboardUC,
		infrapdf.NewMarotoReportGenerator(),
		infraxlsx.NewExcelizeExporter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el JSON generado por swag)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Ventas BI API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Metrics:     m.Handler(),
		Log:         log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("dashboard disponible")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("dashboard detenido")
}
