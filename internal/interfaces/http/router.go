package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/application/dto"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	Metrics     http.Handler // opcional; sin él no se expone /metrics
	Log         zerolog.Logger
}

// Router registra las rutas del dashboard. No hay autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC, deps.Log)
	app.Get("/", dashboardHandler.Page)

	// ── Dashboard API ─────────────────────────────────────────────────────────
	dashboard := app.Group("/api/dashboard")
	dashboard.Get("/kpis", dashboardHandler.GetKPIs)
	dashboard.Get("/charts", dashboardHandler.GetCharts)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/report.pdf", dashboardHandler.ReportPDF)
	dashboard.Get("/export.xlsx", dashboardHandler.ExportXLSX)
}
