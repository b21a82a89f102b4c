package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/ventas-bi/internal/application/analytics"
	"github.com/jhoicas/ventas-bi/internal/application/dto"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// PageTitle encabezado de la página y del reporte.
const PageTitle = "ETL SQL BI Analytics Dashboard"

// Content-Type de las descargas.
const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DashboardHandler maneja la página y los endpoints del dashboard de ventas.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports *appanalytics.ReportUseCase
	log     zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports *appanalytics.ReportUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports, log: log}
}

type pageData struct {
	Title string
	KPIs  dto.KPIsDTO
}

// Page sirve la página del dashboard con las tarjetas de KPIs ya calculadas.
// Las figuras las pide el navegador a /api/dashboard/charts al cargar y al pulsar "Actualizar".
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	var buf bytes.Buffer
	data := pageData{Title: PageTitle, KPIs: h.uc.GetKPIs(c.UserContext())}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.log.Error().Err(err).Msg("error renderizando la página del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo renderizar la página",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// GetKPIs godoc
// @Summary      Indicadores de ventas
// @Description  Total, promedio y máximo de amount (formato "$30.00") y número de registros.
// @Description  Los indicadores son cadenas (no números) en todos los casos; sin datos o si la consulta
// @Description  falla vienen como "0" y count es 0.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.KPIsDTO
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetKPIs(c.UserContext()))
}

// GetCharts godoc
// @Summary      Figuras del dashboard
// @Description  Barras de ventas por región e histograma de 20 intervalos de amount, en formato plotly.js.
// @Description  Sin datos ambas figuras vienen vacías.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ChartsDTO
// @Router       /api/dashboard/charts [get]
func (h *DashboardHandler) GetCharts(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetCharts(c.UserContext()))
}

// GetSummary godoc
// @Summary      KPIs y figuras en una sola consulta
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.UserContext()))
}

// ReportPDF godoc
// @Summary      Reporte PDF del dashboard
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) ReportPDF(c *fiber.Ctx) error {
	doc, err := h.reports.PDF(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "error generando el reporte PDF")
	}
	return sendAttachment(c, contentTypePDF, "dashboard.pdf", doc)
}

// ExportXLSX godoc
// @Summary      Exportar el dashboard a Excel
// @Description  Hojas KPIs, Regiones (con gráfico de columnas) y Distribucion.
// @Tags         dashboard
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export.xlsx [get]
func (h *DashboardHandler) ExportXLSX(c *fiber.Ctx) error {
	doc, err := h.reports.XLSX(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "error exportando XLSX")
	}
	return sendAttachment(c, contentTypeXLSX, "dashboard.xlsx", doc)
}

func (h *DashboardHandler) internalError(c *fiber.Ctx, err error, msg string) error {
	h.log.Error().Err(err).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}
