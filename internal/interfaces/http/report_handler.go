package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/application/reporting"
	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/rs/zerolog"
)

// ReportGenerator genera el reporte; lo implementa reporting.ReportUseCase.
type ReportGenerator interface {
	Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error)
}

// ReportHandler maneja los endpoints de reportes de devoluciones.
type ReportHandler struct {
	uc        ReportGenerator
	exporters map[string]reporting.Exporter
	log       zerolog.Logger
}

// NewReportHandler construye el handler. exporters se indexa por extensión (xlsx, pdf).
func NewReportHandler(uc ReportGenerator, exporters map[string]reporting.Exporter, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, exporters: exporters, log: log}
}

// Generate godoc
// @Summary      Reporte de devoluciones
// @Description  KPIs globales, serie calendarizada y desgloses por zona, pasillo y persona. Los errores de validación devuelven 400 con el campo error.
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ReportRequest  true  "Rango, agrupación (Dia|Semana|Mes|Anio), KPIs y filtros"
// @Success      200   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ReportResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/reportes [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la solicitud inválido",
		})
	}
	resp, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		return h.internalError(c, err)
	}
	if resp.Error != "" {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary      Exportar reporte de devoluciones
// @Description  Mismo reporte que POST /api/reportes como archivo Excel o PDF.
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        desde     query  string  true   "Inicio (YYYY-MM-DD)"
// @Param        hasta     query  string  true   "Fin (YYYY-MM-DD)"
// @Param        agrupar   query  string  false  "Dia|Semana|Mes|Anio"
// @Param        kpis      query  string  false  "Lista separada por comas: importe,piezas,devoluciones"
// @Param        zonas     query  []string  false  "Filtro de zonas"
// @Param        pasillos  query  []string  false  "Filtro de pasillos"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/exportar.xlsx [get]
// @Router       /api/reportes/exportar.pdf [get]
func (h *ReportHandler) Export(format string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exporter, ok := h.exporters[format]
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "formato de exportación no disponible: " + format,
			})
		}

		var req dto.ReportRequest
		if err := c.QueryParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
			})
		}
		req.KPIs = dto.ParseKPIList(c.Query("kpis"))

		resp, err := h.uc.Generate(c.UserContext(), req)
		if err != nil {
			return h.internalError(c, err)
		}
		if resp.Error != "" {
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}

		var buf bytes.Buffer
		if err := exporter.Export(&buf, resp); err != nil {
			h.log.Error().Err(err).Str("formato", format).Msg("exportar reporte")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "EXPORT_ERROR", Message: "no se pudo exportar el reporte",
			})
		}

		// Attachment fija el tipo por extensión; el del exportador prevalece.
		c.Attachment(fmt.Sprintf("devoluciones_%s_%s.%s", req.From, req.To, format))
		c.Set(fiber.HeaderContentType, exporter.ContentType())
		return c.Send(buf.Bytes())
	}
}

// internalError registra el fallo y responde 500 (503 si la fuente no está
// disponible) sin exponer detalles.
func (h *ReportHandler) internalError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("request_id", RequestID(c)).Msg("generar reporte")
	if errors.Is(err, domain.ErrSourceUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "SOURCE_UNAVAILABLE", Message: domain.ErrSourceUnavailable.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "no se pudo generar el reporte",
	})
}
