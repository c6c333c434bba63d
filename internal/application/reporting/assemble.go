package reporting

import (
	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
)

// assemble arma la respuesta a partir de eventos ya normalizados. Todas las
// series usan el mismo eje de periodos.
func assemble(
	events []entity.ReturnLineEvent,
	kpis reports.KPIConfig,
	period reports.Granularity,
	filter reports.Filter,
) *dto.ReportResponse {
	calendarize := func(raw reports.DateSeries) dto.SeriesDTO {
		return dto.NewSeriesDTO(reports.Calendarize(raw, period, filter.From, filter.To, kpis))
	}

	resp := &dto.ReportResponse{
		KPIs:     kpis,
		Summary:  dto.NewSummaryDTO(reports.Summarize(events, kpis)),
		General:  calendarize(reports.RawSeries(events)),
		ByZone:   make(map[string]dto.GroupDTO),
		ByAisle:  make(map[string]dto.GroupDTO),
		ByPerson: make(map[string]dto.PersonGroupDTO),
		Table:    dto.NewTableDTO(reports.BuildTable(events)),
	}

	for key, g := range reports.Aggregate(events, kpis, reports.ByZone) {
		resp.ByZone[key] = dto.GroupDTO{Summary: dto.NewSummaryDTO(g.Summary), Series: calendarize(g.Series)}
	}
	for key, g := range reports.Aggregate(events, kpis, reports.ByAisle) {
		resp.ByAisle[key] = dto.GroupDTO{Summary: dto.NewSummaryDTO(g.Summary), Series: calendarize(g.Series)}
	}
	for key, g := range reports.Aggregate(events, kpis, reports.ByPerson) {
		resp.ByPerson[key] = dto.PersonGroupDTO{
			Summary: dto.NewSummaryDTO(g.Summary),
			Series:  calendarize(g.Series),
			Table:   dto.NewTableDTO(reports.BuildTable(g.Events)),
		}
	}
	return resp
}
