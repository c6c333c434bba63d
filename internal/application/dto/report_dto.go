package dto

import (
	"strings"

	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
)

// ReportRequest cuerpo de POST /api/reportes y parámetros de las exportaciones.
type ReportRequest struct {
	From    string   `json:"desde" query:"desde" validate:"required,datetime=2006-01-02"`
	To      string   `json:"hasta" query:"hasta" validate:"required,datetime=2006-01-02"`
	GroupBy string   `json:"agrupar" query:"agrupar" validate:"omitempty,max=16"` // Dia|Semana|Mes|Anio
	KPIs    *KPIsDTO `json:"kpis,omitempty" query:"-"`
	Zones   []string `json:"zonas,omitempty" query:"zonas" validate:"omitempty,max=50,dive,max=64"`
	Aisles  []string `json:"pasillos,omitempty" query:"pasillos" validate:"omitempty,max=200,dive,max=64"`
}

// KPIsDTO métricas solicitadas; un campo ausente vale true.
type KPIsDTO struct {
	Amount   *bool `json:"importe,omitempty"`
	Quantity *bool `json:"piezas,omitempty"`
	Count    *bool `json:"devoluciones,omitempty"`
}

// ParseKPIList interpreta una lista separada por comas ("importe,piezas").
// Vacía, o sin ningún nombre reconocido, deja todas las métricas activas;
// nombres desconocidos se ignoran.
func ParseKPIList(s string) *KPIsDTO {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var amount, quantity, count, known bool
	for _, k := range strings.Split(s, ",") {
		switch reports.Metric(strings.ToLower(strings.TrimSpace(k))) {
		case reports.MetricAmount:
			amount, known = true, true
		case reports.MetricQuantity:
			quantity, known = true, true
		case reports.MetricCount:
			count, known = true, true
		}
	}
	if !known {
		return nil
	}
	return &KPIsDTO{Amount: &amount, Quantity: &quantity, Count: &count}
}

// KPIConfig resuelve los valores por defecto de la solicitud.
func (r ReportRequest) KPIConfig() reports.KPIConfig {
	k := reports.AllKPIs()
	if r.KPIs == nil {
		return k
	}
	if r.KPIs.Amount != nil {
		k.Amount = *r.KPIs.Amount
	}
	if r.KPIs.Quantity != nil {
		k.Quantity = *r.KPIs.Quantity
	}
	if r.KPIs.Count != nil {
		k.Count = *r.KPIs.Count
	}
	return k
}

// ReportResponse reporte completo. Con Error no vacío los KPIs van en cero y
// el resto de bloques vacíos.
type ReportResponse struct {
	KPIs     reports.KPIConfig         `json:"kpis"`
	Summary  SummaryDTO                `json:"resumen"`
	General  SeriesDTO                 `json:"general"`
	ByZone   map[string]GroupDTO       `json:"por_zona"`
	ByAisle  map[string]GroupDTO       `json:"por_pasillo"`
	ByPerson map[string]PersonGroupDTO `json:"por_persona"`
	Table    []TableRowDTO             `json:"tabla"`
	Error    string                    `json:"error,omitempty"`
}

// SummaryDTO totales del reporte o de un grupo.
type SummaryDTO struct {
	AmountTotal   reports.Value `json:"importe_total"`
	QuantityTotal reports.Value `json:"piezas_total"`
	CountTotal    reports.Value `json:"devoluciones_total"`
}

// SeriesDTO serie calendarizada lista para graficar.
type SeriesDTO struct {
	Period  string                             `json:"periodo"` // dia|semana|mes|anio
	Labels  []string                           `json:"labels"`
	Display []string                           `json:"etiquetas"`
	Series  map[reports.Metric][]reports.Value `json:"series"`
}

// GroupDTO resumen y serie de una zona o pasillo.
type GroupDTO struct {
	Summary SummaryDTO `json:"resumen"`
	Series  SeriesDTO  `json:"serie"`
}

// PersonGroupDTO resumen, serie y detalle de una persona.
type PersonGroupDTO struct {
	Summary SummaryDTO    `json:"resumen"`
	Series  SeriesDTO     `json:"serie"`
	Table   []TableRowDTO `json:"tabla"`
}

// TableRowDTO fila del detalle por fecha, zona y pasillo.
type TableRowDTO struct {
	Date     string        `json:"fecha"`
	Zone     string        `json:"zona"`
	Aisle    string        `json:"pasillo"`
	Person   string        `json:"persona"`
	Count    int           `json:"devoluciones"`
	Quantity int           `json:"piezas"`
	Amount   reports.Value `json:"importe"`
}

// NewEmptyReport reporte canónico sin datos.
func NewEmptyReport(kpis reports.KPIConfig, period reports.Granularity) *ReportResponse {
	return &ReportResponse{
		KPIs:     kpis,
		General:  NewSeriesDTO(reports.EmptySeries(period)),
		ByZone:   map[string]GroupDTO{},
		ByAisle:  map[string]GroupDTO{},
		ByPerson: map[string]PersonGroupDTO{},
		Table:    []TableRowDTO{},
	}
}

// NewErrorReport reporte vacío que transporta un error de validación.
func NewErrorReport(kpis reports.KPIConfig, period reports.Granularity, msg string) *ReportResponse {
	r := NewEmptyReport(kpis, period)
	r.Error = msg
	return r
}

// NewSummaryDTO convierte totales de dominio.
func NewSummaryDTO(t reports.Totals) SummaryDTO {
	return SummaryDTO{
		AmountTotal:   t.Get(reports.MetricAmount),
		QuantityTotal: t.Get(reports.MetricQuantity),
		CountTotal:    t.Get(reports.MetricCount),
	}
}

// NewSeriesDTO convierte una serie de dominio.
func NewSeriesDTO(s reports.Series) SeriesDTO {
	return SeriesDTO{
		Period:  string(s.Period),
		Labels:  s.Labels,
		Display: s.Display,
		Series:  s.Values,
	}
}

// NewTableDTO convierte filas de detalle.
func NewTableDTO(rows []reports.TableRow) []TableRowDTO {
	out := make([]TableRowDTO, len(rows))
	for i, r := range rows {
		out[i] = TableRowDTO{
			Date:     r.Date.Format(reports.DateLayout),
			Zone:     r.Zone,
			Aisle:    r.Aisle,
			Person:   r.Person,
			Count:    r.Totals.Count,
			Quantity: r.Totals.Quantity,
			Amount:   reports.Money(r.Totals.Amount),
		}
	}
	return out
}
