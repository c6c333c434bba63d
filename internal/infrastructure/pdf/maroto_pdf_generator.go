// Package pdf genera la versión imprimible del reporte de devoluciones.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas  │  Agrupación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Importe total | Piezas | Devoluciones                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERIE: Periodo | métricas activas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Fecha | Zona | Pasillo | Persona | Dev | Pzs | $   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"io"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var periodNames = map[string]string{
	string(reports.Day):   "Día",
	string(reports.Week):  "Semana",
	string(reports.Month): "Mes",
	string(reports.Year):  "Año",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator escribe un reporte terminado como PDF usando Maroto v2.
type ReportPDFGenerator struct {
	title string
}

// NewReportPDFGenerator construye el generador. title vacío usa "Reporte de devoluciones".
func NewReportPDFGenerator(title string) *ReportPDFGenerator {
	if title == "" {
		title = "Reporte de devoluciones"
	}
	return &ReportPDFGenerator{title: title}
}

// ContentType tipo MIME del documento.
func (g *ReportPDFGenerator) ContentType() string { return "application/pdf" }

// Export genera el PDF y lo escribe en w.
func (g *ReportPDFGenerator) Export(w io.Writer, resp *dto.ReportResponse) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, resp.General))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(resp.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Serie general"))
	m.AddRows(seriesRows(resp.General)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("Detalle por fecha, zona y pasillo"))
	m.AddRows(detailRows(resp.Table)...)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	if _, err := w.Write(doc.GetBytes()); err != nil {
		return fmt.Errorf("pdf: escribir: %w", err)
	}
	return nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y rango (izq), agrupación (der).
func headerRow(title string, s dto.SeriesDTO) core.Row {
	rango := "Sin datos en el periodo"
	if n := len(s.Display); n > 0 {
		rango = s.Display[0] + " a " + s.Display[n-1]
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(rango, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Agrupación", props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 1}),
			text.New(nonEmpty(periodNames[s.Period], s.Period), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
		),
	)
}

// kpiRow: tres tarjetas con los totales.
func kpiRow(sum dto.SummaryDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		card("Importe total", formatMoney(sum.AmountTotal)),
		card("Piezas", formatInt(sum.QuantityTotal)),
		card("Devoluciones", formatInt(sum.CountTotal)),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// seriesRows: una fila por periodo con las métricas activas.
func seriesRows(s dto.SeriesDTO) []core.Row {
	var metrics []reports.Metric
	for _, m := range []reports.Metric{reports.MetricAmount, reports.MetricQuantity, reports.MetricCount} {
		if _, ok := s.Series[m]; ok {
			metrics = append(metrics, m)
		}
	}
	if len(s.Labels) == 0 || len(metrics) == 0 {
		return []core.Row{emptyRow()}
	}

	size := 8 / len(metrics)
	header := []core.Col{headCell("Periodo", 4, align.Left)}
	for _, m := range metrics {
		header = append(header, headCell(strings.ToUpper(string(m[:1]))+string(m[1:]), size, align.Right))
	}
	rows := []core.Row{row.New(7).Add(header...)}

	for i := range s.Labels {
		cols := []core.Col{cell(s.Display[i], 4, align.Left)}
		for _, m := range metrics {
			v := s.Series[m][i]
			value := formatInt(v)
			if m == reports.MetricAmount {
				value = formatMoney(v)
			}
			cols = append(cols, cell(value, size, align.Right))
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

// detailRows: tabla de detalle.
func detailRows(table []dto.TableRowDTO) []core.Row {
	if len(table) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := []core.Row{row.New(7).Add(
		headCell("Fecha", 2, align.Left),
		headCell("Zona", 1, align.Left),
		headCell("Pasillo", 2, align.Left),
		headCell("Persona", 3, align.Left),
		headCell("Dev.", 1, align.Right),
		headCell("Pzs.", 1, align.Right),
		headCell("Importe", 2, align.Right),
	)}
	for _, r := range table {
		rows = append(rows, row.New(6).Add(
			cell(r.Date, 2, align.Left),
			cell(r.Zone, 1, align.Left),
			cell(r.Aisle, 2, align.Left),
			cell(r.Person, 3, align.Left),
			cell(fmt.Sprint(r.Count), 1, align.Right),
			cell(fmt.Sprint(r.Quantity), 1, align.Right),
			cell(formatMoney(r.Amount), 2, align.Right),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func headCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func emptyRow() core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("Sin datos", props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatInt(v reports.Value) string {
	return groupThousands(decimal.NewFromFloat(float64(v)).StringFixed(0))
}

// formatMoney formato local: "$1.234.567,89".
func formatMoney(v reports.Value) string {
	s := decimal.NewFromFloat(float64(v)).StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	return sign + "$" + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un entero sin signo.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
