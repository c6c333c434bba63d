package xlsx

import (
	"fmt"
	"io"

	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/xuri/excelize/v2"
)

// Hojas del libro exportado.
const (
	SheetSummary = "Resumen"
	SheetSeries  = "Serie"
	SheetDetail  = "Detalle"
)

// Exporter escribe un reporte terminado como libro de Excel.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ContentType tipo MIME del libro.
func (Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export escribe las hojas Resumen, Serie y Detalle.
func (Exporter) Export(w io.Writer, resp *dto.ReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	for _, s := range []string{SheetSeries, SheetDetail} {
		if _, err := f.NewSheet(s); err != nil {
			return fmt.Errorf("xlsx: hoja %s: %w", s, err)
		}
	}

	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetSummary, summaryRows(resp)},
		{SheetSeries, seriesRows(resp.General)},
		{SheetDetail, detailRows(resp.Table)},
	}
	for _, s := range sheets {
		if err := writeRows(f, s.name, s.rows, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %s fila %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

func summaryRows(resp *dto.ReportResponse) [][]any {
	return [][]any{
		{"KPI", "Valor"},
		{"Importe total", float64(resp.Summary.AmountTotal)},
		{"Piezas", float64(resp.Summary.QuantityTotal)},
		{"Devoluciones", float64(resp.Summary.CountTotal)},
	}
}

func seriesRows(s dto.SeriesDTO) [][]any {
	metrics := []reports.Metric{reports.MetricAmount, reports.MetricQuantity, reports.MetricCount}
	header := []any{"Periodo", "Etiqueta"}
	var active []reports.Metric
	for _, m := range metrics {
		if _, ok := s.Series[m]; ok {
			header = append(header, string(m))
			active = append(active, m)
		}
	}
	rows := [][]any{header}
	for i, label := range s.Labels {
		row := []any{label, label}
		if i < len(s.Display) {
			row[1] = s.Display[i]
		}
		for _, m := range active {
			row = append(row, float64(s.Series[m][i]))
		}
		rows = append(rows, row)
	}
	return rows
}

func detailRows(table []dto.TableRowDTO) [][]any {
	rows := [][]any{{"Fecha", "Zona", "Pasillo", "Persona", "Devoluciones", "Piezas", "Importe"}}
	for _, r := range table {
		rows = append(rows, []any{r.Date, r.Zone, r.Aisle, r.Person, r.Count, r.Quantity, float64(r.Amount)})
	}
	return rows
}
