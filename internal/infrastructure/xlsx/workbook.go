// Package xlsx lee devoluciones desde un libro de Excel y exporta reportes a Excel.
package xlsx

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/jhoicas/Devoluciones-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Hojas del libro de origen. Las dos primeras son obligatorias.
const (
	SheetReturns     = "devoluciones" // id, fecha, zona, total
	SheetItems       = "articulos"    // devolucion_id, pasillo, cantidad
	SheetAssignments = "asignaciones" // pasillo, persona_id, desde, hasta
	SheetStaff       = "personal"     // id, nombre, activo
)

var (
	_ repository.EventQuery      = (*Workbook)(nil)
	_ repository.AssignmentQuery = (*Workbook)(nil)
)

// Workbook fuente de datos en memoria cargada desde un libro de Excel. Permite
// generar reportes sin base de datos.
type Workbook struct {
	returns     []entity.Return
	assignments []entity.Assignment
	persons     []entity.Person
}

// Open carga el libro desde un archivo.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir libro %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}

// OpenReader carga el libro desde un flujo.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()
	return load(f)
}

func load(f *excelize.File) (*Workbook, error) {
	returns, err := readSheet(f, SheetReturns, true, "id", "fecha", "zona", "total")
	if err != nil {
		return nil, err
	}
	items, err := readSheet(f, SheetItems, true, "devolucion_id", "pasillo", "cantidad")
	if err != nil {
		return nil, err
	}
	assignments, err := readSheet(f, SheetAssignments, false, "pasillo", "persona_id", "desde", "hasta")
	if err != nil {
		return nil, err
	}
	staff, err := readSheet(f, SheetStaff, false, "id", "nombre", "activo")
	if err != nil {
		return nil, err
	}

	wb := &Workbook{}
	byID := make(map[string]int, len(returns))
	for _, row := range returns {
		id := strings.TrimSpace(row["id"])
		if id == "" {
			continue
		}
		byID[id] = len(wb.returns)
		wb.returns = append(wb.returns, entity.Return{
			ID:    id,
			Date:  parseDate(row["fecha"]),
			Zone:  row["zona"],
			Total: parseDecimal(row["total"]),
		})
	}
	for _, row := range items {
		i, ok := byID[strings.TrimSpace(row["devolucion_id"])]
		if !ok {
			continue
		}
		wb.returns[i].Items = append(wb.returns[i].Items, entity.ReturnItem{
			Aisle:    row["pasillo"],
			Quantity: int(cast.ToFloat64(strings.TrimSpace(row["cantidad"]))),
		})
	}
	for _, row := range assignments {
		wb.assignments = append(wb.assignments, entity.Assignment{
			Aisle:     row["pasillo"],
			PersonID:  strings.TrimSpace(row["persona_id"]),
			ValidFrom: parseDate(row["desde"]),
			ValidTo:   parseDate(row["hasta"]),
		})
	}
	for _, row := range staff {
		active, err := cast.ToBoolE(strings.TrimSpace(row["activo"]))
		if err != nil {
			active = true
		}
		wb.persons = append(wb.persons, entity.Person{
			ID:     strings.TrimSpace(row["id"]),
			Name:   row["nombre"],
			Active: active,
		})
	}
	return wb, nil
}

// readSheet devuelve las filas como mapas columna → texto crudo. Los encabezados
// se comparan sin distinguir mayúsculas.
func readSheet(f *excelize.File, sheet string, required bool, columns ...string) ([]map[string]string, error) {
	name := findSheet(f, sheet)
	if name == "" {
		if required {
			return nil, fmt.Errorf("%w: falta la hoja %q", domain.ErrSourceUnavailable, sheet)
		}
		return nil, nil
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w: hoja %q, columna %q", domain.ErrMissingColumn, sheet, c)
		}
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(columns))
		empty := true
		for _, c := range columns {
			if i := index[c]; i < len(row) {
				m[c] = row[i]
				if strings.TrimSpace(row[i]) != "" {
					empty = false
				}
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out, nil
}

func findSheet(f *excelize.File, want string) string {
	for _, s := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return s
		}
	}
	return ""
}

var dateLayouts = []string{reports.DateLayout, "02/01/2006", "2006-01-02 15:04:05", time.RFC3339}

// parseDate acepta fechas en texto o el número de serie de Excel. Sin fecha
// válida devuelve cero.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return reports.DateOnly(t)
		}
	}
	serial, err := cast.ToFloat64E(s)
	if err != nil || serial <= 0 {
		return time.Time{}
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}
	}
	return reports.DateOnly(t)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// QueryReturnLineEvents prorratea las devoluciones del rango y zona del filtro.
func (wb *Workbook) QueryReturnLineEvents(_ context.Context, filter reports.Filter) ([]entity.RawLineItem, error) {
	var out []entity.RawLineItem
	for _, r := range wb.returns {
		// Sin fecha la devolución se entrega igual; el normalizador la rechaza.
		if !r.Date.IsZero() && !filter.Contains(r.Date) {
			continue
		}
		if !filter.MatchZone(reports.NormalizeCode(r.Zone)) {
			continue
		}
		out = append(out, reports.Prorate(r)...)
	}
	return out, nil
}

// ActiveAssignments devuelve las asignaciones que se cruzan con [from, to].
func (wb *Workbook) ActiveAssignments(_ context.Context, from, to time.Time) ([]entity.Assignment, error) {
	var out []entity.Assignment
	for _, a := range wb.assignments {
		if a.ValidFrom.After(to) {
			continue
		}
		if !a.ValidTo.IsZero() && a.ValidTo.Before(from) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// PersonNames devuelve id → nombre de todo el personal.
func (wb *Workbook) PersonNames(context.Context) (map[string]string, error) {
	names := make(map[string]string, len(wb.persons))
	for _, p := range wb.persons {
		if p.ID != "" {
			names[p.ID] = p.Name
		}
	}
	return names, nil
}
