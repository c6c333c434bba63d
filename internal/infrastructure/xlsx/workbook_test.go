package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/jhoicas/Devoluciones-api/internal/infrastructure/xlsx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetData map[string][][]any

// buildWorkbook arma un libro en memoria con las hojas indicadas.
func buildWorkbook(t *testing.T, data sheetData) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range data {
		if first {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func sampleData() sheetData {
	return sheetData{
		"Devoluciones": {
			{"ID", "Fecha", "Zona", "Total"},
			{"d1", "2025-11-02", "z1", "100"},
			{"d2", time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), "Z2", 50},
			{"d3", "2025-12-20", "Z1", "10"},
		},
		"articulos": {
			{"devolucion_id", "pasillo", "cantidad"},
			{"d1", "P1", 1},
			{"d1", "P2", "3"},
			{"d2", "P1", 2},
			{"d3", "P1", 1},
			{"huérfano", "P9", 5},
		},
		"asignaciones": {
			{"pasillo", "persona_id", "desde", "hasta"},
			{"P1", "A", "2025-11-01", "2025-11-10"},
			{"P1", "B", "2025-11-05", ""},
			{"P2", "C", "2024-01-01", "2024-12-31"},
		},
		"personal": {
			{"id", "nombre", "activo"},
			{"A", "Ana", "true"},
			{"B", "Beto", "false"},
		},
	}
}

func testFilter(t *testing.T, zones ...string) reports.Filter {
	t.Helper()
	from, _ := reports.ParseDate("2025-11-01")
	to, _ := reports.ParseDate("2025-11-30")
	f, err := reports.NewFilter(from, to, zones, nil, 0)
	require.NoError(t, err)
	return f
}

func TestWorkbook_ProrrateaDevolucionesDelRango(t *testing.T) {
	wb, err := xlsx.OpenReader(buildWorkbook(t, sampleData()))
	require.NoError(t, err)

	lines, err := wb.QueryReturnLineEvents(context.Background(), testFilter(t))
	require.NoError(t, err)
	require.Len(t, lines, 3, "d3 queda fuera del rango y el artículo huérfano se ignora")

	assert.True(t, decimal.NewFromInt(25).Equal(lines[0].Amount.(decimal.Decimal)))
	assert.True(t, decimal.NewFromInt(75).Equal(lines[1].Amount.(decimal.Decimal)))
	assert.Equal(t, 3, lines[1].Quantity)
	require.NotNil(t, lines[2].Date)
	assert.Equal(t, "2025-11-04", lines[2].Date.Format(reports.DateLayout), "fecha con número de serie de Excel")
}

func TestWorkbook_FiltraZona(t *testing.T) {
	wb, err := xlsx.OpenReader(buildWorkbook(t, sampleData()))
	require.NoError(t, err)

	lines, err := wb.QueryReturnLineEvents(context.Background(), testFilter(t, "Z1"))
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestWorkbook_AsignacionesYPersonal(t *testing.T) {
	wb, err := xlsx.OpenReader(buildWorkbook(t, sampleData()))
	require.NoError(t, err)
	f := testFilter(t)

	list, err := wb.ActiveAssignments(context.Background(), f.From, f.To)
	require.NoError(t, err)
	require.Len(t, list, 2, "la asignación de 2024 no se cruza con el rango")
	assert.True(t, list[1].ValidTo.IsZero(), "hasta vacío es asignación abierta")

	names, err := wb.PersonNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "Ana", "B": "Beto"}, names)
}

func TestWorkbook_ErrorSiFaltaHojaObligatoria(t *testing.T) {
	data := sampleData()
	delete(data, "articulos")

	_, err := xlsx.OpenReader(buildWorkbook(t, data))
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestWorkbook_ErrorSiFaltaColumna(t *testing.T) {
	data := sampleData()
	data["Devoluciones"][0] = []any{"ID", "Zona", "Total"}

	_, err := xlsx.OpenReader(buildWorkbook(t, data))
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestWorkbook_HojasOpcionales(t *testing.T) {
	data := sampleData()
	delete(data, "asignaciones")
	delete(data, "personal")

	wb, err := xlsx.OpenReader(buildWorkbook(t, data))
	require.NoError(t, err)
	names, err := wb.PersonNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
