package reports_test

import (
	"testing"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity_Alias(t *testing.T) {
	cases := map[string]reports.Granularity{
		"Dia":    reports.Day,
		"Día":    reports.Day,
		"DIA":    reports.Day,
		"semana": reports.Week,
		" Mes ":  reports.Month,
		"Anio":   reports.Year,
		"AÑO":    reports.Year,
		"año":    reports.Year,
	}
	for in, want := range cases {
		got, err := reports.ParseGranularity(in, "Mes")
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseGranularity_VaciaUsaDefecto(t *testing.T) {
	got, err := reports.ParseGranularity("", "Semana")
	require.NoError(t, err)
	assert.Equal(t, reports.Week, got)
}

func TestParseGranularity_ErrorSiInvalida(t *testing.T) {
	_, err := reports.ParseGranularity("Trimestre", "Mes")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidGrouping)
	assert.True(t, domain.IsValidationError(err))
}

func TestGranularity_InicioDePeriodo(t *testing.T) {
	tue := day(t, "2025-11-04")
	sun := day(t, "2025-11-09")

	assert.Equal(t, day(t, "2025-11-03"), reports.Week.Start(tue), "la semana empieza el lunes")
	assert.Equal(t, day(t, "2025-11-03"), reports.Week.Start(sun), "el domingo cierra la semana del lunes anterior")
	assert.Equal(t, day(t, "2025-11-09"), reports.Week.End(tue))
	assert.Equal(t, day(t, "2025-11-01"), reports.Month.Start(tue))
	assert.Equal(t, day(t, "2025-01-01"), reports.Year.Start(tue))
	assert.Equal(t, tue, reports.Day.Start(tue))
}

func TestGranularity_Etiquetas(t *testing.T) {
	monday := day(t, "2025-11-03")

	assert.Equal(t, "2025-11-03", reports.Day.Label(monday))
	assert.Equal(t, "2025-11-03", reports.Week.Label(monday))
	assert.Equal(t, "Semana del 2025-11-03", reports.Week.DisplayLabel(monday))
	assert.Equal(t, "2025-11", reports.Month.Label(day(t, "2025-11-01")))
	assert.Equal(t, "Noviembre 2025", reports.Month.DisplayLabel(day(t, "2025-11-01")))
	assert.Equal(t, "2025", reports.Year.Label(day(t, "2025-01-01")))
	assert.Equal(t, "2025", reports.Year.DisplayLabel(day(t, "2025-01-01")))
}
