package reports_test

import (
	"testing"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents(t *testing.T) []entity.ReturnLineEvent {
	return []entity.ReturnLineEvent{
		event(t, "2025-11-02", "Z1", "P1", "Ana", 1, "25"),
		event(t, "2025-11-02", "Z1", "P2", "Luis", 3, "75"),
		event(t, "2025-11-04", "Z2", "P1", "Ana", 2, "50"),
	}
}

func TestCalendarize_DiaRellenaHuecos(t *testing.T) {
	raw := reports.RawSeries(sampleEvents(t))

	s := reports.Calendarize(raw, reports.Day, day(t, "2025-11-01"), day(t, "2025-11-05"), reports.AllKPIs())

	assert.Equal(t, []string{"2025-11-01", "2025-11-02", "2025-11-03", "2025-11-04", "2025-11-05"}, s.Labels)
	assert.Equal(t, s.Labels, s.Display)
	assert.Equal(t, []reports.Value{0, 100, 0, 50, 0}, s.Values[reports.MetricAmount])
	assert.Equal(t, []reports.Value{0, 4, 0, 2, 0}, s.Values[reports.MetricQuantity])
	assert.Equal(t, []reports.Value{0, 2, 0, 1, 0}, s.Values[reports.MetricCount])
}

func TestCalendarize_SemanaExtiendeALunesYDomingo(t *testing.T) {
	raw := reports.RawSeries([]entity.ReturnLineEvent{
		event(t, "2025-11-04", "Z1", "P1", "Ana", 1, "10"),
	})

	s := reports.Calendarize(raw, reports.Week, day(t, "2025-11-04"), day(t, "2025-11-04"), reports.AllKPIs())

	require.Len(t, s.Labels, 1, "un solo día produce exactamente una semana")
	assert.Equal(t, "2025-11-03", s.Labels[0])
	assert.Equal(t, "Semana del 2025-11-03", s.Display[0])
	assert.Equal(t, []reports.Value{10}, s.Values[reports.MetricAmount])
}

func TestCalendarize_SemanaAgrupaLunesADomingo(t *testing.T) {
	raw := reports.RawSeries([]entity.ReturnLineEvent{
		event(t, "2025-11-03", "Z1", "P1", "Ana", 1, "1"),
		event(t, "2025-11-09", "Z1", "P1", "Ana", 1, "2"),
		event(t, "2025-11-10", "Z1", "P1", "Ana", 1, "4"),
	})

	s := reports.Calendarize(raw, reports.Week, day(t, "2025-11-05"), day(t, "2025-11-12"), reports.AllKPIs())

	assert.Equal(t, []string{"2025-11-03", "2025-11-10"}, s.Labels)
	assert.Equal(t, []reports.Value{3, 4}, s.Values[reports.MetricAmount])
}

func TestCalendarize_MesYAnio(t *testing.T) {
	raw := reports.RawSeries([]entity.ReturnLineEvent{
		event(t, "2025-01-20", "Z1", "P1", "Ana", 1, "10.10"),
		event(t, "2025-01-31", "Z1", "P1", "Ana", 2, "0.20"),
		event(t, "2025-03-01", "Z1", "P1", "Ana", 3, "5"),
	})

	m := reports.Calendarize(raw, reports.Month, day(t, "2025-01-15"), day(t, "2025-03-02"), reports.AllKPIs())
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, m.Labels)
	assert.Equal(t, []string{"Enero 2025", "Febrero 2025", "Marzo 2025"}, m.Display)
	assert.Equal(t, []reports.Value{10.3, 0, 5}, m.Values[reports.MetricAmount])
	assert.Equal(t, []reports.Value{3, 0, 3}, m.Values[reports.MetricQuantity])

	y := reports.Calendarize(raw, reports.Year, day(t, "2024-12-01"), day(t, "2025-03-02"), reports.AllKPIs())
	assert.Equal(t, []string{"2024", "2025"}, y.Labels)
	assert.Equal(t, []reports.Value{0, 15.3}, y.Values[reports.MetricAmount])
}

func TestCalendarize_SoloMetricasActivas(t *testing.T) {
	raw := reports.RawSeries(sampleEvents(t))

	s := reports.Calendarize(raw, reports.Day, day(t, "2025-11-01"), day(t, "2025-11-05"),
		reports.KPIConfig{Quantity: true})

	assert.Len(t, s.Values, 1)
	assert.Contains(t, s.Values, reports.MetricQuantity)
}

func TestCalendarize_EtiquetasContiguasYAlineadas(t *testing.T) {
	raw := reports.RawSeries(sampleEvents(t))
	ranges := [][2]string{
		{"2025-11-01", "2025-11-05"},
		{"2024-02-27", "2024-03-02"},
		{"2023-12-25", "2025-01-07"},
		{"2025-11-04", "2025-11-04"},
	}
	grans := []reports.Granularity{reports.Day, reports.Week, reports.Month, reports.Year}

	for _, r := range ranges {
		for _, g := range grans {
			from, to := day(t, r[0]), day(t, r[1])
			s := reports.Calendarize(raw, g, from, to, reports.AllKPIs())
			periods := reports.Periods(g, from, to)

			require.NotEmpty(t, s.Labels)
			require.Len(t, periods, len(s.Labels))
			for _, vals := range s.Values {
				assert.Len(t, vals, len(s.Labels), "%s %v: cada métrica alineada con las etiquetas", g, r)
			}
			assert.False(t, periods[0].After(from), "%s %v: el primer periodo cubre desde", g, r)
			assert.False(t, g.End(periods[len(periods)-1]).Before(to), "%s %v: el último periodo cubre hasta", g, r)
			for i := 1; i < len(periods); i++ {
				assert.Equal(t, g.Next(periods[i-1]), periods[i], "%s %v: periodos contiguos", g, r)
				assert.Less(t, s.Labels[i-1], s.Labels[i], "%s %v: etiquetas crecientes", g, r)
			}
		}
	}
}

func TestEmptySeries_SinPeriodos(t *testing.T) {
	s := reports.EmptySeries(reports.Month)
	assert.NotNil(t, s.Labels)
	assert.Empty(t, s.Labels)
	assert.Empty(t, s.Values)
}
