package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMetrics_ExportaContadoresEHistograma(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReportMetrics(reg)

	m.ObserveDuration("mes", 250*time.Millisecond)
	m.IncResult(ResultOK)
	m.IncResult(ResultOK)
	m.IncResult(ResultValidation)
	m.AddRows(7)
	m.AddRows(-3)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	assert.Equal(t, 2.0, counterValue(t, mfs, "reportes_generados_total", "resultado", ResultOK))
	assert.Equal(t, 1.0, counterValue(t, mfs, "reportes_generados_total", "resultado", ResultValidation))
	assert.Equal(t, 7.0, counterValue(t, mfs, "reportes_filas_total", "", ""))

	h := findFamily(mfs, "reportes_duracion_segundos")
	require.NotNil(t, h)
	require.Len(t, h.GetMetric(), 1)
	assert.Equal(t, uint64(1), h.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.25, h.GetMetric()[0].GetHistogram().GetSampleSum(), 1e-9)
}

func TestReportMetrics_NilNoFalla(t *testing.T) {
	var m *ReportMetrics
	assert.NotPanics(t, func() {
		m.ObserveDuration("dia", time.Second)
		m.IncResult(ResultError)
		m.AddRows(1)
	})

	inert := NewReportMetrics(nil)
	assert.NotPanics(t, func() { inert.IncResult(ResultEmpty) })
}

func findFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) float64 {
	t.Helper()
	mf := findFamily(mfs, name)
	require.NotNil(t, mf, "métrica %q no encontrada", name)
	for _, metric := range mf.GetMetric() {
		if label == "" {
			return metric.GetCounter().GetValue()
		}
		for _, lp := range metric.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return metric.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("serie %s{%s=%q} no encontrada", name, label, value)
	return 0
}
