// Package metrics expone métricas Prometheus de la generación de reportes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados posibles de una solicitud de reporte.
const (
	ResultOK         = "ok"
	ResultEmpty      = "vacio"
	ResultValidation = "validacion"
	ResultError      = "error"
)

// ReportMetrics métricas del generador de reportes. Un receptor nil no registra nada.
type ReportMetrics struct {
	duration  *prometheus.HistogramVec
	generated *prometheus.CounterVec
	rows      prometheus.Counter
}

// NewReportMetrics registra las métricas en reg. Con reg nil devuelve métricas inertes.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reportes_duracion_segundos",
		Help:    "Duración de la generación de reportes en segundos.",
		Buckets: prometheus.DefBuckets,
	}, []string{"agrupacion"})
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reportes_generados_total",
		Help: "Reportes generados por resultado.",
	}, []string{"resultado"})
	rows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reportes_filas_total",
		Help: "Líneas de devolución procesadas.",
	})
	reg.MustRegister(duration, generated, rows)
	return &ReportMetrics{duration: duration, generated: generated, rows: rows}
}

// ObserveDuration registra la duración de un reporte con la granularidad dada.
func (m *ReportMetrics) ObserveDuration(grouping string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(grouping)).Observe(d.Seconds())
}

// IncResult incrementa el contador del resultado.
func (m *ReportMetrics) IncResult(result string) {
	if m == nil || m.generated == nil {
		return
	}
	m.generated.WithLabelValues(normalizeLabel(result)).Inc()
}

// AddRows suma líneas procesadas.
func (m *ReportMetrics) AddRows(n int) {
	if m == nil || m.rows == nil || n <= 0 {
		return
	}
	m.rows.Add(float64(n))
}

func normalizeLabel(s string) string {
	if s == "" {
		return "desconocido"
	}
	return s
}
