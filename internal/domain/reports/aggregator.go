package reports

import (
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Metric nombre de un KPI en el reporte.
type Metric string

const (
	MetricAmount   Metric = "importe"
	MetricQuantity Metric = "piezas"
	MetricCount    Metric = "devoluciones"
)

// KPIConfig indica qué métricas se calculan.
type KPIConfig struct {
	Amount   bool `json:"importe"`
	Quantity bool `json:"piezas"`
	Count    bool `json:"devoluciones"`
}

// AllKPIs configuración por defecto: todas las métricas activas.
func AllKPIs() KPIConfig {
	return KPIConfig{Amount: true, Quantity: true, Count: true}
}

// Metrics devuelve las métricas activas en orden fijo.
func (k KPIConfig) Metrics() []Metric {
	out := make([]Metric, 0, 3)
	if k.Amount {
		out = append(out, MetricAmount)
	}
	if k.Quantity {
		out = append(out, MetricQuantity)
	}
	if k.Count {
		out = append(out, MetricCount)
	}
	return out
}

// Totals sumas de las tres métricas.
type Totals struct {
	Amount   decimal.Decimal
	Quantity int
	Count    int
}

func (t *Totals) add(e entity.ReturnLineEvent) {
	t.Amount = t.Amount.Add(e.Amount)
	t.Quantity += e.Quantity
	t.Count += e.Count
}

func (t *Totals) merge(o Totals) {
	t.Amount = t.Amount.Add(o.Amount)
	t.Quantity += o.Quantity
	t.Count += o.Count
}

// Masked pone en cero las métricas desactivadas.
func (t Totals) Masked(k KPIConfig) Totals {
	if !k.Amount {
		t.Amount = decimal.Zero
	}
	if !k.Quantity {
		t.Quantity = 0
	}
	if !k.Count {
		t.Count = 0
	}
	return t
}

// Get devuelve el valor de salida de una métrica.
func (t Totals) Get(m Metric) Value {
	switch m {
	case MetricAmount:
		return Money(t.Amount)
	case MetricQuantity:
		return Value(t.Quantity)
	default:
		return Value(t.Count)
	}
}

// DateSeries serie cruda: sumas por fecha exacta, antes de calendarizar.
type DateSeries map[time.Time]Totals

// Dimension eje de agrupación del reporte.
type Dimension int

const (
	ByZone Dimension = iota
	ByAisle
	ByPerson
)

// Key devuelve la clave del evento en la dimensión.
func (d Dimension) Key(e entity.ReturnLineEvent) string {
	switch d {
	case ByZone:
		return e.Zone
	case ByAisle:
		return e.Aisle
	default:
		return e.Person
	}
}

// Group resultado de una clave de dimensión.
type Group struct {
	Summary Totals
	Series  DateSeries
	Events  []entity.ReturnLineEvent
}

// Summarize suma todos los eventos; las métricas desactivadas quedan en cero.
func Summarize(events []entity.ReturnLineEvent, kpis KPIConfig) Totals {
	var t Totals
	for _, e := range events {
		t.add(e)
	}
	return t.Masked(kpis)
}

// RawSeries agrupa los eventos por fecha exacta.
func RawSeries(events []entity.ReturnLineEvent) DateSeries {
	s := make(DateSeries)
	for _, e := range events {
		t := s[e.Date]
		t.add(e)
		s[e.Date] = t
	}
	return s
}

// Aggregate agrupa por la dimensión. Las claves reservadas (MissingKey,
// Unassigned) se agrupan como cualquier otra.
func Aggregate(events []entity.ReturnLineEvent, kpis KPIConfig, dim Dimension) map[string]*Group {
	groups := make(map[string]*Group)
	for _, e := range events {
		key := dim.Key(e)
		g, ok := groups[key]
		if !ok {
			g = &Group{Series: make(DateSeries)}
			groups[key] = g
		}
		g.Summary.add(e)
		t := g.Series[e.Date]
		t.add(e)
		g.Series[e.Date] = t
		g.Events = append(g.Events, e)
	}
	for _, g := range groups {
		g.Summary = g.Summary.Masked(kpis)
	}
	return groups
}
