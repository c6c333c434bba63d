package reports

import (
	"time"
)

// Series serie calendarizada: un valor por etiqueta para cada métrica activa,
// sin huecos ni duplicados.
type Series struct {
	Period  Granularity
	Labels  []string
	Display []string
	Values  map[Metric][]Value
}

// Periods devuelve los inicios de periodo que cubren [from, to]. Las semanas
// se extienden al lunes anterior a from y al domingo posterior a to.
func Periods(g Granularity, from, to time.Time) []time.Time {
	from, to = DateOnly(from), DateOnly(to)
	if from.After(to) {
		return nil
	}
	var out []time.Time
	last := g.Start(to)
	for p := g.Start(from); !p.After(last); p = g.Next(p) {
		out = append(out, p)
	}
	return out
}

// Calendarize expande la serie cruda al eje completo de la granularidad.
// Los periodos sin datos valen 0; las fechas fuera del rango se ignoran.
func Calendarize(raw DateSeries, g Granularity, from, to time.Time, kpis KPIConfig) Series {
	periods := Periods(g, from, to)
	index := make(map[time.Time]int, len(periods))
	buckets := make([]Totals, len(periods))
	s := Series{
		Period:  g,
		Labels:  make([]string, len(periods)),
		Display: make([]string, len(periods)),
		Values:  make(map[Metric][]Value),
	}
	for i, p := range periods {
		index[p] = i
		s.Labels[i] = g.Label(p)
		s.Display[i] = g.DisplayLabel(p)
	}

	for date, t := range raw {
		i, ok := index[g.Start(date)]
		if !ok {
			continue
		}
		buckets[i].merge(t)
	}

	for _, m := range kpis.Metrics() {
		vals := make([]Value, len(periods))
		for i, b := range buckets {
			vals[i] = b.Get(m)
		}
		s.Values[m] = vals
	}
	return s
}

// EmptySeries serie sin periodos para reportes sin datos.
func EmptySeries(g Granularity) Series {
	return Series{
		Period:  g,
		Labels:  []string{},
		Display: []string{},
		Values:  map[Metric][]Value{},
	}
}
