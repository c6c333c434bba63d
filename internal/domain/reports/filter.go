package reports

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
)

// DateLayout formato de fecha usado en solicitudes, etiquetas y tablas.
const DateLayout = "2006-01-02"

// Filter rango de fechas inclusivo y filtros opcionales de dimensión para la
// consulta de eventos. Se construye con NewFilter; las listas vacías no filtran.
type Filter struct {
	From   time.Time
	To     time.Time
	Zones  []string
	Aisles []string
}

// NewFilter valida y normaliza el filtro. maxDays <= 0 desactiva el límite de rango.
func NewFilter(from, to time.Time, zones, aisles []string, maxDays int) (Filter, error) {
	from, to = DateOnly(from), DateOnly(to)
	if from.IsZero() || to.IsZero() {
		return Filter{}, domain.ErrInvalidDate
	}
	if from.After(to) {
		return Filter{}, domain.ErrDateRange
	}
	f := Filter{
		From:   from,
		To:     to,
		Zones:  normalizeCodes(zones),
		Aisles: normalizeCodes(aisles),
	}
	if maxDays > 0 && f.Days() > maxDays {
		return Filter{}, fmt.Errorf("%w: %d días (máximo %d)", domain.ErrRangeTooLong, f.Days(), maxDays)
	}
	return f, nil
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// DateOnly descarta la hora y fija UTC, conservando el día calendario.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days número de días del rango, ambos extremos incluidos.
func (f Filter) Days() int {
	return int(f.To.Sub(f.From).Hours()/24) + 1
}

// Contains indica si la fecha cae dentro del rango.
func (f Filter) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(f.From) && !d.After(f.To)
}

// Match aplica los filtros de zona y pasillo sobre claves ya normalizadas.
func (f Filter) Match(zone, aisle string) bool {
	if !f.MatchZone(zone) {
		return false
	}
	return len(f.Aisles) == 0 || slices.Contains(f.Aisles, aisle)
}

// MatchZone aplica solo el filtro de zona.
func (f Filter) MatchZone(zone string) bool {
	return len(f.Zones) == 0 || slices.Contains(f.Zones, zone)
}
