package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Granularity tamaño del periodo de una serie calendarizada.
type Granularity string

const (
	Day   Granularity = "dia"
	Week  Granularity = "semana"
	Month Granularity = "mes"
	Year  Granularity = "anio"
)

var granularityAliases = map[string]Granularity{
	"dia":    Day,
	"día":    Day,
	"semana": Week,
	"mes":    Month,
	"anio":   Year,
	"año":    Year,
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ParseGranularity acepta Dia|Día|Semana|Mes|Anio|Año sin distinguir mayúsculas.
// Una cadena vacía toma def.
func ParseGranularity(s, def string) (Granularity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = def
	}
	key := cases.Lower(language.Spanish).String(NormalizeName(s))
	g, ok := granularityAliases[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidGrouping, s)
	}
	return g, nil
}

// Start devuelve el inicio del periodo que contiene t. Las semanas empiezan en lunes.
func (g Granularity) Start(t time.Time) time.Time {
	d := DateOnly(t)
	switch g {
	case Week:
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case Month:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Year:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// Next devuelve el inicio del periodo siguiente a start.
func (g Granularity) Next(start time.Time) time.Time {
	switch g {
	case Week:
		return start.AddDate(0, 0, 7)
	case Month:
		return start.AddDate(0, 1, 0)
	case Year:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// End devuelve el último día del periodo que contiene t.
func (g Granularity) End(t time.Time) time.Time {
	return g.Next(g.Start(t)).AddDate(0, 0, -1)
}

// Label clave ordenable del periodo: 2025-11-03 (día o lunes de la semana),
// 2025-11 (mes) o 2025 (año).
func (g Granularity) Label(start time.Time) string {
	switch g {
	case Month:
		return start.Format("2006-01")
	case Year:
		return start.Format("2006")
	default:
		return start.Format(DateLayout)
	}
}

// DisplayLabel etiqueta legible del periodo, ej: "Semana del 2025-11-03" o "Noviembre 2025".
func (g Granularity) DisplayLabel(start time.Time) string {
	switch g {
	case Week:
		return "Semana del " + start.Format(DateLayout)
	case Month:
		return fmt.Sprintf("%s %d", monthNames[start.Month()-1], start.Year())
	default:
		return g.Label(start)
	}
}
