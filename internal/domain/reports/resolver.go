package reports

import (
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
)

// Resolver determina qué persona es responsable de un pasillo en una fecha.
//
// Regla de desempate cuando varias asignaciones del mismo pasillo cubren la
// fecha: gana la de ValidFrom más reciente; si empatan, la que termina antes
// (sin fecha de fin cuenta como la más tardía); si aún empatan, el PersonID
// menor. Esta es la única implementación de la regla.
type Resolver struct {
	byAisle map[string][]entity.Assignment
}

// NewResolver indexa las asignaciones por pasillo normalizado. Se ignoran las
// que no tienen pasillo o persona.
func NewResolver(assignments []entity.Assignment) *Resolver {
	byAisle := make(map[string][]entity.Assignment)
	for _, a := range assignments {
		aisle := NormalizeCode(a.Aisle)
		person := strings.TrimSpace(a.PersonID)
		if aisle == "" || person == "" {
			continue
		}
		byAisle[aisle] = append(byAisle[aisle], entity.Assignment{
			Aisle:     aisle,
			PersonID:  person,
			ValidFrom: DateOnly(a.ValidFrom),
			ValidTo:   DateOnly(a.ValidTo),
		})
	}
	for _, list := range byAisle {
		slices.SortFunc(list, comparePriority)
	}
	return &Resolver{byAisle: byAisle}
}

// Resolve devuelve el PersonID responsable de aisle en date, o false si
// ninguna asignación lo cubre. aisle debe venir normalizado.
func (r *Resolver) Resolve(aisle string, date time.Time) (string, bool) {
	if r == nil {
		return "", false
	}
	d := DateOnly(date)
	for _, a := range r.byAisle[aisle] {
		if a.Covers(d) {
			return a.PersonID, true
		}
	}
	return "", false
}

func comparePriority(a, b entity.Assignment) int {
	if c := b.ValidFrom.Compare(a.ValidFrom); c != 0 {
		return c
	}
	if c := compareEnd(a.ValidTo, b.ValidTo); c != 0 {
		return c
	}
	return strings.Compare(a.PersonID, b.PersonID)
}

// compareEnd ordena fechas de fin; la fecha cero es una asignación abierta.
func compareEnd(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	default:
		return a.Compare(b)
	}
}
