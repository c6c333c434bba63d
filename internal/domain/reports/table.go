package reports

import (
	"cmp"
	"slices"
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
)

// TableRow fila del detalle: sumas por fecha, zona, pasillo y persona.
type TableRow struct {
	Date   time.Time
	Zone   string
	Aisle  string
	Person string
	Totals Totals
}

type tableKey struct {
	date                time.Time
	zone, aisle, person string
}

// BuildTable agrupa los eventos por fecha × zona × pasillo × persona y ordena
// por fecha, zona, pasillo y persona. La persona depende de pasillo y fecha,
// así que no agrega filas extra.
func BuildTable(events []entity.ReturnLineEvent) []TableRow {
	idx := make(map[tableKey]int)
	rows := make([]TableRow, 0)
	for _, e := range events {
		k := tableKey{date: e.Date, zone: e.Zone, aisle: e.Aisle, person: e.Person}
		i, ok := idx[k]
		if !ok {
			i = len(rows)
			idx[k] = i
			rows = append(rows, TableRow{Date: e.Date, Zone: e.Zone, Aisle: e.Aisle, Person: e.Person})
		}
		rows[i].Totals.add(e)
	}
	slices.SortFunc(rows, func(a, b TableRow) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			cmp.Compare(a.Zone, b.Zone),
			cmp.Compare(a.Aisle, b.Aisle),
			cmp.Compare(a.Person, b.Person),
		)
	})
	return rows
}
