package reports

import (
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Normalize convierte las líneas crudas en eventos tipados y les asigna la
// persona responsable del pasillo en su fecha.
//
// Zona o pasillo vacíos quedan como MissingKey; sin asignación vigente la
// persona es Unassigned. Si el id no está en names se usa el propio id; dos
// personas con el mismo nombre se distinguen como "Nombre (id)".
// Valores numéricos inválidos, negativos, NaN o infinitos quedan en 0.
// Una línea sin fecha devuelve domain.ErrMissingColumn.
func Normalize(raw []entity.RawLineItem, resolver *Resolver, names map[string]string) ([]entity.ReturnLineEvent, error) {
	display := displayNames(names)
	out := make([]entity.ReturnLineEvent, 0, len(raw))
	for i, r := range raw {
		if r.Date == nil || r.Date.IsZero() {
			return nil, fmt.Errorf("%w: fecha (línea %d)", domain.ErrMissingColumn, i)
		}
		date := DateOnly(*r.Date)
		aisle := codeOrMissing(r.Aisle)

		person := Unassigned
		if aisle != MissingKey {
			if id, ok := resolver.Resolve(aisle, date); ok {
				person = id
				if name, ok := display[id]; ok {
					person = name
				}
			}
		}

		count := 1
		if r.Count != nil {
			count = toInt(r.Count)
		}

		out = append(out, entity.ReturnLineEvent{
			Date:     date,
			Zone:     codeOrMissing(r.Zone),
			Aisle:    aisle,
			Person:   person,
			Quantity: toInt(r.Quantity),
			Amount:   toDecimal(r.Amount),
			Count:    count,
		})
	}
	return out, nil
}

// displayNames normaliza los nombres del personal. Los nombres repetidos
// llevan el id para que cada persona conserve su propio grupo.
func displayNames(names map[string]string) map[string]string {
	ids := make(map[string]int, len(names))
	out := make(map[string]string, len(names))
	for id, n := range names {
		if name := NormalizeName(n); name != "" {
			out[id] = name
			ids[name]++
		}
	}
	for id, name := range out {
		if ids[name] > 1 {
			out[id] = fmt.Sprintf("%s (%s)", name, id)
		}
	}
	return out
}

// toDecimal convierte un valor de la fuente a decimal no negativo.
func toDecimal(v any) decimal.Decimal {
	var d decimal.Decimal
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		d = *x
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero
		}
		d = x.Decimal
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(f)
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// toInt trunca hacia cero; "3.0" y 3.7 valen 3.
func toInt(v any) int {
	return int(toDecimal(v).IntPart())
}
