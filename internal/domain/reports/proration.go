package reports

import (
	"time"

	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Prorate reparte el total de la devolución entre sus artículos según su
// participación en piezas. Se redondea el acumulado a 2 decimales y cada línea
// recibe la diferencia con el acumulado anterior: ninguna línea queda negativa
// y la suma coincide exactamente con el total.
// Sin piezas (total 0) todas las líneas quedan en 0; sin artículos no hay líneas.
func Prorate(r entity.Return) []entity.RawLineItem {
	if len(r.Items) == 0 {
		return nil
	}

	var date *time.Time
	if !r.Date.IsZero() {
		d := DateOnly(r.Date)
		date = &d
	}

	totalQty := decimal.NewFromInt(int64(r.TotalQuantity()))
	total := r.Total.Round(2)

	out := make([]entity.RawLineItem, 0, len(r.Items))
	cumQty := int64(0)
	prev := decimal.Zero
	for _, it := range r.Items {
		qty := max(it.Quantity, 0)
		amount := decimal.Zero
		if totalQty.IsPositive() {
			cumQty += int64(qty)
			acc := total.Mul(decimal.NewFromInt(cumQty)).Div(totalQty).Round(2)
			amount = acc.Sub(prev)
			prev = acc
		}
		out = append(out, entity.RawLineItem{
			Date:     date,
			Zone:     r.Zone,
			Aisle:    it.Aisle,
			Quantity: qty,
			Amount:   amount,
			Count:    1,
		})
	}
	return out
}

// ProrateAll aplica Prorate a cada devolución y concatena las líneas.
func ProrateAll(returns []entity.Return) []entity.RawLineItem {
	var out []entity.RawLineItem
	for _, r := range returns {
		out = append(out, Prorate(r)...)
	}
	return out
}
